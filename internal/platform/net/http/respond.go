// Package http writes every response through one JSON envelope
package http

import (
	"encoding/json"
	"mime"
	stdhttp "net/http"

	perr "creditclear/internal/platform/errors"
	pnet "creditclear/internal/platform/net"
)

// Envelope is the body of every non raw response
type Envelope struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Code       string `json:"code,omitempty"`
	Error      string `json:"error,omitempty"`
	Details    any    `json:"details,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// Response is what return style handlers produce
// an error Body decides the status itself
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Raw is a body written as is, bypassing the envelope
type Raw struct {
	ContentType string
	Data        []byte
}

// Handle adapts a Response returning func to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response whose status comes from the error code
func Error(err error) Response { return Response{Body: err} }

// Attachment returns a 200 response that downloads data as filename
func Attachment(filename, contentType string, data []byte) Response {
	h := stdhttp.Header{}
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	return Response{Status: stdhttp.StatusOK, Body: Raw{ContentType: contentType, Data: data}, Header: h}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	env := Envelope{RequestID: pnet.RequestID(r.Context())}

	switch body := resp.Body.(type) {
	case Raw:
		w.Header().Set("Content-Type", body.ContentType)
		w.WriteHeader(status)
		_, _ = w.Write(body.Data)
		return
	case error:
		status = perr.HTTPStatus(body)
		wire := perr.WireFrom(body)
		env.Code, env.Error, env.Details = wire.Code.String(), wire.Message, wire.Details
	default:
		if status == stdhttp.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		env.Data = body
	}

	env.StatusCode = status
	env.Status = stdhttp.StatusText(status)
	writeJSON(w, status, env)
}

func writeJSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
