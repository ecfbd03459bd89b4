// Package httpkit provides handler and routing helpers over the platform http package
// modules use these so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "creditclear/internal/platform/net/http"
	"creditclear/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// JSON binds and validates the body into T, then wraps the result in the envelope
// a handler may return a Response to control status and headers
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Call(func(r *http.Request) (any, error) {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Param returns a named path parameter such as {name}
func Param(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// BindJSON decodes and validates a JSON body outside the JSON adapter, capped at maxBytes
// maxBytes <= 0 keeps the bind default
func BindJSON[T any](r *http.Request, maxBytes int64) (T, error) {
	if maxBytes <= 0 {
		return bind.ParseJSON[T](r)
	}
	return bind.ParseJSON[T](r, bind.JSONOptions{MaxBytes: maxBytes, DisallowUnknown: true})
}

// Attachment returns a raw download response outside the envelope
func Attachment(filename, contentType string, data []byte) Response {
	return phttp.Attachment(filename, contentType, data)
}

// Validate checks a query or path DTO with the shared validator
func Validate(v any) error { return bind.Struct(v) }
