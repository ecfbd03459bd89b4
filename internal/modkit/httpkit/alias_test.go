package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "creditclear/internal/platform/errors"
)

func run(h Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}

func TestCall_WrapsValuesAndErrors(t *testing.T) {
	rec := run(Call(func(*http.Request) (any, error) {
		return map[string]string{"a": "1"}, nil
	}), httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"data":{"a":"1"}`) {
		t.Fatalf("plain value not wrapped: %d %s", rec.Code, rec.Body.String())
	}

	rec = run(Call(func(*http.Request) (any, error) {
		return Response{Status: http.StatusAccepted, Body: "queued"}, nil
	}), httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("response passthrough lost status, got %d", rec.Code)
	}

	rec = run(Call(func(*http.Request) (any, error) {
		return nil, perr.NotFoundf("feature %q", "x")
	}), httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = run(Call(func(*http.Request) (any, error) { return nil, errors.New("nah") }),
		httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestJSON_BindsBody(t *testing.T) {
	type in struct {
		Score int `json:"score" validate:"min=300,max=850"`
	}
	h := JSON(func(_ *http.Request, v in) (any, error) { return v.Score * 2, nil })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"score":700}`))
	req.Header.Set("Content-Type", "application/json")
	if rec := run(h, req); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"data":1400`) {
		t.Fatalf("bind failed: %d %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"score":10}`))
	req.Header.Set("Content-Type", "application/json")
	if rec := run(h, req); rec.Code < 400 {
		t.Fatalf("validation should reject, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	if rec := run(h, req); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json should be 400, got %d", rec.Code)
	}
}

func TestBindJSON_MaxBytes(t *testing.T) {
	type in struct {
		CSV string `json:"csv"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"csv":"`+strings.Repeat("a", 64)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	if _, err := BindJSON[in](req, 16); err == nil {
		t.Fatal("expected body cap to trigger")
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"csv":"a,b"}`))
	req.Header.Set("Content-Type", "application/json")
	got, err := BindJSON[in](req, 0)
	if err != nil || got.CSV != "a,b" {
		t.Fatalf("default bind failed: %v %+v", err, got)
	}
}

func TestValidate(t *testing.T) {
	type q struct {
		Limit int `validate:"omitempty,min=1,max=500"`
	}
	if err := Validate(q{Limit: 10}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := Validate(q{Limit: 9000}); err == nil {
		t.Fatal("expected max violation")
	}
}

func TestAttachment_Raw(t *testing.T) {
	h := Call(func(*http.Request) (any, error) {
		return Attachment("t.csv", "text/csv", []byte("a,b\n")), nil
	})
	rec := run(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Body.String() != "a,b\n" || rec.Header().Get("Content-Type") != "text/csv" {
		t.Fatalf("attachment not raw: %q %v", rec.Body.String(), rec.Header())
	}
}
