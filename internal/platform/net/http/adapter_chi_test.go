package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func header(k, v string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			w.Header().Set(k, v)
			next.ServeHTTP(w, r)
		})
	}
}

func write(s string) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte(s)) }
}

func TestAdaptChi_ScopesMiddleware(t *testing.T) {
	mux := chi.NewRouter()
	r := AdaptChi(mux)
	r.Use(header("X-Root", "1"))

	r.Get("/health", write("up"))
	r.Group(func(g Router) {
		g.Use(header("X-Group", "1"))
		g.Post("/retrain", write("done"))
	})
	r.Route("/scoring", func(s Router) {
		s.Use(header("X-Route", "1"))
		s.Get("/features/{name}", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			_, _ = w.Write([]byte(URLParam(req, "name")))
		})
		s.Handle("/raw", stdhttp.NotFoundHandler())
		assert.NotNil(t, s.Mux())
	})

	cases := []struct {
		method, path, body string
		code               int
		headers            []string
	}{
		{stdhttp.MethodGet, "/health", "up", 200, []string{"X-Root"}},
		{stdhttp.MethodPost, "/retrain", "done", 200, []string{"X-Root", "X-Group"}},
		{stdhttp.MethodGet, "/scoring/features/age", "age", 200, []string{"X-Root", "X-Route"}},
		{stdhttp.MethodGet, "/scoring/raw", "404 page not found\n", 404, []string{"X-Route"}},
		{stdhttp.MethodGet, "/retrain", "", 405, []string{"X-Root"}},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.code, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
			for _, h := range tc.headers {
				assert.Equal(t, "1", rec.Header().Get(h), h)
			}
		})
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/health", nil))
	assert.Empty(t, rec.Header().Get("X-Group"))
}
