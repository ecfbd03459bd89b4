package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "creditclear/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func tag(v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Scope", v)
			next.ServeHTTP(w, r)
		})
	}
}

func TestMountAPI_ScopesRoutesAndMiddleware(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)

	MountAPIV1(r, []func(http.Handler) http.Handler{tag("v1")}, func(api Router) {
		Get(api, "/model", func(*http.Request) (any, error) { return "v1", nil })
	})
	MountAPI(r, "/v2/", nil, func(api Router) {
		Get(api, "/model", func(*http.Request) (any, error) { return "v2", nil })
	})
	r.Get("/outside", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	cases := []struct {
		path  string
		code  int
		scope string
	}{
		{"/api/v1/model", http.StatusOK, "v1"},
		{"/api/v2/model", http.StatusOK, ""},
		{"/outside", http.StatusNoContent, ""},
		{"/model", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.scope, rec.Header().Get("X-Scope"))
		})
	}
}
