package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "creditclear/internal/platform/net/http"
	"creditclear/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchSpec(t *testing.T) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	serveDocJSON()(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var spec map[string]any
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	}
	return rec.Code, spec
}

func responsesOf(spec map[string]any, path, method string) map[string]any {
	op := spec["paths"].(map[string]any)[path].(map[string]any)[method].(map[string]any)
	return op["responses"].(map[string]any)
}

func TestServeDocJSON_OAS3WithDefaults(t *testing.T) {
	code, spec := fetchSpec(t)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "3.0.3", spec["openapi"])
	assert.NotContains(t, spec, "swagger")
	assert.Equal(t, []any{map[string]any{"url": "/api/v1"}}, spec["servers"])

	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, "ErrorResponse")

	post := responsesOf(spec, "/scoring/predict", "post")
	assert.Contains(t, post, "500")
	assert.Contains(t, post, "400")

	get := responsesOf(spec, "/scoring/features", "get")
	assert.Contains(t, get, "500")
	assert.NotContains(t, get, "400")
}

func TestServeDocJSON_KeepsDeclaredResponses(t *testing.T) {
	testkit.Swap(t, &docReader, func() string {
		return `{"openapi":"3.1.0","info":{"title":"t"},"paths":{"/x":{"post":{"responses":{"400":{"description":"mine"}}}}}}`
	})
	_, spec := fetchSpec(t)
	assert.Equal(t, "3.0.3", spec["openapi"])
	assert.Equal(t, "dev", spec["info"].(map[string]any)["version"])
	assert.Equal(t, "mine", responsesOf(spec, "/x", "post")["400"].(map[string]any)["description"])
}

func TestServeDocJSON_BadSpec(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })
	code, _ := fetchSpec(t)
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestMount(t *testing.T) {
	off := chi.NewRouter()
	Mount(phttp.AdaptChi(off), false)
	rec := httptest.NewRecorder()
	off.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	on := chi.NewRouter()
	Mount(phttp.AdaptChi(on), true)

	rec = httptest.NewRecorder()
	on.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocsPath, nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, DocsPath+"/index.html", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	on.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
}
