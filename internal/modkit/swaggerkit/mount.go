// Package swaggerkit serves the API docs: the swagger UI and an OAS3 doc.json
package swaggerkit

import (
	"net/http"

	phttp "creditclear/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is the root of the UI, doc.json sits beneath it
const DocsPath = "/api/docs"

// Mount registers the docs routes on r; disabled leaves r untouched
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	docJSON := DocsPath + "/doc.json"

	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(docJSON, serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(docJSON),
		httpSwagger.InstanceName("creditclear"),
		httpSwagger.DocExpansion("none"),
	))
}
