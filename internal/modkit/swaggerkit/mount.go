// Package swaggerkit serves the OpenAPI document and the Swagger UI
package swaggerkit

import (
	"net/http"

	"openship/internal/modkit/httpkit"
	phttp "openship/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// APIBase is the server url advertised in the document
const APIBase = httpkit.APIV1Prefix

// Mount the Swagger UI and JSON spec under /api/docs if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(APIBase))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("openship"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
