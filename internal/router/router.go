package router

import (
	"net/http"
	"strings"

	"catalog/internal/handler"
	"catalog/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	jwtSecret string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mountResource(mux, "/api/categories", categoryHandler, nil)

	mountResource(mux, "/api/products", productHandler, map[string]http.HandlerFunc{
		"my_products": productHandler.ListMine,
	})

	mountResource(mux, "/api/reviews", reviewHandler, map[string]http.HandlerFunc{
		"by_product": reviewHandler.ListByProduct,
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> BearerAuth
	var h http.Handler = mux
	h = middleware.BearerAuth(jwtSecret, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

// mountResource registers the uniform collection routes for one entity:
// list and create on the collection path, retrieve/replace/patch/delete on
// the item path, plus any extra read-only collection actions (e.g.
// my_products, by_product). Trailing slashes are tolerated everywhere.
func mountResource(mux *http.ServeMux, base string, res handler.Resource, extras map[string]http.HandlerFunc) {
	routeHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		if path == base {
			switch r.Method {
			case http.MethodGet:
				res.List(w, r)
			case http.MethodPost:
				res.Create(w, r)
			default:
				methodNotAllowed(w)
			}
			return
		}

		rest := strings.TrimPrefix(path, base+"/")

		if extra, ok := extras[rest]; ok {
			if r.Method != http.MethodGet {
				methodNotAllowed(w)
				return
			}
			extra(w, r)
			return
		}

		switch r.Method {
		case http.MethodGet:
			res.Retrieve(w, r, rest)
		case http.MethodPut:
			res.Replace(w, r, rest)
		case http.MethodPatch:
			res.Patch(w, r, rest)
		case http.MethodDelete:
			res.Delete(w, r, rest)
		default:
			methodNotAllowed(w)
		}
	}

	// Register both with and without trailing slash
	mux.HandleFunc(base, routeHandler)
	mux.HandleFunc(base+"/", routeHandler)
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error": "method not allowed"}`))
}
