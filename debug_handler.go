package servicelocator

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DebugHandler exposes the registry contents as read-only JSON:
//
//	GET /services        list of registered services
//	GET /services/{key}  a single entry, 404 when not registered
//
// Lookups made through this handler are not reported as missing services.
func DebugHandler(r *Registry) http.Handler {
	router := chi.NewRouter()
	router.Route("/services", func(sr chi.Router) {
		sr.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, r.Services())
		})
		sr.Get("/{key}", func(w http.ResponseWriter, req *http.Request) {
			key := Key(chi.URLParam(req, "key"))
			info, ok := r.describe(key)
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{
					"error": ErrNotRegistered.Error(),
					"key":   key.String(),
				})
				return
			}
			writeJSON(w, http.StatusOK, info)
		})
	})
	return router
}

func (r *Registry) describe(key Key) (ServiceInfo, bool) {
	if r == nil {
		return ServiceInfo{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	service, ok := r.services[key]
	if !ok {
		return ServiceInfo{}, false
	}
	return ServiceInfo{Key: key, Type: typeName(service)}, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
