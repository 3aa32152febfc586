package handlers

import (
	"net/http"

	"github.com/UserHub/userhub-directory-services/api/services"
)

// Healthz reports whether the service can reach its database.
func Healthz(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.HealthzService(svc, w, r)
	}
}
