package services

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/UserHub/userhub-directory-services/models"
)

// HealthzService reports whether the store is reachable.
func HealthzService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	if err := svc.Store.Ping(r.Context()); err != nil {
		logger.Error().Err(err).Msg("Health check failed: store unreachable")
		HandleErrResponse(w, http.StatusServiceUnavailable, err)
		return
	}

	WriteResponse(w, http.StatusOK, models.Status{Status: "ok"})
}
