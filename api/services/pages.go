package services

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/UserHub/userhub-directory-services/api/middleware"
	"github.com/UserHub/userhub-directory-services/internal/web"
	"github.com/UserHub/userhub-directory-services/models"
)

// IndexService renders the users listing page.
func IndexService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	users, err := svc.Store.GetUsers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve users from database")
		renderErrorPage(svc, w, r, http.StatusInternalServerError, err)
		return
	}

	// Ensure users is not nil so the page renders a header-only table
	if users == nil {
		users = []models.User{}
	}

	logger.Info().Int("user_count", len(users)).Msg("Rendering users page")
	WritePage(w, r, http.StatusOK, func(out io.Writer) error {
		return svc.Pages.RenderUsers(out, users)
	})
}

// ErrorPageService renders the generic error page on a direct visit.
func ErrorPageService(svc *Service, w http.ResponseWriter, r *http.Request) {
	renderErrorPage(svc, w, r, http.StatusOK, nil)
}

// renderErrorPage writes the generic error page. The underlying fault is
// only shown in development mode.
func renderErrorPage(svc *Service, w http.ResponseWriter, r *http.Request, statusCode int, cause error) {
	page := web.ErrorPage{
		RequestID: middleware.GetRequestID(r.Context()),
	}
	if cause != nil && svc.Config.IsDevelopment() {
		page.Detail = cause.Error()
	}

	WritePage(w, r, statusCode, func(out io.Writer) error {
		return svc.Pages.RenderError(out, page)
	})
}
