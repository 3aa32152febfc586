package handlers

import (
	"net/http"

	"github.com/UserHub/userhub-directory-services/api/services"
)

// Index renders the user directory page.
func Index(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.IndexService(svc, w, r)
	}
}

// ErrorPage renders the generic error page.
func ErrorPage(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ErrorPageService(svc, w, r)
	}
}
