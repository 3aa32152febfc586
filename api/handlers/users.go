package handlers

import (
	"net/http"

	"github.com/UserHub/userhub-directory-services/api/services"
)

// @Summary List all users
// @Description Retrieve all users in the directory, ordered by ID.
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} models.Response
// @Router /users [get]
func GetUsers(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetUsersService(svc, w, r)
	}
}

// @Summary Get a user by ID
// @Description Retrieve a single user. {user-id} must be the user's numeric ID.
// @Tags users
// @Produce json
// @Param user-id path int true "User ID" example(1)
// @Success 200 {object} models.User
// @Failure 400 {object} string
// @Failure 404 {object} string
// @Failure 500 {object} models.Response
// @Router /users/{user-id} [get]
func GetUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetUserService(svc, w, r)
	}
}
