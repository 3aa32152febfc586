package services

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/UserHub/userhub-directory-services/models"
)

// GetUsersService retrieves all users.
func GetUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	users, err := svc.Store.GetUsers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve users from database")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	// Ensure users is not nil, return an empty slice if no users are found
	if users == nil {
		users = []models.User{}
	}

	logger.Info().Int("user_count", len(users)).Msg("Successfully retrieved users")
	WriteResponse(w, http.StatusOK, users)
}

// GetUserService retrieves a single user by the ID in the URL path.
func GetUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	// Parse the user ID from the URL path
	userID, err := strconv.ParseInt(mux.Vars(r)["user-id"], 10, 64)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid user ID in request path")
		WriteResponse(w, http.StatusBadRequest, nil)
		return
	}

	user, err := svc.Store.GetUser(r.Context(), userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Database error retrieving user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	// Handle non-existent user
	if user == nil {
		logger.Warn().Int64("user_id", userID).Msg("User not found")
		WriteResponse(w, http.StatusNotFound, nil)
		return
	}

	logger.Info().Int64("user_id", user.ID).Msg("Successfully retrieved user")
	WriteResponse(w, http.StatusOK, *user)
}
