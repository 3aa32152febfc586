package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UserHub/userhub-directory-services/api/middleware"
	"github.com/UserHub/userhub-directory-services/api/services"
	"github.com/UserHub/userhub-directory-services/internal/appconfig"
	"github.com/UserHub/userhub-directory-services/internal/web"
	"github.com/UserHub/userhub-directory-services/models"
)

// newRouter wires the routes the way the serve command does.
func newRouter(t *testing.T, store *services.MockUserStore, cfg *appconfig.Config) *mux.Router {
	t.Helper()

	pages, err := web.NewRenderer()
	require.NoError(t, err)

	svc := &services.Service{
		Config: cfg,
		Store:  store,
		Pages:  pages,
	}

	r := mux.NewRouter()
	r.Use(middleware.WithLogger)
	r.Use(middleware.WithRequestID)
	r.Use(middleware.NewRecovery(cfg.IsDevelopment()))

	r.HandleFunc("/", Index(svc)).Methods(http.MethodGet)
	r.HandleFunc("/home/index", Index(svc)).Methods(http.MethodGet)
	r.HandleFunc("/home/error", ErrorPage(svc)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", Healthz(svc)).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/users", GetUsers(svc)).Methods(http.MethodGet)
	api.HandleFunc("/users/{user-id}", GetUser(svc)).Methods(http.MethodGet)

	return r
}

func TestRoutes_IndexListsUsers(t *testing.T) {
	store := new(services.MockUserStore)
	store.On("GetUsers", mock.Anything).Return([]models.User{
		{ID: 1, FirstName: "Ann", LastName: "Lee"},
		{ID: 2, FirstName: "Bo", LastName: "Kim"},
	}, nil)

	r := newRouter(t, store, &appconfig.Config{})

	for _, path := range []string{"/", "/home/index"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "<td>Ann</td>", path)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader), path)
	}
}

func TestRoutes_UsersAPI(t *testing.T) {
	store := new(services.MockUserStore)
	store.On("GetUsers", mock.Anything).Return([]models.User{
		{ID: 1, FirstName: "Ann", LastName: "Lee"},
	}, nil)
	store.On("GetUser", mock.Anything, int64(1)).Return(&models.User{
		ID: 1, FirstName: "Ann", LastName: "Lee",
	}, nil)

	r := newRouter(t, store, &appconfig.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "Ann", users[0].FirstName)

	req = httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&user))
	assert.Equal(t, int64(1), user.ID)
}

func TestRoutes_StoreDownNeverLeaksRows(t *testing.T) {
	store := new(services.MockUserStore)
	store.On("GetUsers", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	r := newRouter(t, store, &appconfig.Config{Environment: "production"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred while processing your request.")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRoutes_ErrorPageDirectVisit(t *testing.T) {
	store := new(services.MockUserStore)

	r := newRouter(t, store, &appconfig.Config{})

	req := httptest.NewRequest(http.MethodGet, "/home/error", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred while processing your request.")
}

func TestRoutes_HealthzStoreDown(t *testing.T) {
	store := new(services.MockUserStore)
	store.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	r := newRouter(t, store, &appconfig.Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
