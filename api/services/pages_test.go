package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UserHub/userhub-directory-services/internal/appconfig"
	"github.com/UserHub/userhub-directory-services/internal/web"
	"github.com/UserHub/userhub-directory-services/models"
)

func newPageService(t *testing.T, store *MockUserStore, cfg *appconfig.Config) *Service {
	t.Helper()
	pages, err := web.NewRenderer()
	require.NoError(t, err)
	return &Service{
		Config: cfg,
		Store:  store,
		Pages:  pages,
	}
}

func TestIndexService_RendersRowsInOrder(t *testing.T) {
	mockStore := new(MockUserStore)
	mockStore.On("GetUsers", mock.Anything).Return([]models.User{
		{ID: 1, FirstName: "Ann", LastName: "Lee"},
		{ID: 2, FirstName: "Bo", LastName: "Kim"},
	}, nil)

	svc := newPageService(t, mockStore, &appconfig.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	IndexService(svc, w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "<td>Ann</td>")
	assert.Contains(t, body, "<td>Kim</td>")
	assert.Less(t, strings.Index(body, "<td>Ann</td>"), strings.Index(body, "<td>Bo</td>"))

	mockStore.AssertExpectations(t)
}

func TestIndexService_EmptyStoreRendersHeaderOnly(t *testing.T) {
	mockStore := new(MockUserStore)
	mockStore.On("GetUsers", mock.Anything).Return(nil, nil)

	svc := newPageService(t, mockStore, &appconfig.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	IndexService(svc, w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<th>ID</th>")
	assert.Contains(t, body, "<th>First Name</th>")
	assert.Contains(t, body, "<th>Last Name</th>")
	assert.NotContains(t, body, "<td>")
}

func TestIndexService_StoreErrorRendersErrorPage(t *testing.T) {
	mockStore := new(MockUserStore)
	mockStore.On("GetUsers", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := newPageService(t, mockStore, &appconfig.Config{Environment: "production"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	IndexService(svc, w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "An error occurred while processing your request.")
	assert.NotContains(t, body, "<td>")

	// Fault detail stays out of production pages
	assert.NotContains(t, body, "connection refused")
}

func TestIndexService_StoreErrorShowsDetailInDevelopment(t *testing.T) {
	mockStore := new(MockUserStore)
	mockStore.On("GetUsers", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := newPageService(t, mockStore, &appconfig.Config{Environment: "development"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	IndexService(svc, w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestErrorPageService_DirectVisit(t *testing.T) {
	mockStore := new(MockUserStore)

	svc := newPageService(t, mockStore, &appconfig.Config{})

	req := httptest.NewRequest(http.MethodGet, "/home/error", nil)
	w := httptest.NewRecorder()

	ErrorPageService(svc, w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred while processing your request.")
	mockStore.AssertNotCalled(t, "GetUsers", mock.Anything)
}
