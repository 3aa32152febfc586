package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/UserHub/userhub-directory-services/models"
)

func TestHealthzService_OK(t *testing.T) {
	mockStore := new(MockUserStore)
	mockStore.On("Ping", mock.Anything).Return(nil)

	svc := newTestService(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HealthzService(svc, w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Status
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)

	mockStore.AssertExpectations(t)
}

func TestHealthzService_StoreDown(t *testing.T) {
	mockStore := new(MockUserStore)
	mockStore.On("Ping", mock.Anything).Return(errors.New("dial tcp: connection refused"))

	svc := newTestService(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HealthzService(svc, w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp models.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Success)
	assert.Contains(t, resp.ErrorDetails, "connection refused")
}
