package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Azartis/Konsultabot2-sub000/internal/api"
	app_errors "github.com/Azartis/Konsultabot2-sub000/internal/errors"
	"github.com/Azartis/Konsultabot2-sub000/internal/remote"
)

func TestRouter(t *testing.T) {
	chatSvc := &mockChatService{}
	remoteSvc := &mockRemoteService{}
	router := api.NewRouter(api.NewChatHandler(chatSvc, &mockSettingsService{}), api.NewRemoteHandler(remoteSvc))

	for _, path := range []string{"/healthz", "/api/health/"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	}

	chatSvc.On("GetContext", mock.Anything, "abc").Return(nil, app_errors.ErrNotFound).Once()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/chats/abc/context", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	remoteSvc.On("Status", mock.Anything).Return(&remote.Status{Available: true}, nil).Once()
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/remote", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	chatSvc.AssertExpectations(t)
	remoteSvc.AssertExpectations(t)
}

func TestRemoteHandler_HandleDiscover(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &mockRemoteService{}
		svc.On("Discover", mock.Anything).Return(&remote.Status{Available: true, BackendURL: "http://b"}, nil).Once()

		rr := httptest.NewRecorder()
		api.NewRemoteHandler(svc).HandleDiscover(rr, httptest.NewRequest(http.MethodPost, "/v1/remote/discover", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"backend_url":"http://b"`)
	})

	t.Run("Nothing reachable", func(t *testing.T) {
		svc := &mockRemoteService{}
		svc.On("Discover", mock.Anything).Return(nil, app_errors.ErrConflict).Once()

		rr := httptest.NewRecorder()
		api.NewRemoteHandler(svc).HandleDiscover(rr, httptest.NewRequest(http.MethodPost, "/v1/remote/discover", nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
