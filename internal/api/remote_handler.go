package api

import (
	"net/http"

	"github.com/Azartis/Konsultabot2-sub000/internal/interfaces"
)

// RemoteHandler exposes the state of the online answer path.
type RemoteHandler struct {
	service interfaces.RemoteService
}

func NewRemoteHandler(svc interfaces.RemoteService) *RemoteHandler {
	return &RemoteHandler{service: svc}
}

// HandleStatus godoc
// @Summary      Remote status
// @Description  Shows the backend in use and the Gemini models that will be tried.
// @Tags         Remote
// @Produce      json
// @Success      200  {object}  remote.Status
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/remote [get]
func (h *RemoteHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}

// HandleDiscover godoc
// @Summary      Re-discover backend
// @Description  Probes the configured backend candidates and switches to the first reachable one.
// @Tags         Remote
// @Produce      json
// @Success      200  {object}  remote.Status
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/remote/discover [post]
func (h *RemoteHandler) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Discover(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}
