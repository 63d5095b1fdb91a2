package handlers

import (
	"log"
	response "maisquecafe-painel/internal/adapter/http/dto/response"
	"maisquecafe-painel/internal/usecase/interfaces"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusHandler answers the panel's connectivity badge: the local process
// liveness and a probe against the purchasing API.

type StatusHandler struct {
	status interfaces.IStatusAPI
}

func NewStatusHandler(status interfaces.IStatusAPI) *StatusHandler {
	return &StatusHandler{status: status}
}

// Health reports local liveness only; it never touches the remote API.
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusResponse{OK: true, Time: time.Now().UTC().Format(time.RFC3339)})
}

// StatusRemoto probes the purchasing API so the panel can light the
// online/offline badge without implying local failure.
func (h *StatusHandler) StatusRemoto(c *gin.Context) {
	status, err := h.status.Status(c.Request.Context())
	if err != nil {
		log.Printf("[status][handler] remote probe failed err=%v", err)
		c.JSON(http.StatusOK, response.StatusResponse{OK: false, Time: time.Now().UTC().Format(time.RFC3339)})
		return
	}

	c.JSON(http.StatusOK, response.FromStatus(status))
}
