package routes

import (
	"maisquecafe-painel/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup, statusHandler *handlers.StatusHandler) {
	rg.GET("/health", statusHandler.Health)
	rg.GET("/status", statusHandler.StatusRemoto)
}
