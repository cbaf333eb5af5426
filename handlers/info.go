package handlers

import (
	"net/http"

	"github.com/Omoefe-bazunu/hhaven/config"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
)

// AppInfoHandler handles GET /api/info: app metadata for the About screen
// plus the client tuning values (search debounce windows) so apps pick them
// up from server config instead of shipping their own constants.
func (h *HandlerBundle) AppInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Higher Haven",
		"version": "1.0.0",
		"mission": "Spreading the gospel through sermons, songs and fellowship across languages.",
		"contact": "info@higher.com.ng",
		"client": gin.H{
			"searchDebounceMs":     config.AppConfig.SearchDebounceMs,
			"quizSearchDebounceMs": config.AppConfig.QuizSearchDebounceMs,
		},
	})
}

// HealthHandler handles GET /health with the latest monitored status of the
// external dependencies.
func (h *HandlerBundle) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   utils.GetHealthStatus(),
	})
}
