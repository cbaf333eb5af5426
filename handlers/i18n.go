package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListLocalesHandler handles GET /api/i18n/locales.
func (h *HandlerBundle) ListLocalesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.I18nSvc.Locales())
}

// LocaleTableHandler handles GET /api/i18n/:locale. Unknown locales resolve
// to the default table rather than an error, so a stale client language
// setting never blanks out the UI.
func (h *HandlerBundle) LocaleTableHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.I18nSvc.Table(c.Param("locale")))
}
