package handlers

import (
	"net/http"

	"github.com/Omoefe-bazunu/hhaven/config"
	"github.com/Omoefe-bazunu/hhaven/services/hymnal"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
)

// HymnalHandler handles GET /api/hymnal/:type?locale=yo&q=praise. The type is
// "tsps" or "psalms"; q filters by source number or title substring.
func (h *HandlerBundle) HymnalHandler(c *gin.Context) {
	dataType := hymnal.DataType(c.Param("type"))
	if !dataType.IsValid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown hymnal dataset", string(dataType))
		return
	}

	locale := c.Query("locale")
	if locale == "" {
		locale = config.AppConfig.DefaultLocale
	}

	c.JSON(http.StatusOK, h.HymnalSvc.Search(dataType, locale, c.Query("q")))
}
