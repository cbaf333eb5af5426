package handlers

import (
	"net/http"

	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
)

// ListContentHandler handles GET /api/content/:type.
func (h *HandlerBundle) ListContentHandler(c *gin.Context) {
	contentType := models.ContentType(c.Param("type"))
	if !contentType.IsValid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown content type", string(contentType))
		return
	}

	ctx := c.Request.Context()
	switch contentType {
	case models.ContentTypeSermons:
		c.JSON(http.StatusOK, h.ContentSvc.ListSermons(ctx))
	case models.ContentTypeSongs:
		if category := c.Query("category"); category != "" {
			c.JSON(http.StatusOK, h.ContentSvc.ListSongsByCategory(ctx, category))
			return
		}
		c.JSON(http.StatusOK, h.ContentSvc.ListSongs(ctx))
	case models.ContentTypeVideos:
		c.JSON(http.StatusOK, h.ContentSvc.ListVideos(ctx))
	case models.ContentTypeQuizResources:
		c.JSON(http.StatusOK, h.ContentSvc.ListQuizResources(ctx))
	}
}

// GetContentItemHandler handles GET /api/content/:type/:id.
func (h *HandlerBundle) GetContentItemHandler(c *gin.Context) {
	contentType := models.ContentType(c.Param("type"))
	id := c.Param("id")
	if !contentType.IsValid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown content type", string(contentType))
		return
	}

	ctx := c.Request.Context()
	var item interface{}
	switch contentType {
	case models.ContentTypeSermons:
		if s := h.ContentSvc.GetSermon(ctx, id); s != nil {
			item = s
		}
	case models.ContentTypeSongs:
		if s := h.ContentSvc.GetSong(ctx, id); s != nil {
			item = s
		}
	case models.ContentTypeVideos:
		if v := h.ContentSvc.GetVideo(ctx, id); v != nil {
			item = v
		}
	case models.ContentTypeQuizResources:
		if q := h.ContentSvc.GetQuizResource(ctx, id); q != nil {
			item = q
		}
	}

	if item == nil {
		utils.JSONError(c, http.StatusNotFound, "content not found", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RecentContentHandler handles GET /api/content/recent: the landing-page
// overview with up to three newest items per collection.
func (h *HandlerBundle) RecentContentHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentSvc.RecentContent(c.Request.Context()))
}

// SearchContentHandler handles GET /api/content/search?q=term&category=native.
func (h *HandlerBundle) SearchContentHandler(c *gin.Context) {
	term := c.Query("q")
	category := c.Query("category")
	c.JSON(http.StatusOK, h.ContentSvc.Search(c.Request.Context(), term, category))
}
