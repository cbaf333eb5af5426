package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Omoefe-bazunu/hhaven/config"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenDuration = 12 * time.Hour

// AdminLoginHandler handles POST /api/admin/login. Credentials come from
// configuration; the password is checked against its bcrypt hash.
func (h *HandlerBundle) AdminLoginHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if body.Email != config.AppConfig.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(body.Password)) != nil {
		h.Logger.Warn("AdminLogin: rejected credentials", zap.String("email", body.Email))
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken("admin", body.Email, adminTokenDuration)
	if err != nil {
		h.Logger.Error("AdminLogin: failed to sign token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenDuration.Seconds())})
}

// UploadContentHandler handles POST /api/admin/content/:type. It accepts a
// multipart form with the media file and the document fields, pushes the file
// to the configured storage backend and creates the content document. The
// snapshot caches pick the new document up through the live refresher.
func (h *HandlerBundle) UploadContentHandler(c *gin.Context) {
	contentType := models.ContentType(c.Param("type"))
	if !contentType.IsValid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown content type", string(contentType))
		return
	}

	title := c.PostForm("title")
	if title == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing title", "")
		return
	}

	fields := map[string]interface{}{
		"title":      title,
		"uploadedBy": c.GetString("adminEmail"),
	}
	switch contentType {
	case models.ContentTypeSermons:
		fields["content"] = c.PostForm("content")
		fields["date"] = c.PostForm("date")
	case models.ContentTypeSongs:
		fields["category"] = string(models.NormalizeSongCategory(c.PostForm("category")))
		if style := c.PostForm("style"); style != "" {
			fields["style"] = style
		}
	case models.ContentTypeVideos:
		fields["languageCategory"] = c.PostForm("languageCategory")
	case models.ContentTypeQuizResources:
		if year, err := strconv.Atoi(c.PostForm("year")); err == nil {
			fields["year"] = year
		}
		fields["age"] = c.PostForm("age")
		fields["gender"] = c.PostForm("gender")
		fields["content"] = c.PostForm("content")
	}

	// Media file is optional; quiz resources are usually text-only.
	if file, err := c.FormFile("file"); err == nil {
		tmpPath := filepath.Join(os.TempDir(), file.Filename)
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			h.Logger.Error("UploadContent: failed to buffer upload", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to read uploaded file", "")
			return
		}
		defer os.Remove(tmpPath)

		objectID, err := h.StorageSvc.UploadFile(c.Request.Context(), tmpPath, string(contentType))
		if err != nil {
			h.Logger.Error("UploadContent: storage upload failed",
				zap.String("type", string(contentType)), zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "failed to upload media", err.Error())
			return
		}
		url, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), objectID, 0)
		if err != nil {
			h.Logger.Error("UploadContent: failed to resolve download URL", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "failed to resolve media URL", err.Error())
			return
		}

		switch contentType {
		case models.ContentTypeSermons, models.ContentTypeSongs:
			fields["audioUrl"] = url
		case models.ContentTypeVideos:
			fields["videoUrl"] = url
		}
	}

	id, err := h.Store.AddDocument(c.Request.Context(), string(contentType), fields)
	if err != nil {
		h.Logger.Error("UploadContent: failed to create document",
			zap.String("type", string(contentType)), zap.Error(err))
		writeErrorResponse(c, utils.WrapWriteError("uploadContent", err), "failed to create content")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PublishNoticeHandler handles POST /api/admin/notices. The notice is stored
// and a push broadcast is queued for all subscribed devices.
func (h *HandlerBundle) PublishNoticeHandler(c *gin.Context) {
	var body struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.NoticeSvc.PublishNotice(c.Request.Context(), body.Title, body.Message, c.GetString("adminEmail"))
	if err != nil {
		if ve, ok := utils.AsValidationError(err); ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid notice", ve.Error())
			return
		}
		h.Logger.Error("PublishNotice: failed to publish", zap.Error(err))
		writeErrorResponse(c, err, "failed to publish notice")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListContactMessagesHandler handles GET /api/admin/contact.
func (h *HandlerBundle) ListContactMessagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContactSvc.ListMessages(c.Request.Context()))
}
