package handlers

import (
	"net/http"

	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitContactMessageHandler handles POST /api/contact.
func (h *HandlerBundle) SubmitContactMessageHandler(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.ContactSvc.AddMessage(c.Request.Context(), models.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		if ve, ok := utils.AsValidationError(err); ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid contact message", ve.Error())
			return
		}
		h.Logger.Error("SubmitContactMessage: failed to store message", zap.Error(err))
		writeErrorResponse(c, err, "failed to submit message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// writeErrorResponse maps a categorized store write rejection to a status code.
func writeErrorResponse(c *gin.Context, err error, fallback string) {
	if we, ok := utils.AsWriteError(err); ok {
		switch we.Category {
		case utils.WriteErrorPermission:
			utils.JSONError(c, http.StatusForbidden, "permission denied", we.Op)
			return
		case utils.WriteErrorQuota:
			utils.JSONError(c, http.StatusTooManyRequests, "quota exceeded, try again later", we.Op)
			return
		}
	}
	utils.JSONError(c, http.StatusInternalServerError, fallback, err.Error())
}
