package handlers

import (
	"net/http"
	"strconv"

	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FilterQuizResourcesHandler handles GET /api/quiz/resources with an optional
// single facet: ?year=2024, ?age=senior or ?gender=brothers. Without a facet
// it returns the full cached list.
func (h *HandlerBundle) FilterQuizResourcesHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if year := c.Query("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid year filter", year)
			return
		}
		c.JSON(http.StatusOK, h.QuizSvc.FilterResources(ctx, "year", y))
		return
	}
	if age := c.Query("age"); age != "" {
		c.JSON(http.StatusOK, h.QuizSvc.FilterResources(ctx, "age", age))
		return
	}
	if gender := c.Query("gender"); gender != "" {
		c.JSON(http.StatusOK, h.QuizSvc.FilterResources(ctx, "gender", gender))
		return
	}

	c.JSON(http.StatusOK, h.ContentSvc.ListQuizResources(ctx))
}

// SubmitHelpQuestionHandler handles POST /api/quiz/help.
func (h *HandlerBundle) SubmitHelpQuestionHandler(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.QuizSvc.SubmitHelpQuestion(c.Request.Context(), body.Name, body.Email, body.Question)
	if err != nil {
		if ve, ok := utils.AsValidationError(err); ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid help question", ve.Error())
			return
		}
		h.Logger.Error("SubmitHelpQuestion: failed to store question", zap.Error(err))
		writeErrorResponse(c, err, "failed to submit question")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListHelpQuestionsHandler handles GET /api/admin/quiz/help.
func (h *HandlerBundle) ListHelpQuestionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.QuizSvc.ListHelpQuestions(c.Request.Context()))
}
