package quiz

import (
	"context"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
)

// QuizService owns quiz help questions and filtered quiz resource queries.
// Quiz resources themselves are listed through the content service; the
// filters here cover the year / age-group / gender facets.
type QuizService interface {
	FilterResources(ctx context.Context, field string, value interface{}) []models.QuizResource

	ListHelpQuestions(ctx context.Context) []models.QuizHelpQuestion
	SubscribeHelpQuestions(cb func([]models.QuizHelpQuestion)) func()
	SubmitHelpQuestion(ctx context.Context, name, email, question string) (string, error)
}

// DefaultQuizService is the production implementation.
type DefaultQuizService struct {
	Store store.Store
}
