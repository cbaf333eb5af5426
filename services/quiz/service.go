package quiz

import (
	"context"
	"sort"
	"strings"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/services/content"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"go.uber.org/zap"
)

const (
	quizResourcesCollection = "quizResources"
	helpQuestionsCollection = "quizHelpQuestions"
)

var filterableFields = map[string]bool{
	"year":   true,
	"age":    true,
	"gender": true,
}

func (s *DefaultQuizService) FilterResources(ctx context.Context, field string, value interface{}) []models.QuizResource {
	if !filterableFields[field] {
		utils.GetLogger().Warn("Rejected quiz resource filter", zap.String("field", field))
		return []models.QuizResource{}
	}

	docs, err := s.Store.ListWhere(ctx, quizResourcesCollection, field, value)
	if err != nil {
		utils.GetLogger().Error("Failed to filter quiz resources", zap.String("field", field), zap.Error(err))
		return []models.QuizResource{}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt().After(docs[j].CreatedAt())
	})
	out := make([]models.QuizResource, 0, len(docs))
	for _, d := range docs {
		out = append(out, content.NormalizeQuizResource(d))
	}
	return out
}

func normalizeHelpQuestion(doc store.Document) models.QuizHelpQuestion {
	return models.QuizHelpQuestion{
		ID:        doc.ID,
		Name:      doc.String("name"),
		Email:     doc.String("email"),
		Question:  doc.String("question"),
		CreatedAt: doc.CreatedAt(),
	}
}

func (s *DefaultQuizService) ListHelpQuestions(ctx context.Context) []models.QuizHelpQuestion {
	docs, err := s.Store.ListCollection(ctx, helpQuestionsCollection)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch quiz help questions", zap.Error(err))
		return []models.QuizHelpQuestion{}
	}
	out := make([]models.QuizHelpQuestion, 0, len(docs))
	for _, d := range docs {
		out = append(out, normalizeHelpQuestion(d))
	}
	return out
}

func (s *DefaultQuizService) SubscribeHelpQuestions(cb func([]models.QuizHelpQuestion)) func() {
	return s.Store.Subscribe(helpQuestionsCollection, true, func(docs []store.Document, err error) {
		if err != nil {
			utils.GetLogger().Error("Quiz help questions listener error", zap.Error(err))
			cb([]models.QuizHelpQuestion{})
			return
		}
		out := make([]models.QuizHelpQuestion, 0, len(docs))
		for _, d := range docs {
			out = append(out, normalizeHelpQuestion(d))
		}
		cb(out)
	})
}

func (s *DefaultQuizService) SubmitHelpQuestion(ctx context.Context, name, email, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", &utils.ValidationError{Field: "question", Reason: "must not be empty"}
	}
	if strings.TrimSpace(email) == "" {
		return "", &utils.ValidationError{Field: "email", Reason: "must not be empty"}
	}

	id, err := s.Store.AddDocument(ctx, helpQuestionsCollection, map[string]interface{}{
		"name":     strings.TrimSpace(name),
		"email":    strings.TrimSpace(email),
		"question": strings.TrimSpace(question),
	})
	if err != nil {
		return "", utils.WrapWriteError("SubmitHelpQuestion", err)
	}
	return id, nil
}
