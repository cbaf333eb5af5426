package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"
)

var quizTime = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

func seedResource(st *store.MemoryStore, id string, year int, age, gender string, createdAt time.Time) {
	st.Seed("quizResources", id, map[string]interface{}{
		"title":     "Quiz " + id,
		"year":      year,
		"age":       age,
		"gender":    gender,
		"createdAt": createdAt,
	})
}

func TestFilterResources(t *testing.T) {
	st := store.NewMemoryStore()
	seedResource(st, "q1", 2024, "senior", "general", quizTime)
	seedResource(st, "q2", 2025, "junior", "brothers", quizTime.Add(time.Hour))
	seedResource(st, "q3", 2025, "senior", "sisters", quizTime.Add(2*time.Hour))
	svc := &DefaultQuizService{Store: st}
	ctx := context.Background()

	tests := []struct {
		name    string
		field   string
		value   interface{}
		wantIDs []string
	}{
		{"by year", "year", 2025, []string{"q3", "q2"}},
		{"by age group", "age", "senior", []string{"q3", "q1"}},
		{"by gender", "gender", "brothers", []string{"q2"}},
		{"no matches", "year", 1999, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.FilterResources(ctx, tt.field, tt.value)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d resources, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("resources[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterResourcesRejectsUnknownFields(t *testing.T) {
	st := store.NewMemoryStore()
	seedResource(st, "q1", 2024, "senior", "general", quizTime)
	svc := &DefaultQuizService{Store: st}

	// An arbitrary field must not become a query; the whitelist closes it off.
	got := svc.FilterResources(context.Background(), "uploadedBy", "admin")
	if got == nil || len(got) != 0 {
		t.Fatalf("FilterResources(unknown field) = %v, want empty non-nil slice", got)
	}
}

func TestFilterResourcesNormalizes(t *testing.T) {
	st := store.NewMemoryStore()
	st.Seed("quizResources", "q1", map[string]interface{}{
		"title":     "Minimal",
		"year":      2024,
		"age":       "junior",
		"createdAt": quizTime,
	})
	svc := &DefaultQuizService{Store: st}

	got := svc.FilterResources(context.Background(), "year", 2024)
	if len(got) != 1 {
		t.Fatalf("got %d resources, want 1", len(got))
	}
	if got[0].Gender != models.GenderGeneral {
		t.Errorf("Gender = %q, want the %q default", got[0].Gender, models.GenderGeneral)
	}
	if got[0].AgeGroup != models.AgeGroupJunior {
		t.Errorf("AgeGroup = %q, want junior", got[0].AgeGroup)
	}
}

func TestSubmitHelpQuestion(t *testing.T) {
	st := store.NewMemoryStore()
	svc := &DefaultQuizService{Store: st}
	ctx := context.Background()

	id, err := svc.SubmitHelpQuestion(ctx, "  Ada  ", " ada@example.com ", " How do I register? ")
	if err != nil {
		t.Fatalf("SubmitHelpQuestion: %v", err)
	}
	if id == "" {
		t.Fatal("SubmitHelpQuestion returned an empty id")
	}

	questions := svc.ListHelpQuestions(ctx)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if questions[0].Name != "Ada" || questions[0].Question != "How do I register?" {
		t.Errorf("stored question = %+v, want trimmed fields", questions[0])
	}
}

func TestSubmitHelpQuestionValidation(t *testing.T) {
	svc := &DefaultQuizService{Store: store.NewMemoryStore()}
	ctx := context.Background()

	tests := []struct {
		name      string
		email     string
		question  string
		wantField string
	}{
		{"blank question", "a@b.c", "   ", "question"},
		{"blank email", "", "Why?", "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitHelpQuestion(ctx, "Name", tt.email, tt.question)
			ve, ok := utils.AsValidationError(err)
			if !ok {
				t.Fatalf("got %v, want a validation error", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestSubmitHelpQuestionWriteFailure(t *testing.T) {
	st := store.NewMemoryStore()
	st.FailWrites = errors.New("rejected")
	svc := &DefaultQuizService{Store: st}

	_, err := svc.SubmitHelpQuestion(context.Background(), "Name", "a@b.c", "Why?")
	if _, ok := utils.AsWriteError(err); !ok {
		t.Fatalf("got %v, want a categorized write error", err)
	}
}

func TestSubscribeHelpQuestionsLive(t *testing.T) {
	st := store.NewMemoryStore()
	svc := &DefaultQuizService{Store: st}

	var snapshots [][]models.QuizHelpQuestion
	stop := svc.SubscribeHelpQuestions(func(qs []models.QuizHelpQuestion) {
		snapshots = append(snapshots, qs)
	})
	defer stop()

	if _, err := svc.SubmitHelpQuestion(context.Background(), "Ada", "a@b.c", "When?"); err != nil {
		t.Fatalf("SubmitHelpQuestion: %v", err)
	}

	if len(snapshots) != 2 {
		t.Fatalf("got %d snapshots, want initial plus post-write", len(snapshots))
	}
	if len(snapshots[1]) != 1 || snapshots[1][0].Question != "When?" {
		t.Fatalf("post-write snapshot = %v, want the new question", snapshots[1])
	}
}
