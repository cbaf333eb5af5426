package contact

import (
	"context"
	"strings"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"go.uber.org/zap"
)

const messagesCollection = "contactMessages"

func normalizeMessage(doc store.Document) models.ContactMessage {
	return models.ContactMessage{
		ID:        doc.ID,
		Name:      doc.String("name"),
		Email:     doc.String("email"),
		Subject:   doc.String("subject"),
		Message:   doc.String("message"),
		CreatedAt: doc.CreatedAt(),
	}
}

func (s *DefaultContactService) AddMessage(ctx context.Context, msg models.ContactMessage) (string, error) {
	if strings.TrimSpace(msg.Name) == "" {
		return "", &utils.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(msg.Email) == "" {
		return "", &utils.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if strings.TrimSpace(msg.Message) == "" {
		return "", &utils.ValidationError{Field: "message", Reason: "must not be empty"}
	}

	id, err := s.Store.AddDocument(ctx, messagesCollection, map[string]interface{}{
		"name":    strings.TrimSpace(msg.Name),
		"email":   strings.TrimSpace(msg.Email),
		"subject": strings.TrimSpace(msg.Subject),
		"message": strings.TrimSpace(msg.Message),
	})
	if err != nil {
		return "", utils.WrapWriteError("AddMessage", err)
	}
	return id, nil
}

func (s *DefaultContactService) ListMessages(ctx context.Context) []models.ContactMessage {
	docs, err := s.Store.ListCollection(ctx, messagesCollection)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch contact messages", zap.Error(err))
		return []models.ContactMessage{}
	}
	out := make([]models.ContactMessage, 0, len(docs))
	for _, d := range docs {
		out = append(out, normalizeMessage(d))
	}
	return out
}

func (s *DefaultContactService) SubscribeMessages(cb func([]models.ContactMessage)) func() {
	return s.Store.Subscribe(messagesCollection, true, func(docs []store.Document, err error) {
		if err != nil {
			utils.GetLogger().Error("Contact messages listener error", zap.Error(err))
			cb([]models.ContactMessage{})
			return
		}
		out := make([]models.ContactMessage, 0, len(docs))
		for _, d := range docs {
			out = append(out, normalizeMessage(d))
		}
		cb(out)
	})
}
