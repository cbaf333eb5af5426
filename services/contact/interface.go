package contact

import (
	"context"

	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/models"
)

// ContactService handles contact-form submissions and the admin inbox.
type ContactService interface {
	// AddMessage validates and stores a submission. Validation failures are
	// returned before any write; store rejections come back categorized.
	AddMessage(ctx context.Context, msg models.ContactMessage) (string, error)

	ListMessages(ctx context.Context) []models.ContactMessage
	SubscribeMessages(cb func([]models.ContactMessage)) func()
}

// DefaultContactService is the production implementation.
type DefaultContactService struct {
	Store store.Store
}
