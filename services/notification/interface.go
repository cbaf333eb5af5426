package notification

import (
	"context"

	"github.com/Omoefe-bazunu/hhaven/models"
)

// NoticeTopic is the FCM topic every app install subscribes to.
const NoticeTopic = "notices"

// TypeNoticePush is the queued task type for notice broadcasts.
const TypeNoticePush = "notice:push"

// NotificationService sends push broadcasts for published notices.
type NotificationService interface {
	BroadcastNotice(ctx context.Context, payload models.NoticePushPayload) error
}
