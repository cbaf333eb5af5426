package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Omoefe-bazunu/hhaven/config"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService broadcasts over FCM to the notices topic.
type DefaultNotificationService struct{}

// BroadcastNotice sends one topic message for a published notice.
func (s *DefaultNotificationService) BroadcastNotice(ctx context.Context, payload models.NoticePushPayload) error {
	msg := &messaging.Message{
		Topic: NoticeTopic,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: map[string]string{
			"noticeId": payload.NoticeID,
		},
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("BroadcastNotice: failed to send FCM message: %w", err)
	}

	utils.GetLogger().Info("Notice broadcast sent",
		zap.String("noticeID", payload.NoticeID), zap.String("response", response))
	return nil
}

// QueueBroadcaster enqueues notice pushes onto the Redis-backed task queue
// instead of sending inline, so a slow FCM round-trip never blocks the
// publish request.
type QueueBroadcaster struct {
	client *asynq.Client
}

// NewQueueBroadcaster connects the enqueue side of the push queue.
func NewQueueBroadcaster() *QueueBroadcaster {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPushQueueDB,
	})
	return &QueueBroadcaster{client: client}
}

// EnqueueNoticePush queues one broadcast task.
func (b *QueueBroadcaster) EnqueueNoticePush(ctx context.Context, payload models.NoticePushPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("EnqueueNoticePush: marshal payload: %w", err)
	}
	task := asynq.NewTask(TypeNoticePush, data)
	if _, err := b.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("EnqueueNoticePush: enqueue: %w", err)
	}
	return nil
}

// Close releases the queue connection.
func (b *QueueBroadcaster) Close() error {
	return b.client.Close()
}
