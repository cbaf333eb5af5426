package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Omoefe-bazunu/hhaven/config"
	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitNoticePushWorker runs the async push worker in background.
func InitNoticePushWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPushQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeNoticePush, handleNoticePushTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NoticePushWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NoticePushWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NoticePushWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleNoticePushTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NoticePushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NoticePushHandler] Invalid payload: %v", err)
			return err
		}

		if err := notifSvc.BroadcastNotice(ctx, p); err != nil {
			log.Printf("[NoticePushHandler] Failed to broadcast notice %s: %v", p.NoticeID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPushQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NoticePushWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
