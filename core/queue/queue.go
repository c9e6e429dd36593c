package queue

import (
	"context"
	"encoding/json"
	"time"

	"familyhub/core/config"
	"familyhub/core/logger"

	"github.com/hibiken/asynq"
)

const TypeEventReminder = "event:reminder"

// EventReminderPayload is delivered when an event's reminder fires.
type EventReminderPayload struct {
	EventID   string   `json:"event_id"`
	GroupID   string   `json:"group_id"`
	Title     string   `json:"title"`
	EventDate string   `json:"event_date"`
	Emails    []string `json:"emails"`
}

type Queue struct {
	client *asynq.Client
}

func redisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

func NewQueue(cfg *config.Config) *Queue {
	return &Queue{client: asynq.NewClient(redisOpt(cfg))}
}

func (q *Queue) Close() error {
	return q.client.Close()
}

// ScheduleEventReminder enqueues a reminder task to run at the given time.
// Reminders already in the past are delivered immediately.
func (q *Queue) ScheduleEventReminder(ctx context.Context, payload EventReminderPayload, at time.Time) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeEventReminder, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}
	if at.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(at))
	}
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		logger.Error("Queue:ScheduleEventReminder:Enqueue:Error:", err)
		return err
	}
	logger.Info("Queue:ScheduleEventReminder:Enqueued", "task_id", info.ID, "event_id", payload.EventID, "at", at)
	return nil
}

// RunWorker blocks serving reminder tasks until the server is stopped.
func RunWorker(cfg *config.Config, handler asynq.HandlerFunc) error {
	srv := asynq.NewServer(redisOpt(cfg), asynq.Config{Concurrency: 5})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEventReminder, handler)
	return srv.Run(mux)
}
