package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"tutorbase/config"
	sessionRepo "tutorbase/database/repository/session"
	"tutorbase/models"
	"tutorbase/services/schedule"
	"tutorbase/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSessionReminder = "session:reminder"

// reminderLead is how long before a session starts its reminder fires.
const reminderLead = 30 * time.Minute

type reminderPayload struct {
	SessionID string `json:"sessionId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// ReminderClient enqueues session reminder tasks.
type ReminderClient struct {
	client *asynq.Client
}

func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(redisOpts())}
}

// EnqueueSessionReminder schedules a reminder shortly before the session
// starts. Sessions already past their reminder point are skipped.
func (rc *ReminderClient) EnqueueSessionReminder(session models.Session) error {
	startMin, err := schedule.ToMinutes(session.StartTime)
	if err != nil {
		return fmt.Errorf("session %s: %w", session.ID, err)
	}
	startAt := session.DayStart().Add(time.Duration(startMin) * time.Minute)
	remindAt := startAt.Add(-reminderLead)
	if remindAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(reminderPayload{SessionID: session.ID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeSessionReminder, payload)
	if _, err := rc.client.Enqueue(task, asynq.ProcessAt(remindAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for session %s: %w", session.ID, err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(sessions sessionRepo.SessionRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionReminder, handleReminderTask(sessions))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				time.Sleep(time.Duration(attempts) * 5 * time.Second)
				continue
			}
			return
		}
		log.Println("[ReminderWorker] Giving up after repeated failures")
	}()
}

func handleReminderTask(sessions sessionRepo.SessionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload reminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid reminder payload: %w", err)
		}

		session, err := sessions.GetByID(ctx, payload.SessionID)
		if errors.Is(err, sessionRepo.ErrNotFound) {
			// Session was deleted; nothing to remind.
			return nil
		}
		if err != nil {
			return err
		}
		if session.Status != models.SessionScheduled {
			// Cancelled or already completed sessions get no reminder.
			return nil
		}

		utils.GetLogger().Info("session reminder",
			zap.String("sessionId", session.ID),
			zap.String("sessionType", session.SessionType),
			zap.String("trainerId", session.TrainerID),
			zap.String("studentId", session.StudentID),
			zap.String("startTime", session.StartTime),
		)
		return nil
	}
}
