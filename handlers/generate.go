package handlers

import (
	"net/http"
	"time"

	sessionRepo "tutorbase/database/repository/session"
	studentRepo "tutorbase/database/repository/student"
	trainerRepo "tutorbase/database/repository/trainer"
	"tutorbase/services/schedule"
	"tutorbase/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the admin demo-schedule generation endpoint.
type ScheduleHandler struct {
	Engine      schedule.ScheduleEngine
	SessionRepo sessionRepo.SessionRepository
	TrainerRepo trainerRepo.TrainerRepository
	StudentRepo studentRepo.StudentRepository
	Reminders   ReminderEnqueuer
}

func NewScheduleHandler(engine schedule.ScheduleEngine, sessions sessionRepo.SessionRepository, trainers trainerRepo.TrainerRepository, students studentRepo.StudentRepository, reminders ReminderEnqueuer) *ScheduleHandler {
	return &ScheduleHandler{
		Engine:      engine,
		SessionRepo: sessions,
		TrainerRepo: trainers,
		StudentRepo: students,
		Reminders:   reminders,
	}
}

// GenerateScheduleHandler fills one calendar day with generated sessions
// from the demo catalog and persists them. Existing per-kind counts for
// the day are passed to the engine so caps hold across repeated calls.
func (h *ScheduleHandler) GenerateScheduleHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"` // "2006-01-02"
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	ctx := c.Request.Context()
	trainers, err := h.TrainerRepo.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list trainers", err.Error())
		return
	}
	students, err := h.StudentRepo.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list students", err.Error())
		return
	}
	counts, err := h.SessionRepo.CountByKind(ctx, day)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to count sessions", err.Error())
		return
	}

	generated, err := h.Engine.Generate(day, schedule.DemoKindConfigs(), trainers, students, counts)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to generate schedule", err.Error())
		return
	}

	logger := requestLogger(c)
	for i := range generated {
		if err := h.SessionRepo.Create(ctx, &generated[i]); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to persist generated session", err.Error())
			return
		}
		if h.Reminders != nil {
			if err := h.Reminders.EnqueueSessionReminder(generated[i]); err != nil {
				logger.Warn("failed to enqueue session reminder",
					zap.String("sessionId", generated[i].ID), zap.Error(err))
			}
		}
	}

	logger.Info("generated demo schedule",
		zap.String("date", input.Date),
		zap.Int("sessions", len(generated)),
	)
	c.JSON(http.StatusCreated, gin.H{
		"date":     input.Date,
		"count":    len(generated),
		"sessions": generated,
	})
}
