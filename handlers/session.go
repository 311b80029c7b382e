package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	sessionRepo "tutorbase/database/repository/session"
	"tutorbase/models"
	"tutorbase/services/schedule"
	"tutorbase/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionHandler serves session CRUD endpoints.
type SessionHandler struct {
	Repo      sessionRepo.SessionRepository
	Cache     *redis.Client
	Reminders ReminderEnqueuer
}

// ReminderEnqueuer schedules a reminder for an upcoming session.
type ReminderEnqueuer interface {
	EnqueueSessionReminder(session models.Session) error
}

func NewSessionHandler(repo sessionRepo.SessionRepository, cache *redis.Client, reminders ReminderEnqueuer) *SessionHandler {
	return &SessionHandler{Repo: repo, Cache: cache, Reminders: reminders}
}

// CreateSessionHandler books a single session directly.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	var input struct {
		SessionType  string `json:"sessionType" binding:"required"`
		StudentID    string `json:"studentId" binding:"required"`
		TrainerID    string `json:"trainerId" binding:"required"`
		Date         string `json:"date" binding:"required"` // "2006-01-02"
		StartTime    string `json:"startTime" binding:"required"`
		EndTime      string `json:"endTime" binding:"required"`
		AssignedSeat int    `json:"assignedSeat"`
		Notes        string `json:"notes"`
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
	start, err := schedule.ToMinutes(input.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startTime", err.Error())
		return
	}
	end, err := schedule.ToMinutes(input.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid endTime", err.Error())
		return
	}
	if start >= end {
		utils.JSONError(c, http.StatusBadRequest, "invalid interval", "startTime must be before endTime")
		return
	}
	seat := input.AssignedSeat
	if seat < 1 {
		seat = 1
	}

	session := models.Session{
		SessionType:  input.SessionType,
		StudentID:    input.StudentID,
		TrainerID:    input.TrainerID,
		Date:         day,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Status:       models.SessionScheduled,
		AssignedSeat: seat,
		Notes:        input.Notes,
	}
	if err := h.Repo.Create(c.Request.Context(), &session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session", err.Error())
		return
	}

	if h.Reminders != nil {
		if err := h.Reminders.EnqueueSessionReminder(session); err != nil {
			requestLogger(c).Warn("failed to enqueue session reminder",
				zap.String("sessionId", session.ID), zap.Error(err))
		}
	}
	h.invalidateDayCache(c.Request.Context(), input.Date)

	c.JSON(http.StatusCreated, session)
}

// ListSessionsHandler returns sessions, optionally filtered to one day via
// the "date" query parameter. Day listings are cached briefly in Redis.
func (h *SessionHandler) ListSessionsHandler(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		sessions, err := h.Repo.List(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list sessions", err.Error())
			return
		}
		c.JSON(http.StatusOK, sessions)
		return
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	cacheKey := utils.ScheduleCachePrefix + dateStr
	if h.Cache != nil {
		if cached, err := h.Cache.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	sessions, err := h.Repo.ListByDate(c.Request.Context(), day)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list sessions", err.Error())
		return
	}

	if h.Cache != nil {
		if payload, err := json.Marshal(sessions); err == nil {
			if err := h.Cache.Set(c.Request.Context(), cacheKey, payload, utils.ScheduleCacheTTL).Err(); err != nil {
				requestLogger(c).Warn("failed to cache day schedule", zap.String("date", dateStr), zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSessionHandler returns one session by id.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSessionStatusHandler transitions a session's status (e.g. the
// front desk marking it completed).
func (h *SessionHandler) UpdateSessionStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	switch input.Status {
	case models.SessionScheduled, models.SessionCompleted, models.SessionCancelled:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid status", input.Status)
		return
	}

	session, err := h.Repo.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update session", err.Error())
		return
	}
	h.invalidateDayCache(c.Request.Context(), session.Date.Format("2006-01-02"))
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) invalidateDayCache(ctx context.Context, dateStr string) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Del(ctx, utils.ScheduleCachePrefix+dateStr).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate day-schedule cache",
			zap.String("date", dateStr), zap.Error(err))
	}
}
