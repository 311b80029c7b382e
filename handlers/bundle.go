package handlers

import (
	trainerRepo "tutorbase/database/repository/trainer"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the wired handlers for route registration.
type HandlerBundle struct {
	TrainerRepo trainerRepo.TrainerRepository

	// Auth endpoints.
	TrainerLoginHandler gin.HandlerFunc

	// Session endpoints.
	CreateSessionHandler       gin.HandlerFunc
	ListSessionsHandler        gin.HandlerFunc
	GetSessionHandler          gin.HandlerFunc
	UpdateSessionStatusHandler gin.HandlerFunc

	// Availability endpoints.
	SetupTimeslotsHandler gin.HandlerFunc
	DeclareBlockHandler   gin.HandlerFunc

	// Admin endpoints.
	GenerateScheduleHandler gin.HandlerFunc
}
