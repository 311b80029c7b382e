package routes

import (
	"time"

	"tutorbase/handlers"
	"tutorbase/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterAuthRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterAuthRoutes registers trainer authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.TrainerLoginHandler)
	}
}

// RegisterSessionRoutes registers session booking endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.GET("", hb.ListSessionsHandler)
		api.GET("/:id", hb.GetSessionHandler)
		api.POST("", hb.CreateSessionHandler)
		api.PATCH("/:id/status", hb.UpdateSessionStatusHandler)
	}
}

// RegisterAvailabilityRoutes registers trainer availability endpoints.
// Both mutate trainer state and require trainer authentication.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	api.Use(middleware.JWTAuthTrainerMiddleware(hb.TrainerRepo))
	{
		api.PUT("/timeslots", hb.SetupTimeslotsHandler)
		api.POST("/block", hb.DeclareBlockHandler)
	}
}

// RegisterAdminRoutes registers admin-only endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthAdminMiddleware())
	{
		api.POST("/generate", hb.GenerateScheduleHandler)
	}
}
