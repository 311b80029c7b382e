// File: tutorbase/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorbase/config"
	"tutorbase/cron"
	"tutorbase/database"
	blockedRepoPkg "tutorbase/database/repository/blocked"
	sessionRepoPkg "tutorbase/database/repository/session"
	studentRepoPkg "tutorbase/database/repository/student"
	trainerRepoPkg "tutorbase/database/repository/trainer"
	"tutorbase/handlers"
	"tutorbase/middleware"
	"tutorbase/routes"
	"tutorbase/services/availability"
	"tutorbase/services/schedule"
	"tutorbase/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo(nil)
	trainerRepo := trainerRepoPkg.NewMongoTrainerRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	blockedRepo := blockedRepoPkg.NewMongoBlockedRepo()

	// scheduling engine.
	dayStart, err := schedule.ToMinutes(config.AppConfig.BusinessDayStart)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BUSINESS_DAY_START: %v", err)
	}
	dayEnd, err := schedule.ToMinutes(config.AppConfig.BusinessDayEnd)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BUSINESS_DAY_END: %v", err)
	}
	engine := &schedule.DefaultScheduleEngine{
		Repo:      sessionRepo,
		DayStart:  dayStart,
		DayEnd:    dayEnd,
		Blackouts: schedule.DemoBlackouts(),
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		TrainerRepo: trainerRepo,
		SessionRepo: sessionRepo,
		BlockedRepo: blockedRepo,
		Engine:      engine,
	}

	// background reminders.
	reminderClient := cron.NewReminderClient()
	cron.InitReminderWorker(sessionRepo)

	// handlers.
	sessionHandler := handlers.NewSessionHandler(sessionRepo, utils.GetCacheClient(), reminderClient)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	scheduleHandler := handlers.NewScheduleHandler(engine, sessionRepo, trainerRepo, studentRepo, reminderClient)
	authHandler := handlers.NewAuthHandler(trainerRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TrainerRepo: trainerRepo,

		TrainerLoginHandler: authHandler.TrainerLoginHandler,

		CreateSessionHandler:       sessionHandler.CreateSessionHandler,
		ListSessionsHandler:        sessionHandler.ListSessionsHandler,
		GetSessionHandler:          sessionHandler.GetSessionHandler,
		UpdateSessionStatusHandler: sessionHandler.UpdateSessionStatusHandler,

		SetupTimeslotsHandler: availabilityHandler.SetupTimeslotsHandler,
		DeclareBlockHandler:   availabilityHandler.DeclareBlockHandler,

		GenerateScheduleHandler: scheduleHandler.GenerateScheduleHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health checks for the health endpoint.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
