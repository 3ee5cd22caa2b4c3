package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/config"
	"github.com/skillmarket/skillmarket-api/internal/database"
	"github.com/skillmarket/skillmarket-api/internal/handler"
	"github.com/skillmarket/skillmarket-api/internal/middleware"
	"github.com/skillmarket/skillmarket-api/internal/router"
	"github.com/skillmarket/skillmarket-api/internal/service"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	records := store.NewRedisStore(redisClient)

	validate := validator.New(validator.WithRequiredStructEnabled())

	tokenService := service.NewTokenService(records, cfg.TokenTTL, logger)
	authService := service.NewAuthService(records, tokenService, validate, cfg.BcryptCost, logger)
	courseService := service.NewCourseService(records, validate, logger)
	enrollmentService := service.NewEnrollmentService(records, validate, logger)
	commentService := service.NewCommentService(records, validate, logger)
	messageService := service.NewMessageService(records, validate, logger)
	examService := service.NewExamService(records, validate, logger)
	certificateService := service.NewCertificateService(records, validate, logger)
	liveClassService := service.NewLiveClassService(records, validate, logger)
	adminService := service.NewAdminService(records, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:        handler.NewAuthHandler(authService, logger),
		CourseHandler:      handler.NewCourseHandler(courseService, logger),
		EnrollmentHandler:  handler.NewEnrollmentHandler(enrollmentService, logger),
		CommentHandler:     handler.NewCommentHandler(commentService, logger),
		MessageHandler:     handler.NewMessageHandler(messageService, logger),
		ExamHandler:        handler.NewExamHandler(examService, logger),
		CertificateHandler: handler.NewCertificateHandler(certificateService, logger),
		LiveClassHandler:   handler.NewLiveClassHandler(liveClassService, logger),
		AdminHandler:       handler.NewAdminHandler(adminService, logger),
		TokenMiddleware:    middleware.TokenProtected(tokenService),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
