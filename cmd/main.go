package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"resolveit/backend/internal/api/handler"
	"resolveit/backend/internal/complaint"
	"resolveit/backend/internal/escalation"
	"resolveit/backend/internal/logger"
	"resolveit/backend/internal/models"
	"resolveit/backend/internal/notification"
	"resolveit/backend/internal/notify"
	"resolveit/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(log *zap.Logger) (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect PostgreSQL", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to connect Redis", zap.Error(err))
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.ComplaintStatus{},
		&models.Complaint{},
		&models.Escalation{},
		&models.Comment{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	if err := seedStatuses(db); err != nil {
		log.Fatal("failed to seed status reference data", zap.Error(err))
	}

	log.Info("database and Redis connections established, migrations complete")
	return db, rdb
}

// seedStatuses inserts the fixed status reference rows if absent.
func seedStatuses(db *gorm.DB) error {
	statuses := []models.ComplaintStatus{
		{Code: models.StatusNew, Display: "New"},
		{Code: models.StatusAssigned, Display: "Assigned"},
		{Code: models.StatusInProgress, Display: "In Progress"},
		{Code: models.StatusResolved, Display: "Resolved"},
		{Code: models.StatusRejected, Display: "Rejected"},
		{Code: models.StatusEscalated, Display: "Escalated"},
	}
	for _, status := range statuses {
		if err := db.Where("code = ?", status.Code).FirstOrCreate(&status).Error; err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: Error loading .env file")
	}

	var log *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "development" {
		log, err = logger.NewDevelopment()
	} else {
		log, err = logger.New(os.Getenv("LOG_LEVEL"))
	}
	if err != nil {
		fmt.Println("failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting ResolveIT backend")

	db, rdb := setupDependencies(log)
	s := storage.NewStorageService(db, rdb, log)

	mailer := notify.NewSMTPMailer(
		os.Getenv("SMTP_HOST"),
		os.Getenv("SMTP_PORT"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		os.Getenv("SMTP_FROM"),
	)

	// The Telegram ops channel is optional; without a token escalation
	// alerts go to email and in-app notifications only.
	var ops notify.OpsNotifier
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_ADMIN_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatal("TELEGRAM_ADMIN_CHAT_ID must be set with TELEGRAM_BOT_TOKEN", zap.Error(err))
		}
		tg, err := notify.NewTelegramNotifier(token, chatID, log)
		if err != nil {
			log.Fatal("failed to start Telegram notifier", zap.Error(err))
		}
		ops = tg
	}

	escalationSvc := escalation.NewService(s, mailer, ops, log)
	complaintSvc := complaint.NewService(s)
	notificationSvc := notification.NewService(s)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := escalation.NewScheduler(escalationSvc, log)
	go scheduler.Start(ctx)

	r := gin.Default()
	h := handler.NewHandler(complaintSvc, escalationSvc, notificationSvc, s, log)
	registerRoutes(r, h)

	server := &http.Server{
		Addr:           ":8080",
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()
	log.Info("HTTP server listening", zap.String("addr", server.Addr))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown failed", zap.Error(err))
	}
}

func registerRoutes(r *gin.Engine, h *handler.Handler) {
	r.POST("/auth/token", h.IssueToken)

	// Submission is open to anonymous citizens as well.
	r.POST("/complaints", h.SubmitComplaint)
	r.GET("/complaints/:complaintId", h.GetComplaint)
	r.GET("/complaints/:complaintId/comments", h.ComplaintComments)

	auth := r.Group("/", h.AuthRequired())
	{
		auth.GET("/users/me/complaints", h.UserComplaints)

		staff := auth.Group("/", h.RequireRole(models.RoleOfficer, models.RoleAdmin))
		{
			staff.PUT("/complaints/:complaintId/status", h.UpdateComplaintStatus)
			staff.POST("/complaints/:complaintId/comments", h.AddComment)
			staff.GET("/officer/complaints/assigned", h.AssignedComplaints)
			staff.GET("/officer/complaints/unassigned", h.UnassignedComplaints)

			staff.POST("/escalations/:complaintId", h.EscalateComplaint)
		}
		auth.GET("/escalations/complaint/:complaintId", h.ComplaintEscalations)

		admin := auth.Group("/", h.RequireRole(models.RoleAdmin))
		{
			admin.GET("/escalations/unresolved", h.UnresolvedEscalations)
			admin.PUT("/escalations/:escalationId/resolve", h.ResolveEscalation)
		}

		auth.GET("/notifications", h.UserNotifications)
		auth.GET("/notifications/unread", h.UnreadNotifications)
		auth.GET("/notifications/unread-count", h.UnreadCount)
		auth.PUT("/notifications/:notificationId/read", h.MarkNotificationRead)
		auth.POST("/notifications/read-all", h.MarkAllNotificationsRead)
		auth.DELETE("/notifications/:notificationId", h.DeleteNotification)
	}
}
