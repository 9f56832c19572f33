package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"resolveit/backend/internal/apperr"
	"resolveit/backend/internal/escalation"
	"resolveit/backend/internal/logger"
	"resolveit/backend/internal/models"
	"resolveit/backend/internal/notify"
	"resolveit/backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.NewDevelopment()
	if err != nil {
		fmt.Println("failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	storageSvc := storage.NewStorageService(db, nil, log) // no Redis needed for the CLI

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "seed-admin":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin seed-admin <email> <full name>")
			os.Exit(1)
		}
		if err := seedAdmin(storageSvc, os.Args[2], os.Args[3]); err != nil {
			log.Fatal("failed to seed admin", zap.Error(err))
		}
		fmt.Printf("Admin %s created.\n", os.Args[2])

	case "unresolved":
		escalations, err := storageSvc.FindUnresolvedEscalations()
		if err != nil {
			log.Fatal("failed to list unresolved escalations", zap.Error(err))
		}
		for _, e := range escalations {
			fmt.Printf("#%d complaint=%d escalated=%s reason=%q\n",
				e.ID, e.ComplaintID, e.EscalatedAt.Format(time.RFC3339), e.Reason)
		}
		fmt.Printf("%d unresolved escalation(s)\n", len(escalations))

	case "resolve":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin resolve <escalation_id>")
			os.Exit(1)
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 32)
		if err != nil {
			fmt.Println("Invalid escalation id. Please provide an integer.")
			os.Exit(1)
		}
		svc := newEscalationService(storageSvc, log)
		if err := svc.ResolveEscalation(uint(id)); err != nil {
			log.Fatal("failed to resolve escalation", zap.Error(err))
		}
		fmt.Printf("Escalation %d resolved.\n", id)

	case "sweep":
		svc := newEscalationService(storageSvc, log)
		if err := svc.Sweep(time.Now()); err != nil {
			log.Fatal("sweep failed", zap.Error(err))
		}
		fmt.Println("Sweep complete.")

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: admin <seed-admin|unresolved|resolve|sweep> [args]")
	os.Exit(1)
}

func newEscalationService(s storage.Storage, log *zap.Logger) *escalation.Service {
	mailer := notify.NewSMTPMailer(
		os.Getenv("SMTP_HOST"),
		os.Getenv("SMTP_PORT"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		os.Getenv("SMTP_FROM"),
	)
	return escalation.NewService(s, mailer, nil, log)
}

func seedAdmin(s storage.Storage, email, fullName string) error {
	existing, err := s.FindUserByEmail(email)
	if err == nil {
		if !existing.HasRole(models.RoleAdmin) {
			existing.Roles = append(existing.Roles, models.RoleAdmin)
			return s.SaveUser(existing)
		}
		return nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	admin := &models.User{
		FullName: fullName,
		Email:    email,
		Roles:    pq.StringArray{models.RoleUser, models.RoleAdmin},
	}
	return s.SaveUser(admin)
}
