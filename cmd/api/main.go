package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clinicore/internal/auth"
	"clinicore/internal/config"
	"clinicore/internal/httpserver"
	"clinicore/internal/logger"
	"clinicore/internal/models"
	"clinicore/internal/repositories"
	"clinicore/internal/services"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	if cfg.DatabaseURL == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		lg.Fatalw("JWT_SECRET is empty")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(&models.Clinic{}, &models.User{}, &models.Patient{}, &models.Evaluation{}, &models.AuditLog{}); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	seedDemoClinic(db, lg)

	users := repositories.NewUserRepository(db)
	clinics := repositories.NewClinicRepository(db)
	patients := repositories.NewPatientRepository(db)
	evaluations := repositories.NewEvaluationRepository(db)
	audits := repositories.NewAuditRepository(db)

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	auditSvc := services.NewAuditService(audits, lg)

	router := httpserver.NewRouter(httpserver.Deps{
		DB:      db,
		Issuer:  issuer,
		Users:   users,
		Clinics: clinics,

		Auth:        services.NewAuthService(users, clinics, issuer, lg),
		Patients:    services.NewPatientService(patients, evaluations, lg),
		Evaluations: services.NewEvaluationService(evaluations, patients, lg),
		Clinic:      services.NewClinicService(clinics, lg),
		Search:      services.NewSearchService(patients, evaluations, lg),
		Audit:       auditSvc,

		Log: lg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Infow("listening", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	lg.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Errorw("shutdown failed", "error", err)
	}
	auditSvc.Drain()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// seedDemoClinic provisions the demo clinic with an admin and a doctor
// account on an empty database.
func seedDemoClinic(db *gorm.DB, lg *zap.SugaredLogger) {
	var count int64
	db.Model(&models.Clinic{}).Count(&count)
	if count > 0 {
		return
	}

	clinic := models.Clinic{
		ID:       uuid.NewString(),
		Name:     "Clinica Dentară Demo",
		Address:  "Str. Exemplu nr. 1, București",
		Phone:    "0211234567",
		Email:    "contact@clinica-demo.ro",
		IsActive: true,
	}
	if err := db.Create(&clinic).Error; err != nil {
		lg.Errorw("seed clinic failed", "error", err)
		return
	}

	adminHash, _ := auth.HashPassword("admin123")
	seedUsers := []models.User{
		{
			ID:           uuid.NewString(),
			ClinicID:     clinic.ID,
			Email:        "admin@clinica-demo.ro",
			PasswordHash: adminHash,
			FirstName:    "Ana",
			LastName:     "Popescu",
			Role:         models.RoleAdmin,
			IsActive:     true,
		},
		{
			ID:           uuid.NewString(),
			ClinicID:     clinic.ID,
			Email:        "doctor@clinica-demo.ro",
			PasswordHash: adminHash,
			FirstName:    "Mihai",
			LastName:     "Ionescu",
			Role:         models.RoleDoctor,
			IsActive:     true,
		},
	}
	for i := range seedUsers {
		if err := db.Create(&seedUsers[i]).Error; err != nil {
			lg.Errorw("seed user failed", "email", seedUsers[i].Email, "error", err)
		}
	}
	lg.Infow("seeded demo clinic", "clinic", clinic.Name)
}
