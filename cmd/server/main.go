package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simmaci/simmaci-backend/internal/config"
	"github.com/simmaci/simmaci-backend/internal/database"
	"github.com/simmaci/simmaci-backend/internal/handler"
	"github.com/simmaci/simmaci-backend/internal/renderer"
	"github.com/simmaci/simmaci-backend/internal/repository"
	"github.com/simmaci/simmaci-backend/internal/service"
	"github.com/simmaci/simmaci-backend/internal/utils"
)

// @title           SIMMACI API
// @version         1.0
// @description     Backend sistem manajemen SK yayasan pendidikan (SIMMACI).

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// ── Database ───────────────────────────────────────
	db := database.Connect(&cfg.Database)
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	log.Printf("Running migrations from: %s", migrationsPath)
	if err := database.RunMigrations(db, migrationsPath); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedAdminUser(context.Background()); err != nil {
		log.Printf("Warning: seed failed: %v", err)
	}

	// ── Storage (MinIO) ─────────────────────────────────
	storage, err := utils.NewStorageService(&cfg.MinIO)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}
	log.Println("MinIO connected successfully")

	// ── Repositories ──────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	schoolRepo := repository.NewSchoolRepository(db)
	guruRepo := repository.NewGuruRepository(db)
	skRepo := repository.NewSKRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// ── Services ─────────────────────────────────────────
	authService := service.NewAuthService(userRepo, cfg)
	schoolService := service.NewSchoolService(schoolRepo)
	guruService := service.NewGuruService(guruRepo, schoolRepo)
	templateService := service.NewTemplateService(templateRepo, storage)
	settingsService := service.NewSettingsService(settingsRepo, cfg)
	skRenderer := renderer.New(templateService)
	skService := service.NewSKService(skRepo, guruRepo, sequenceRepo, settingsService, skRenderer)

	// ── Handlers ─────────────────────────────────────────
	authHandler := handler.NewAuthHandler(authService)
	schoolHandler := handler.NewSchoolHandler(schoolService)
	guruHandler := handler.NewGuruHandler(guruService)
	skHandler := handler.NewSKHandler(skService)
	templateHandler := handler.NewTemplateHandler(templateService, settingsService)

	// ── Router ────────────────────────────────────────────
	router := handler.NewRouter(
		authHandler,
		schoolHandler,
		guruHandler,
		skHandler,
		templateHandler,
		cfg.JWT.Secret,
	)

	// ── HTTP Server ──────────────────────────────────────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server berjalan di port %s (mode: %s)", cfg.App.Port, cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
