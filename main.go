package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"inkwell-backend/internal/api"
	"inkwell-backend/internal/auth"
	"inkwell-backend/internal/database"
)

func main() {
	// Load environment from .env if present
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Get database path from environment or default
	dbPath := os.Getenv("INKWELL_DB_PATH")
	if dbPath == "" {
		// Default to current directory for development
		dbPath = "./inkwell.db"
	}

	// Ensure absolute path
	if !filepath.IsAbs(dbPath) {
		cwd, _ := os.Getwd()
		dbPath = filepath.Join(cwd, dbPath)
	}

	// Initialize database
	log.Printf("Initializing database at %s", dbPath)
	db, err := database.Open(database.Config{Path: dbPath})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	userRepo := database.NewUserRepo(db)
	sessionRepo := database.NewSessionRepo(db)
	postRepo := database.NewPostRepo(db)

	guard := auth.NewGuard(sessionRepo, userRepo)

	// Sweep expired sessions periodically. The guard never resolves them
	// regardless; this just keeps the table from growing unbounded.
	go sweepExpiredSessions(sessionRepo)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Routes
	api.New(guard, userRepo, sessionRepo, postRepo).RegisterRoutes(e)

	// Get port from environment or default
	port := os.Getenv("INKWELL_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting inkwell backend on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}

func sweepExpiredSessions(sessions *database.SessionRepo) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		n, err := sessions.DeleteExpired(context.Background(), time.Now())
		if err != nil {
			log.Printf("Failed to sweep expired sessions: %v", err)
			continue
		}
		if n > 0 {
			log.Printf("Removed %d expired sessions", n)
		}
	}
}
