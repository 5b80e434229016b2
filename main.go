// main.go

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"staffhub/config"
	"staffhub/internal/app"
	"staffhub/internal/database"
	"staffhub/internal/server"

	_ "staffhub/docs" // Import generated docs (created by swag init)

	"github.com/go-playground/validator/v10"
)

// @title           StaffHub API
// @version         1.0
// @description     Application lifecycle and workflow engine for staffing marketplaces.

// @contact.name   API Support
// @contact.email  support@staffhub.example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Initialize Ent Client ---
	entClient, err := database.NewEntClient(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer entClient.Close()

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		EntClient:   entClient,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
