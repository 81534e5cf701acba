package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/artw-company/l14/auth"
	"github.com/artw-company/l14/config"
	"github.com/artw-company/l14/handlers"
	"github.com/artw-company/l14/middleware"
	"github.com/artw-company/l14/survey"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("DEPLOY_ENVIRONMENT") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Initialize database connection and demo data
	config.Connect()
	if err := config.Seed(config.Database); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	surveyHandler := handlers.NewSurveyHandler(survey.NewGormRepository(config.Database))
	mux := http.NewServeMux()

	// Survey graph
	mux.HandleFunc("GET /api/surveys/{surveyID}", surveyHandler.GetSurvey)
	mux.HandleFunc("PUT /api/surveys/{surveyID}", auth.RequireEditor(surveyHandler.UpdateSurvey))
	mux.HandleFunc("PATCH /api/surveys/{surveyID}", surveyHandler.MethodNotAllowed)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestID(mux))

	// Server configuration

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	log.Printf("listening on %s", serverAddr)
	http.ListenAndServe(serverAddr, corsHandler)
}
