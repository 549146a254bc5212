package main

import (
	"log"
	"os"
	"time"

	"exam-service/internal/db"
	"exam-service/internal/event"
	"exam-service/internal/handlers"
	"exam-service/internal/middleware"
	"exam-service/internal/repository"
	"exam-service/internal/service"
	"exam-service/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	db.InitMongo(mongoURI)
	redisClient := db.InitRedis()

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, session events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://frontend:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(getEnvOrDefault("MONGO_DATABASE", "exam_db"))

	questionRepo := repository.NewQuestionRepository(database)

	// Catalog enumerations for the filter UI
	catalogService := service.NewCatalogService(questionRepo, redisClient)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Session engine
	examService := service.NewExamService(questionRepo)
	var sink session.EventSink
	if publisher != nil {
		sink = publisher
	}
	sessionManager := session.NewManager(examService, sink)
	defer sessionManager.Shutdown()
	examHandler := handlers.NewExamHandler(sessionManager, examService)

	// Public routes - catalog reads used to build the filter UI
	publicCatalog := r.Group("/public/exam")
	{
		publicCatalog.GET("/topics", catalogHandler.GetTopics)
		publicCatalog.GET("/exam_dates", catalogHandler.GetExamDates)
		publicCatalog.GET("/subtopic_counts", catalogHandler.GetSubtopicCounts)
		publicCatalog.GET("/questions/count", catalogHandler.GetQuestionCount)
	}

	setupExamRoutes(r, examHandler, []byte(jwtSecret), publisher)

	r.Run(":" + getEnvOrDefault("PORT", "8000"))
}

func setupExamRoutes(r *gin.Engine, examHandler *handlers.ExamHandler, jwtSecret []byte, publisher *event.EventPublisher) {
	protected := r.Group("/protected/exam")
	protected.Use(middleware.Auth(jwtSecret))
	{
		// Question browsing for the topic pages
		protected.GET("/questions", examHandler.ListQuestions)

		// === SESSION LIFECYCLE ===

		protected.POST("/session", func(c *gin.Context) {
			examHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("exam.session.started", gin.H{
					"user_id":   middleware.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})

		protected.GET("/session", examHandler.GetSession)

		protected.POST("/session/answer", func(c *gin.Context) {
			examHandler.RecordAnswer(c)
			if publisher != nil {
				publisher.Publish("exam.session.answer_recorded", gin.H{
					"user_id":   middleware.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})

		protected.POST("/session/submit", func(c *gin.Context) {
			examHandler.SubmitSession(c)
			if publisher != nil {
				publisher.Publish("exam.session.submitted", gin.H{
					"user_id":   middleware.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})

		protected.DELETE("/session", func(c *gin.Context) {
			examHandler.ResetSession(c)
			if publisher != nil {
				publisher.Publish("exam.session.reset", gin.H{
					"user_id":   middleware.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
