package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"wdclabs/ai-office/internal/config"
	"wdclabs/ai-office/internal/handlers"
	"wdclabs/ai-office/internal/repositories"
	"wdclabs/ai-office/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	cvParser := services.NewCVParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize the track resource archive
	archiveService, err := services.NewArchiveService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		geminiService,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize resource archive: %v", err)
	}

	if err := archiveService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize archive collection: %v", err)
	}
	log.Println("✅ Resource archive initialized successfully")

	// Initialize agents
	onboardingService := services.NewOnboardingService(geminiService, cfg.Worker.RetryMaxAttempts)
	managerService := services.NewManagerService(geminiService, archiveService, cfg.Worker.RetryMaxAttempts)
	reviewerService := services.NewReviewerService(geminiService, cfg.Worker.RetryMaxAttempts)
	coachService := services.NewCoachService(geminiService, cfg.Worker.RetryMaxAttempts)
	recommenderService := services.NewRecommenderService(geminiService, cfg.Worker.RetryMaxAttempts)
	log.Println("✅ Agent services initialized")

	// Initialize the orchestrator
	routerService := services.NewRouter(
		geminiService,
		onboardingService,
		managerService,
		reviewerService,
		coachService,
		recommenderService,
	)
	intentClassifier := services.NewIntentClassifier(geminiService)
	log.Println("✅ Orchestrator initialized")

	// Initialize the bio assessment pipeline
	assessmentService := services.NewAssessmentService(
		assessmentRepo,
		docRepo,
		onboardingService,
		cvParser,
	)

	worker := services.NewWorker(
		assessmentRepo,
		assessmentService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	chatHandler := handlers.NewChatHandler(routerService, intentClassifier, interactionRepo)
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	assessmentHandler := handlers.NewAssessmentHandler(
		assessmentRepo,
		docRepo,
		onboardingService,
		worker,
	)
	reviewHandler := handlers.NewReviewHandler(routerService, reviewerService)
	coachingHandler := handlers.NewCoachingHandler(coachService, interactionRepo)
	managerHandler := handlers.NewManagerHandler(managerService)
	recommendationHandler := handlers.NewRecommendationHandler(
		recommenderService,
		docRepo,
		cvParser,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "WDC Labs AI Office API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/chat", chatHandler.HandleChat)
	api.Post("/classify-intent", chatHandler.HandleClassifyIntent)
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/assess-bio", assessmentHandler.HandleAssessBio)
	api.Get("/assessment/:id", assessmentHandler.HandleGetAssessment)
	api.Post("/review-submission", reviewHandler.HandleReviewSubmission)
	api.Post("/interrogate-submission", reviewHandler.HandleInterrogateSubmission)
	api.Post("/translate-to-cv", coachingHandler.HandleTranslateToCV)
	api.Post("/soft-skills-feedback", coachingHandler.HandleSoftSkillsFeedback)
	api.Post("/mock-interview", coachingHandler.HandleMockInterview)
	api.Post("/assign-task", managerHandler.HandleAssignTask)
	api.Post("/generate-interruption", managerHandler.HandleGenerateInterruption)
	api.Post("/recommendation-letter", recommendationHandler.HandleRecommendationLetter)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "WDC Labs AI Office API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/chat",
				"POST /api/v1/classify-intent",
				"POST /api/v1/upload",
				"POST /api/v1/assess-bio",
				"GET /api/v1/assessment/:id",
				"POST /api/v1/review-submission",
				"POST /api/v1/interrogate-submission",
				"POST /api/v1/translate-to-cv",
				"POST /api/v1/soft-skills-feedback",
				"POST /api/v1/mock-interview",
				"POST /api/v1/assign-task",
				"POST /api/v1/generate-interruption",
				"POST /api/v1/recommendation-letter",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
