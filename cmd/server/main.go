package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Paths06/TalentNetwork/internal/handlers"
	"github.com/Paths06/TalentNetwork/internal/middleware"
	"github.com/Paths06/TalentNetwork/internal/services"
	"github.com/Paths06/TalentNetwork/internal/store"
	"github.com/Paths06/TalentNetwork/internal/workers"
	"github.com/Paths06/TalentNetwork/pkg/config"
	"github.com/Paths06/TalentNetwork/pkg/logger"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init()

	// Initialize dependencies
	registry := store.NewWorkspaceRegistry()
	peopleService := services.NewPeopleService(registry)
	sharedHistoryService := services.NewSharedHistoryService(registry)
	exportService := services.NewExportService(registry)

	extractor := buildExtractor()
	extractionService := services.NewExtractionService(extractor)

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(extractionService, registry)

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.SessionMiddleware())

	// Setup routes
	setupRoutes(router, peopleService, sharedHistoryService, exportService, workerManager, registry)
	loadTemplates(router)

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	// Setup server
	server := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := server.Shutdown(context.Background()); err != nil {
		logger.WithError(err).Error("Server shutdown error")
	}
	logger.Info("Server stopped")
}

// buildExtractor picks the Gemini extractor when an API key is configured and
// falls back to the heuristic extractor otherwise
func buildExtractor() services.EntityExtractor {
	cfg := config.AppConfig.Gemini
	if cfg.APIKey == "" {
		logger.Info("No Gemini API key configured, using heuristic entity extractor")
		return services.NewHeuristicExtractor()
	}

	extractor, err := services.NewGeminiExtractor(context.Background(), cfg.APIKey, cfg.Model)
	if err != nil {
		logger.WithError(err).Warn("Gemini client unavailable, using heuristic entity extractor")
		return services.NewHeuristicExtractor()
	}

	logger.Infof("Using Gemini entity extractor with model %s", cfg.Model)
	return extractor
}

func setupRoutes(router *gin.Engine, peopleService *services.PeopleService, sharedHistoryService *services.SharedHistoryService, exportService *services.ExportService, workerManager *workers.WorkerManager, registry *store.WorkspaceRegistry) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(peopleService, registry)
	personHandler := handlers.NewPersonHandler(peopleService, sharedHistoryService)
	uploadHandler := handlers.NewUploadHandler(workerManager, registry)
	exportHandler := handlers.NewExportHandler(exportService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// Dashboard
	router.GET("/", dashboardHandler.Index)

	// People
	router.POST("/people", dashboardHandler.CreatePerson)
	router.GET("/people/:id", personHandler.ViewPerson)
	router.POST("/people/:id/employments", personHandler.AddEmployment)

	// Newsletter upload
	router.POST("/upload", uploadHandler.Upload)
	router.POST("/upload/clear", uploadHandler.Clear)

	// Exports
	router.GET("/export/csv", exportHandler.ExportCSV)
	router.GET("/export/xlsx", exportHandler.ExportXLSX)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal("Couldn't get working directory:", err)
	}

	router.LoadHTMLFiles(
		filepath.Join(cwd, "web/templates/layouts/header.html"),
		filepath.Join(cwd, "web/templates/layouts/footer.html"),
		filepath.Join(cwd, "web/templates/index.html"),
		filepath.Join(cwd, "web/templates/person.html"),
		filepath.Join(cwd, "web/templates/404.html"),
	)
}
