package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/readytocook/billing-api/internal/application/service"
	"github.com/readytocook/billing-api/internal/config"
	"github.com/readytocook/billing-api/internal/infrastructure/storage"
	"github.com/readytocook/billing-api/internal/presentation/http/handler"
	"github.com/readytocook/billing-api/internal/presentation/http/routes"
	"github.com/readytocook/billing-api/pkg/document"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize file-backed stores
	billNumbers := storage.NewBillNumberStore(cfg.Storage.BillNumberFile, cfg.Storage.BillNumberSeed)
	catalogStore := storage.NewCatalogStore(cfg.Storage.CatalogFile)
	customerLedger := storage.NewCustomerLedger(cfg.Storage.LedgerFile)
	salesJournal := storage.NewSalesJournal(cfg.Storage.JournalFile)

	// Initialize document writer
	docWriter, err := document.NewWriterFromConfig(cfg.Document.WriterType, cfg.Document.OutputDir)
	if err != nil {
		log.Printf("Warning: failed to initialize document writer: %v", err)
		docWriter = document.NewNullWriter()
	}

	// Initialize services
	billingService := service.NewBillingService(
		billNumbers,
		customerLedger,
		salesJournal,
		docWriter,
		service.BusinessInfo{
			Name:    cfg.Business.Name,
			Email:   cfg.Business.Email,
			Contact: cfg.Business.Contact,
		},
	)
	catalogService := service.NewCatalogService(catalogStore)
	customerService := service.NewCustomerService(customerLedger)

	// Initialize handlers
	handlers := &routes.Handlers{
		Billing:  handler.NewBillingHandler(billingService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Customer: handler.NewCustomerHandler(customerService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Data directory: %s", cfg.Storage.DataDir)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
