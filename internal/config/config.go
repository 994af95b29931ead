package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Business  BusinessConfig
	Document  DocumentConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type StorageConfig struct {
	DataDir        string
	CatalogFile    string
	LedgerFile     string
	JournalFile    string
	BillNumberFile string
	BillNumberSeed int64
}

type BusinessConfig struct {
	Name    string
	Email   string
	Contact string
}

type DocumentConfig struct {
	WriterType string
	OutputDir  string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "billing-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("CATALOG_FILE", "products.json")
	viper.SetDefault("LEDGER_FILE", "customers.json")
	viper.SetDefault("JOURNAL_FILE", "sales_data.csv")
	viper.SetDefault("BILL_NUMBER_FILE", "bill_number.txt")
	viper.SetDefault("BILL_NUMBER_SEED", 20240001)
	viper.SetDefault("BUSINESS_NAME", "Ready to Cook by 'NILA'")
	viper.SetDefault("BUSINESS_EMAIL", "readytocook1711@gmail.com")
	viper.SetDefault("BUSINESS_CONTACT", "01842-235229, 01611-235228")
	viper.SetDefault("DOCUMENT_WRITER", "file")
	viper.SetDefault("DOCUMENT_DIR", "./data/bills")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	dataDir := viper.GetString("DATA_DIR")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Storage: StorageConfig{
			DataDir:        dataDir,
			CatalogFile:    filepath.Join(dataDir, viper.GetString("CATALOG_FILE")),
			LedgerFile:     filepath.Join(dataDir, viper.GetString("LEDGER_FILE")),
			JournalFile:    filepath.Join(dataDir, viper.GetString("JOURNAL_FILE")),
			BillNumberFile: filepath.Join(dataDir, viper.GetString("BILL_NUMBER_FILE")),
			BillNumberSeed: viper.GetInt64("BILL_NUMBER_SEED"),
		},
		Business: BusinessConfig{
			Name:    viper.GetString("BUSINESS_NAME"),
			Email:   viper.GetString("BUSINESS_EMAIL"),
			Contact: viper.GetString("BUSINESS_CONTACT"),
		},
		Document: DocumentConfig{
			WriterType: viper.GetString("DOCUMENT_WRITER"),
			OutputDir:  viper.GetString("DOCUMENT_DIR"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
