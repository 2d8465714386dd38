package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
)

// DefaultDBPath is the file-backed store shared by the API and reminder
// processes. Both must open the same file or the reminder job never sees
// UI-created rows.
const DefaultDBPath = "./health_manager.db"

// Config collects process-wide settings read from the environment once at
// startup so components receive values instead of reaching for os.Getenv.
type Config struct {
	DBDriver string // "sqlite" (default) or "postgres"
	DBPath   string // sqlite file path

	JWTSecret string

	EmailProvider string // "smtp" (default) or "ses"
	EmailSender   string
	EmailPassword string
	SMTPServer    string
	SMTPPort      string

	S3Bucket string
	S3Region string
}

func Load() Config {
	// .env is a local-dev convenience; absence is fine in deployment.
	_ = godotenv.Load()

	cfg := Config{
		DBDriver:      getenv("DB_DRIVER", "sqlite"),
		DBPath:        getenv("DB_PATH", DefaultDBPath),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		EmailProvider: getenv("EMAIL_PROVIDER", "smtp"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		SMTPServer:    getenv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:      getenv("SMTP_PORT", "465"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),
		S3Region:      getenv("S3_REGION", os.Getenv("AWS_REGION")),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB connects to the configured store and migrates the schema. The
// returned handle is passed into each service; there is no package-level DB.
func OpenDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Medication{},
		&models.Appointment{},
		&models.Document{},
		&models.HealthVital{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	log.Printf("database ready (driver=%s)", cfg.DBDriver)
	return db, nil
}
