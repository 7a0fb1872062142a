package db

import (
	"os"

	"newsline/internal/logger"
	"newsline/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=newsline port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.L.Fatal("failed to connect to database", zap.Error(err))
	}

	logger.L.Info("database connection established")

	if err := Migrate(DB); err != nil {
		logger.L.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.L.Info("database migration completed")

	seedTopics()
}

// Migrate keeps the schema in step with the model structs. Split out so
// tests can run it against their own gorm handle.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.Topic{},
		&models.User{},
		&models.Article{},
		&models.Comment{},
	)
}

func seedTopics() {
	// Skip when topics already exist
	var count int64
	DB.Model(&models.Topic{}).Count(&count)
	if count > 0 {
		logger.L.Info("topics already seeded, skipping")
		return
	}

	topics := []models.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
		{Slug: "football", Description: "FOOTIE!"},
		{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
	}

	for _, topic := range topics {
		if err := DB.Create(&topic).Error; err != nil {
			logger.L.Warn("failed to seed topic", zap.String("slug", topic.Slug), zap.Error(err))
		}
	}
	logger.L.Info("initial topics created")
}
