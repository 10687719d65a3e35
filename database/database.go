package database

import (
	"fmt"

	"clipgenie/internal/domain/accounts"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(dsn string, log *zap.Logger) error {
	if dsn == "" {
		return fmt.Errorf("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&accounts.Account{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	log.Info("connected and migrated", zap.String("driver", "postgres"))
	return nil
}
