package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/solvex-capital/marketing-core/internal/models"
)

// Connect opens the MySQL connection pool and runs schema migration.
func Connect(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("database connected")
	return db, nil
}

// Migrate creates or updates the schema for all content models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.BlogTypeModel{},
		&models.BlogModel{},
		&models.FooterModel{},
		&models.InvestmentCardModel{},
		&models.LandingPageModel{},
		&models.PageContentModel{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
