package db

import (
	"fmt"
	"time"

	"github.com/mbaocraft/go-admin/internal/config"
	"github.com/mbaocraft/go-admin/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured store. SQLite opens immediately; Postgres is
// retried a few times to ride out container startup.
func Connect(app config.AppConfig) (*gorm.DB, error) {
	if !app.IsPostgres() {
		return gorm.Open(sqlite.Open(app.DatabaseDSN), &gorm.Config{})
	}

	var conn *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		conn, err = gorm.Open(postgres.Open(app.DatabaseDSN), &gorm.Config{})
		if err == nil {
			return conn, nil
		}
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("database connection failed: %w", err)
}

// Migrate applies GORM auto-migrations for all entities.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.NewsletterSubscriber{},
		&models.Quote{},
		&models.AdditionalCost{},
		&models.ActivityItem{},
	); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}
