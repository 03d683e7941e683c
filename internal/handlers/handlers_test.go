package handlers

import (
	"fmt"
	"testing"

	"github.com/mbaocraft/go-admin/internal/models"
	"github.com/mbaocraft/go-admin/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.NewsletterSubscriber{},
		&models.Quote{},
		&models.AdditionalCost{},
		&models.ActivityItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newActivity(db *gorm.DB) *services.ActivityService {
	return services.NewActivityService(db)
}
