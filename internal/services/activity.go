package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/mbaocraft/go-admin/internal/models"
	"gorm.io/gorm"
)

// ActivityService appends to and reads the audit feed. Records are
// write-once; nothing here updates or deletes.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends one activity item. Feed failures are reported but callers
// treat them as non-fatal; the feed is informational.
func (s *ActivityService) Record(typ models.ActivityType, title, description string) error {
	item := models.ActivityItem{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	}
	return s.db.Create(&item).Error
}

// Recent returns the newest items, newest first.
func (s *ActivityService) Recent(limit int) ([]models.ActivityItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var items []models.ActivityItem
	err := s.db.Order("timestamp DESC").Limit(limit).Find(&items).Error
	return items, err
}
