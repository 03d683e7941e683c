package models

import "time"

// ActivityType classifies an audit log entry.
type ActivityType string

const (
	ActivityContact      ActivityType = "contact"
	ActivityNewsletter   ActivityType = "newsletter"
	ActivityQuote        ActivityType = "quote"
	ActivityStatusChange ActivityType = "status_change"
)

// ActivityItem is an append-only audit record shown on the dashboard feed.
// Items are written by the services on create and transition events and are
// never updated or deleted.
type ActivityItem struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	Type        ActivityType `gorm:"size:20;index" json:"type"`
	Title       string       `gorm:"size:255" json:"title"`
	Description string       `gorm:"size:500" json:"description"`
	Timestamp   time.Time    `gorm:"index" json:"timestamp"`
}
