package models

import "time"

// SubscriberStatus is the mailing-list state of a subscriber.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
)

// SubscriberSource records where a subscription came from.
type SubscriberSource string

const (
	SourceWebsite     SubscriberSource = "website"
	SourceContactForm SubscriberSource = "contact-form"
	SourceManual      SubscriberSource = "manual"
)

// ValidSubscriberSource reports whether s is a known source.
func ValidSubscriberSource(s SubscriberSource) bool {
	switch s {
	case SourceWebsite, SourceContactForm, SourceManual:
		return true
	}
	return false
}

// NewsletterSubscriber is a mailing-list entry keyed by email.
// Unsubscribing is reversible: resubscribing flips the status back and
// clears the unsubscribe timestamp.
type NewsletterSubscriber struct {
	ID             string           `gorm:"primaryKey;size:36" json:"id"`
	Email          string           `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name           string           `gorm:"size:255" json:"name,omitempty"`
	Status         SubscriberStatus `gorm:"size:20;default:'active';index" json:"status"`
	Source         SubscriberSource `gorm:"size:20" json:"source"`
	SubscribedAt   time.Time        `json:"subscribed_at"`
	UnsubscribedAt *time.Time       `json:"unsubscribed_at,omitempty"`
}

// IsActive returns true if the subscriber currently receives mail.
func (s *NewsletterSubscriber) IsActive() bool {
	return s.Status == SubscriberActive
}
