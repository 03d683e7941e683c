package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbaocraft/go-admin/internal/models"
	"github.com/mbaocraft/go-admin/validation"
	"gorm.io/gorm"
)

// NewsletterService manages the mailing list. Email is the unique key; an
// unsubscribed entry is revived in place rather than duplicated.
type NewsletterService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewNewsletterService(db *gorm.DB, activity *ActivityService) *NewsletterService {
	return &NewsletterService{db: db, activity: activity}
}

// Subscribe adds an email to the list. Subscribing an address that is
// already active fails with ErrDuplicateEmail; an unsubscribed address is
// flipped back to active.
func (s *NewsletterService) Subscribe(email, name string, source models.SubscriberSource) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	v := validation.Violations{}
	validation.Email("email", email, v)
	if !models.ValidSubscriberSource(source) {
		v["source"] = "unknown"
	}
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	var existing models.NewsletterSubscriber
	err := s.db.First(&existing, "email = ?", email).Error
	switch {
	case err == nil:
		if existing.IsActive() {
			return nil, ErrDuplicateEmail
		}
		return s.revive(&existing, name)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fallthrough to create
	default:
		return nil, err
	}

	sub := models.NewsletterSubscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Status:       models.SubscriberActive,
		Source:       source,
		SubscribedAt: time.Now(),
	}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}
	_ = s.activity.Record(models.ActivityNewsletter, "New subscriber",
		fmt.Sprintf("%s joined the newsletter via %s", sub.Email, source))
	return &sub, nil
}

// Get loads one subscriber.
func (s *NewsletterService) Get(id string) (*models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	err := s.db.First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// List returns all subscribers, newest first.
func (s *NewsletterService) List() ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	err := s.db.Order("subscribed_at DESC").Find(&subs).Error
	return subs, err
}

// Unsubscribe marks a subscriber unsubscribed and stamps the time.
// Unsubscribing twice is a no-op.
func (s *NewsletterService) Unsubscribe(id string) (*models.NewsletterSubscriber, error) {
	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !sub.IsActive() {
		return sub, nil
	}

	now := time.Now()
	sub.Status = models.SubscriberUnsubscribed
	sub.UnsubscribedAt = &now
	if err := s.db.Model(sub).Updates(map[string]any{
		"status":          sub.Status,
		"unsubscribed_at": sub.UnsubscribedAt,
	}).Error; err != nil {
		return nil, err
	}
	_ = s.activity.Record(models.ActivityNewsletter, "Unsubscribed",
		fmt.Sprintf("%s left the newsletter", sub.Email))
	return sub, nil
}

// Resubscribe flips an unsubscribed entry back to active.
func (s *NewsletterService) Resubscribe(id string) (*models.NewsletterSubscriber, error) {
	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sub.IsActive() {
		return sub, nil
	}
	return s.revive(sub, sub.Name)
}

func (s *NewsletterService) revive(sub *models.NewsletterSubscriber, name string) (*models.NewsletterSubscriber, error) {
	sub.Status = models.SubscriberActive
	sub.UnsubscribedAt = nil
	if name != "" {
		sub.Name = name
	}
	if err := s.db.Model(sub).Updates(map[string]any{
		"status":          sub.Status,
		"unsubscribed_at": nil,
		"name":            sub.Name,
	}).Error; err != nil {
		return nil, err
	}
	_ = s.activity.Record(models.ActivityNewsletter, "Resubscribed",
		fmt.Sprintf("%s rejoined the newsletter", sub.Email))
	return sub, nil
}
