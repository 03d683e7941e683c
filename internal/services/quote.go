package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbaocraft/go-admin/internal/models"
	"github.com/mbaocraft/go-admin/internal/pricing"
	"github.com/mbaocraft/go-admin/validation"
	"gorm.io/gorm"
)

// Default terms applied to every new draft unless overridden.
const (
	DefaultValidityPeriod   = "30 days"
	DefaultPaymentTerms     = "50% deposit, 50% on completion"
	DefaultDeliveryTimeline = "2-3 weeks"
)

// QuoteService owns the quote lifecycle: drafting, pricing recomputation,
// the send gate and status transitions.
type QuoteService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewQuoteService(db *gorm.DB, activity *ActivityService) *QuoteService {
	return &QuoteService{db: db, activity: activity}
}

// NewDraft creates a quote in draft status. If contactID is non-empty and
// resolves, customer fields are pre-filled from the contact; an unknown id
// leaves them blank without error. The contact itself is not modified.
func (s *QuoteService) NewDraft(contactID string) (*models.Quote, error) {
	now := time.Now()
	number, err := models.GenerateQuoteNumber(s.db, now.Year())
	if err != nil {
		return nil, fmt.Errorf("generate quote number: %w", err)
	}

	q := models.Quote{
		ID:               uuid.NewString(),
		QuoteNumber:      number,
		Status:           models.QuoteStatusDraft,
		PaymentTerms:     DefaultPaymentTerms,
		DeliveryTimeline: DefaultDeliveryTimeline,
		ValidityPeriod:   DefaultValidityPeriod,
	}

	if contactID != "" {
		var contact models.Contact
		if err := s.db.First(&contact, "id = ?", contactID).Error; err == nil {
			q.ContactID = &contact.ID
			q.CustomerName = contact.Name
			q.CustomerEmail = contact.Email
			q.CustomerPhone = contact.Phone
			q.Location = contact.Location
		}
	}

	pricing.Apply(&q)
	if err := s.db.Create(&q).Error; err != nil {
		return nil, err
	}
	_ = s.activity.Record(models.ActivityQuote, "Quote drafted",
		fmt.Sprintf("Quote %s created", q.QuoteNumber))
	return &q, nil
}

// Get loads a quote with its cost items in insertion order.
func (s *QuoteService) Get(id string) (*models.Quote, error) {
	var q models.Quote
	err := s.db.Preload("AdditionalCosts", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns all quotes, newest first, with cost items preloaded.
func (s *QuoteService) List() ([]models.Quote, error) {
	var quotes []models.Quote
	err := s.db.Preload("AdditionalCosts", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

// QuoteUpdate is a partial update of a draft. Nil fields are untouched.
type QuoteUpdate struct {
	CustomerName     *string
	CustomerEmail    *string
	CustomerPhone    *string
	HouseType        *models.HouseType
	HouseSize        *string
	Location         *string
	BasePrice        *float64
	Discount         *float64
	PaymentTerms     *string
	DeliveryTimeline *string
	ValidityPeriod   *string
	Notes            *string
}

// UpdateDraft applies a partial update to a draft quote and recomputes the
// derived totals. Quotes past draft cannot be edited.
//
// An explicit base price in the same update is applied before the house
// type, so choosing a type only fills in its suggested price when the price
// is still at the zero default.
func (s *QuoteService) UpdateDraft(id string, upd QuoteUpdate) (*models.Quote, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !q.CanEdit() {
		return nil, ErrInvalidTransition
	}

	if upd.CustomerName != nil {
		q.CustomerName = *upd.CustomerName
	}
	if upd.CustomerEmail != nil {
		q.CustomerEmail = *upd.CustomerEmail
	}
	if upd.CustomerPhone != nil {
		q.CustomerPhone = *upd.CustomerPhone
	}
	if upd.HouseSize != nil {
		q.HouseSize = *upd.HouseSize
	}
	if upd.Location != nil {
		q.Location = *upd.Location
	}
	if upd.BasePrice != nil {
		q.BasePrice = *upd.BasePrice
	}
	if upd.HouseType != nil {
		if !models.ValidHouseType(*upd.HouseType) {
			return nil, &ValidationError{Violations: validation.Violations{"house_type": "unknown"}}
		}
		q.HouseType = *upd.HouseType
		if q.BasePrice == 0 {
			q.BasePrice = models.HouseTypePrices[*upd.HouseType]
		}
	}
	if upd.Discount != nil {
		if *upd.Discount < 0 {
			return nil, &ValidationError{Violations: validation.Violations{"discount": "must_not_be_negative"}}
		}
		q.Discount = *upd.Discount
	}
	if upd.PaymentTerms != nil {
		q.PaymentTerms = *upd.PaymentTerms
	}
	if upd.DeliveryTimeline != nil {
		q.DeliveryTimeline = *upd.DeliveryTimeline
	}
	if upd.ValidityPeriod != nil {
		q.ValidityPeriod = *upd.ValidityPeriod
	}
	if upd.Notes != nil {
		q.Notes = *upd.Notes
	}

	pricing.Apply(q)
	if err := s.db.Omit("AdditionalCosts").Save(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// AddCost appends a line item to a draft quote and recomputes totals.
func (s *QuoteService) AddCost(quoteID, item, description string, cost float64) (*models.Quote, error) {
	q, err := s.Get(quoteID)
	if err != nil {
		return nil, err
	}
	if !q.CanEdit() {
		return nil, ErrInvalidTransition
	}
	v := validation.Violations{}
	validation.Required("item", item, v)
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	position := 0
	if n := len(q.AdditionalCosts); n > 0 {
		position = q.AdditionalCosts[n-1].Position + 1
	}
	c := models.AdditionalCost{
		ID:          uuid.NewString(),
		QuoteID:     q.ID,
		Item:        item,
		Description: description,
		Cost:        cost,
		Position:    position,
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, err
	}
	q.AdditionalCosts = append(q.AdditionalCosts, c)
	pricing.Apply(q)
	if err := s.db.Model(q).Updates(map[string]any{
		"total_price": q.TotalPrice,
		"final_price": q.FinalPrice,
	}).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// RemoveCost deletes a line item from a draft quote and recomputes totals.
// The item has no existence outside its quote, so this is a hard delete.
func (s *QuoteService) RemoveCost(quoteID, costID string) (*models.Quote, error) {
	q, err := s.Get(quoteID)
	if err != nil {
		return nil, err
	}
	if !q.CanEdit() {
		return nil, ErrInvalidTransition
	}

	res := s.db.Where("id = ? AND quote_id = ?", costID, quoteID).Delete(&models.AdditionalCost{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	kept := q.AdditionalCosts[:0]
	for _, c := range q.AdditionalCosts {
		if c.ID != costID {
			kept = append(kept, c)
		}
	}
	q.AdditionalCosts = kept
	pricing.Apply(q)
	if err := s.db.Model(q).Updates(map[string]any{
		"total_price": q.TotalPrice,
		"final_price": q.FinalPrice,
	}).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// ValidateSend is the gate in front of Send. Rules run in a fixed order and
// the first failing rule wins:
//  1. customer name, email and location present
//  2. house type chosen
//  3. base price nonzero
//  4. validity period present
func ValidateSend(q *models.Quote) validation.Violations {
	v := validation.Violations{}
	validation.Required("customer_name", q.CustomerName, v)
	validation.Required("customer_email", q.CustomerEmail, v)
	validation.Required("location", q.Location, v)
	if !v.Empty() {
		return v
	}
	if !models.ValidHouseType(q.HouseType) {
		v["house_type"] = "required"
		return v
	}
	validation.NonZeroFloat("base_price", q.BasePrice, v)
	if !v.Empty() {
		return v
	}
	validation.Required("validity_period", q.ValidityPeriod, v)
	return v
}

// Send transitions a draft to sent after the gate passes. A gate failure
// blocks the whole operation; no field is written.
func (s *QuoteService) Send(id string) (*models.Quote, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if q.Status != models.QuoteStatusDraft {
		return nil, ErrInvalidTransition
	}
	if v := ValidateSend(q); !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	now := time.Now()
	q.Status = models.QuoteStatusSent
	q.SentAt = &now
	if err := s.db.Model(q).Updates(map[string]any{
		"status":  q.Status,
		"sent_at": q.SentAt,
	}).Error; err != nil {
		return nil, err
	}
	_ = s.activity.Record(models.ActivityStatusChange, "Quote sent",
		fmt.Sprintf("Quote %s sent to %s", q.QuoteNumber, q.CustomerEmail))
	return q, nil
}

// MarkViewed records that the customer opened a sent quote. Repeat views
// are no-ops; the first ViewedAt is kept.
func (s *QuoteService) MarkViewed(id string) (*models.Quote, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if q.Status == models.QuoteStatusViewed {
		return q, nil
	}
	if q.Status != models.QuoteStatusSent {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	q.Status = models.QuoteStatusViewed
	q.ViewedAt = &now
	if err := s.db.Model(q).Updates(map[string]any{
		"status":    q.Status,
		"viewed_at": q.ViewedAt,
	}).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// Accept closes a sent or viewed quote as accepted.
func (s *QuoteService) Accept(id string) (*models.Quote, error) {
	return s.close(id, models.QuoteStatusAccepted, "Quote accepted")
}

// Reject closes a sent or viewed quote as rejected.
func (s *QuoteService) Reject(id string) (*models.Quote, error) {
	return s.close(id, models.QuoteStatusRejected, "Quote rejected")
}

// Expire closes a sent or viewed quote as expired.
func (s *QuoteService) Expire(id string) (*models.Quote, error) {
	return s.close(id, models.QuoteStatusExpired, "Quote expired")
}

func (s *QuoteService) close(id string, to models.QuoteStatus, title string) (*models.Quote, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if q.Status != models.QuoteStatusSent && q.Status != models.QuoteStatusViewed {
		return nil, ErrInvalidTransition
	}

	updates := map[string]any{"status": to}
	q.Status = to
	if to == models.QuoteStatusAccepted {
		now := time.Now()
		q.AcceptedAt = &now
		updates["accepted_at"] = q.AcceptedAt
	}
	if err := s.db.Model(q).Updates(updates).Error; err != nil {
		return nil, err
	}
	_ = s.activity.Record(models.ActivityStatusChange, title,
		fmt.Sprintf("Quote %s is now %s", q.QuoteNumber, to))
	return q, nil
}
