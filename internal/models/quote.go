package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// QuoteStatus represents the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// HouseType is the kind of build a quote covers.
type HouseType string

const (
	HouseTypeTwoBedroom   HouseType = "2-bedroom"
	HouseTypeThreeBedroom HouseType = "3-bedroom"
	HouseTypeCabin        HouseType = "cabin"
	HouseTypeCustom       HouseType = "custom"
)

// HouseTypeLabels maps house types to their display names.
var HouseTypeLabels = map[HouseType]string{
	HouseTypeTwoBedroom:   "2-Bedroom Bungalow",
	HouseTypeThreeBedroom: "3-Bedroom House",
	HouseTypeCabin:        "Small Cabin",
	HouseTypeCustom:       "Custom Design",
}

// HouseTypePrices holds the suggested base price per house type. A draft
// quote picks this up when a house type is chosen while the base price is
// still zero; a price the operator already entered is never overwritten.
var HouseTypePrices = map[HouseType]float64{
	HouseTypeCabin:        200000,
	HouseTypeTwoBedroom:   500000,
	HouseTypeThreeBedroom: 800000,
	HouseTypeCustom:       0,
}

// ValidHouseType reports whether t is one of the known house types.
func ValidHouseType(t HouseType) bool {
	_, ok := HouseTypeLabels[t]
	return ok
}

// Quote is a priced proposal for a construction project.
// TotalPrice and FinalPrice are derived values: they are recomputed from
// BasePrice, AdditionalCosts and Discount on every mutation and never set
// independently.
type Quote struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	QuoteNumber string `gorm:"size:50;uniqueIndex" json:"quote_number"`

	// ContactID is a non-owning back-reference to the inquiry this quote
	// was pre-filled from, if any.
	ContactID *string `gorm:"size:36;index" json:"contact_id,omitempty"`

	CustomerName  string `gorm:"size:255" json:"customer_name"`
	CustomerEmail string `gorm:"size:255" json:"customer_email"`
	CustomerPhone string `gorm:"size:50" json:"customer_phone,omitempty"`

	HouseType HouseType `gorm:"size:20" json:"house_type"`
	HouseSize string    `gorm:"size:100" json:"house_size,omitempty"`
	Location  string    `gorm:"size:255" json:"location"`

	BasePrice       float64          `json:"base_price"`
	AdditionalCosts []AdditionalCost `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"additional_costs"`
	Discount        float64          `json:"discount"`
	TotalPrice      float64          `json:"total_price"`
	FinalPrice      float64          `json:"final_price"`

	PaymentTerms     string `gorm:"size:500" json:"payment_terms,omitempty"`
	DeliveryTimeline string `gorm:"size:255" json:"delivery_timeline,omitempty"`
	ValidityPeriod   string `gorm:"size:100" json:"validity_period"`

	Status QuoteStatus `gorm:"size:20;default:'draft'" json:"status"`
	Notes  string      `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	ViewedAt   *time.Time `json:"viewed_at,omitempty"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

// IsDraft returns true if the quote has not been sent yet.
func (q *Quote) IsDraft() bool {
	return q.Status == QuoteStatusDraft
}

// CanEdit returns true if the quote's fields can still be changed.
func (q *Quote) CanEdit() bool {
	return q.Status == QuoteStatusDraft
}

// IsTerminal returns true once the quote has reached a final state.
func (q *Quote) IsTerminal() bool {
	switch q.Status {
	case QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// AdditionalTotal sums the cost of all additional line items.
func (q *Quote) AdditionalTotal() float64 {
	var total float64
	for _, c := range q.AdditionalCosts {
		total += c.Cost
	}
	return total
}

// AdditionalCost is a named line item attached to a quote beyond its base
// price. It has no existence outside its owning quote.
type AdditionalCost struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	QuoteID     string  `gorm:"size:36;index;not null" json:"-"`
	Item        string  `gorm:"size:255;not null" json:"item"`
	Description string  `gorm:"size:500" json:"description,omitempty"`
	Cost        float64 `gorm:"not null" json:"cost"`

	// Position preserves insertion order within the owning quote.
	Position int `gorm:"default:0" json:"position"`
}

// GenerateQuoteNumber generates the next quote number for a year.
// Format: QT-YYYY-NNNN (e.g. QT-2026-0001). Sequential per year, derived
// from a row count so numbers stay stable across restarts.
func GenerateQuoteNumber(db *gorm.DB, year int) (string, error) {
	var count int64
	prefix := fmt.Sprintf("QT-%d-", year)
	err := db.Model(&Quote{}).
		Where("quote_number LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("QT-%d-%04d", year, count+1), nil
}
