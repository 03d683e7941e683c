package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbaocraft/go-admin/internal/models"
	"github.com/mbaocraft/go-admin/validation"
	"gorm.io/gorm"
)

// ContactService manages inbound inquiries. Status, priority and notes only
// change through explicit operator actions; creating a quote from a contact
// never touches it.
type ContactService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewContactService(db *gorm.DB, activity *ActivityService) *ContactService {
	return &ContactService{db: db, activity: activity}
}

// ContactInput is the shape the public contact form submits.
type ContactInput struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	ServiceType models.ServiceType `json:"service_type"`
	Location    string             `json:"location"`
	Budget      models.Budget      `json:"budget"`
	Timeline    models.Timeline    `json:"timeline"`
	Message     string             `json:"message"`
}

// Create records a new inquiry in status "new".
func (s *ContactService) Create(in ContactInput) (*models.Contact, error) {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Email("email", in.Email, v)
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	c := models.Contact{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ServiceType: in.ServiceType,
		Location:    in.Location,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		Message:     in.Message,
		Status:      models.ContactStatusNew,
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, err
	}
	_ = s.activity.Record(models.ActivityContact, "New inquiry",
		fmt.Sprintf("%s asked about %s", c.Name, models.ServiceTypeLabels[c.ServiceType]))
	return &c, nil
}

// Get loads one contact.
func (s *ContactService) Get(id string) (*models.Contact, error) {
	var c models.Contact
	err := s.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all contacts, newest first.
func (s *ContactService) List() ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// UpdateStatus moves a contact to a new status. The first move to
// "contacted" stamps ContactedAt; later status changes leave it alone.
func (s *ContactService) UpdateStatus(id string, status models.ContactStatus) (*models.Contact, error) {
	if !models.ValidContactStatus(status) {
		return nil, &ValidationError{Violations: validation.Violations{"status": "unknown"}}
	}
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	from := c.Status
	c.Status = status
	updates := map[string]any{"status": status}
	if status == models.ContactStatusContacted && c.ContactedAt == nil {
		now := time.Now()
		c.ContactedAt = &now
		updates["contacted_at"] = c.ContactedAt
	}
	if err := s.db.Model(c).Updates(updates).Error; err != nil {
		return nil, err
	}
	_ = s.activity.Record(models.ActivityStatusChange, "Contact status changed",
		fmt.Sprintf("%s moved from %s to %s", c.Name, from, status))
	return c, nil
}

// UpdateNotes replaces the internal notes on a contact.
func (s *ContactService) UpdateNotes(id, notes string) (*models.Contact, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	c.Notes = notes
	if err := s.db.Model(c).Update("notes", notes).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// UpdatePriority sets the operator-assigned priority.
func (s *ContactService) UpdatePriority(id string, p models.Priority) (*models.Contact, error) {
	if !models.ValidPriority(p) {
		return nil, &ValidationError{Violations: validation.Violations{"priority": "unknown"}}
	}
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	c.Priority = p
	if err := s.db.Model(c).Update("priority", p).Error; err != nil {
		return nil, err
	}
	return c, nil
}
