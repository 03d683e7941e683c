package models

import "time"

// ContactStatus tracks how far an inquiry has progressed.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusQuoted    ContactStatus = "quoted"
	ContactStatusConverted ContactStatus = "converted"
	ContactStatusClosed    ContactStatus = "closed"
)

// ContactStatusLabels maps contact statuses to display names.
var ContactStatusLabels = map[ContactStatus]string{
	ContactStatusNew:       "New",
	ContactStatusContacted: "Contacted",
	ContactStatusQuoted:    "Quoted",
	ContactStatusConverted: "Converted",
	ContactStatusClosed:    "Closed",
}

// ValidContactStatus reports whether s is a known contact status.
func ValidContactStatus(s ContactStatus) bool {
	_, ok := ContactStatusLabels[s]
	return ok
}

// ServiceType is the kind of work an inquiry asks about.
type ServiceType string

const (
	ServiceWoodenHouse  ServiceType = "wooden-house"
	ServiceCarpentry    ServiceType = "carpentry"
	ServiceConsultation ServiceType = "consultation"
	ServiceOther        ServiceType = "other"
)

var ServiceTypeLabels = map[ServiceType]string{
	ServiceWoodenHouse:  "Wooden House Construction",
	ServiceCarpentry:    "General Carpentry",
	ServiceConsultation: "Design Consultation",
	ServiceOther:        "Other Services",
}

// Budget is the bucket a prospect placed their spend in.
type Budget string

const (
	BudgetUnder500K Budget = "under-500k"
	Budget500KTo1M  Budget = "500k-1m"
	Budget1MTo2M    Budget = "1m-2m"
	Budget2MTo5M    Budget = "2m-5m"
	BudgetOver5M    Budget = "over-5m"
	BudgetFlexible  Budget = "flexible"
)

var BudgetLabels = map[Budget]string{
	BudgetUnder500K: "Under 500K",
	Budget500KTo1M:  "500K - 1M",
	Budget1MTo2M:    "1M - 2M",
	Budget2MTo5M:    "2M - 5M",
	BudgetOver5M:    "Over 5M",
	BudgetFlexible:  "Flexible",
}

// Timeline is the bucket a prospect placed their start date in.
type Timeline string

const (
	TimelineUrgent      Timeline = "urgent"
	TimelineOneToThree  Timeline = "1-3months"
	TimelineThreeToSix  Timeline = "3-6months"
	TimelineSixToTwelve Timeline = "6-12months"
	TimelinePlanning    Timeline = "planning"
)

var TimelineLabels = map[Timeline]string{
	TimelineUrgent:      "Urgent (Within 1 month)",
	TimelineOneToThree:  "1-3 months",
	TimelineThreeToSix:  "3-6 months",
	TimelineSixToTwelve: "6-12 months",
	TimelinePlanning:    "Just planning",
}

// Priority is an operator-assigned follow-up priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var PriorityLabels = map[Priority]string{
	PriorityLow:    "Low",
	PriorityNormal: "Normal",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p Priority) bool {
	_, ok := PriorityLabels[p]
	return ok
}

// Contact is an inbound customer inquiry. It is created by the public
// contact form; status, priority and notes are mutated manually by an
// operator. Creating a quote from a contact does not change its status.
type Contact struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Email       string        `gorm:"size:255;not null;index" json:"email"`
	Phone       string        `gorm:"size:50" json:"phone"`
	ServiceType ServiceType   `gorm:"size:30" json:"service_type"`
	Location    string        `gorm:"size:255" json:"location"`
	Budget      Budget        `gorm:"size:20" json:"budget"`
	Timeline    Timeline      `gorm:"size:20" json:"timeline"`
	Message     string        `gorm:"type:text" json:"message"`
	Status      ContactStatus `gorm:"size:20;default:'new';index" json:"status"`
	Priority    Priority      `gorm:"size:20" json:"priority,omitempty"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
}
