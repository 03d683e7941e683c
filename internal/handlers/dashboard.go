package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mbaocraft/go-admin/httpx"
	"github.com/mbaocraft/go-admin/internal/models"
	"github.com/mbaocraft/go-admin/internal/services"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db       *gorm.DB
	activity *services.ActivityService
}

func NewDashboardHandler(db *gorm.DB, activity *services.ActivityService) *DashboardHandler {
	return &DashboardHandler{db: db, activity: activity}
}

// DashboardStats is the landing-page summary block.
type DashboardStats struct {
	TotalContacts     int64   `json:"total_contacts"`
	PendingContacts   int64   `json:"pending_contacts"`
	ActiveSubscribers int64   `json:"active_subscribers"`
	TotalQuotes       int64   `json:"total_quotes"`
	ContactsThisMonth int64   `json:"contacts_this_month"`
	QuotesThisMonth   int64   `json:"quotes_this_month"`
	ConversionRate    float64 `json:"conversion_rate"`
}

// Stats aggregates counters across all three entities. Conversion rate is
// converted contacts over all contacts, as a percentage rounded by the
// consumer.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var stats DashboardStats

	monthStart := time.Now()
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, monthStart.Location())

	h.db.Model(&models.Contact{}).Count(&stats.TotalContacts)
	h.db.Model(&models.Contact{}).Where("status = ?", models.ContactStatusNew).Count(&stats.PendingContacts)
	h.db.Model(&models.NewsletterSubscriber{}).Where("status = ?", models.SubscriberActive).Count(&stats.ActiveSubscribers)
	h.db.Model(&models.Quote{}).Count(&stats.TotalQuotes)
	h.db.Model(&models.Contact{}).Where("created_at >= ?", monthStart).Count(&stats.ContactsThisMonth)
	h.db.Model(&models.Quote{}).Where("created_at >= ?", monthStart).Count(&stats.QuotesThisMonth)

	var converted int64
	h.db.Model(&models.Contact{}).Where("status = ?", models.ContactStatusConverted).Count(&converted)
	if stats.TotalContacts > 0 {
		stats.ConversionRate = float64(converted) / float64(stats.TotalContacts) * 100
	}

	httpx.JSON(w, http.StatusOK, stats)
}

// Activity returns the recent audit feed, newest first. ?limit= caps the
// page; the service clamps out-of-range values.
func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.activity.Recent(limit)
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"activity": items})
}
