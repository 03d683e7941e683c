package handlers

import (
	"net/http"
	"time"

	"github.com/mbaocraft/go-admin/httpx"
	"github.com/mbaocraft/go-admin/internal/export"
	"github.com/mbaocraft/go-admin/internal/filter"
	"github.com/mbaocraft/go-admin/internal/models"
	"github.com/mbaocraft/go-admin/internal/services"
)

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// List returns contacts filtered by q, status and service query params.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.contacts.List()
	if err != nil {
		serviceError(w, err)
		return
	}
	filtered := filter.Contacts(all, filter.ContactFilters{
		Search:      r.URL.Query().Get("q"),
		Status:      r.URL.Query().Get("status"),
		ServiceType: r.URL.Query().Get("service"),
	})
	httpx.JSON(w, http.StatusOK, map[string]any{
		"contacts": filtered,
		"total":    len(filtered),
	})
}

func (h *ContactHandler) View(w http.ResponseWriter, r *http.Request) {
	c, err := h.contacts.Get(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Create records an inquiry from the public contact form.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ContactInput
	if !decode(w, r, &in) {
		return
	}
	c, err := h.contacts.Create(in)
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

type contactUpdateRequest struct {
	Status   *models.ContactStatus `json:"status"`
	Priority *models.Priority      `json:"priority"`
	Notes    *string               `json:"notes"`
}

// Update applies operator changes: status, priority and notes, each only
// when present in the body.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req contactUpdateRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.contacts.Get(id)
	if err != nil {
		serviceError(w, err)
		return
	}
	if req.Status != nil {
		if c, err = h.contacts.UpdateStatus(id, *req.Status); err != nil {
			serviceError(w, err)
			return
		}
	}
	if req.Priority != nil {
		if c, err = h.contacts.UpdatePriority(id, *req.Priority); err != nil {
			serviceError(w, err)
			return
		}
	}
	if req.Notes != nil {
		if c, err = h.contacts.UpdateNotes(id, *req.Notes); err != nil {
			serviceError(w, err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Export streams the current contact list as a CSV download. The same
// filters as List apply.
func (h *ContactHandler) Export(w http.ResponseWriter, r *http.Request) {
	all, err := h.contacts.List()
	if err != nil {
		serviceError(w, err)
		return
	}
	filtered := filter.Contacts(all, filter.ContactFilters{
		Search:      r.URL.Query().Get("q"),
		Status:      r.URL.Query().Get("status"),
		ServiceType: r.URL.Query().Get("service"),
	})
	body, err := export.Contacts(filtered)
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.CSV(w, export.Filename("contacts", time.Now()), body)
}
