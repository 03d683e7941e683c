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

type NewsletterHandler struct {
	newsletter *services.NewsletterService
}

func NewNewsletterHandler(newsletter *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

func (h *NewsletterHandler) subscriberFilters(r *http.Request) filter.SubscriberFilters {
	return filter.SubscriberFilters{
		Search: r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
		Source: r.URL.Query().Get("source"),
	}
}

func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.newsletter.List()
	if err != nil {
		serviceError(w, err)
		return
	}
	filtered := filter.Subscribers(all, h.subscriberFilters(r))
	httpx.JSON(w, http.StatusOK, map[string]any{
		"subscribers": filtered,
		"total":       len(filtered),
	})
}

type subscribeRequest struct {
	Email  string                  `json:"email"`
	Name   string                  `json:"name"`
	Source models.SubscriberSource `json:"source"`
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Source == "" {
		req.Source = models.SourceWebsite
	}
	sub, err := h.newsletter.Subscribe(req.Email, req.Name, req.Source)
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sub)
}

func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	sub, err := h.newsletter.Unsubscribe(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sub)
}

func (h *NewsletterHandler) Resubscribe(w http.ResponseWriter, r *http.Request) {
	sub, err := h.newsletter.Resubscribe(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sub)
}

func (h *NewsletterHandler) Export(w http.ResponseWriter, r *http.Request) {
	all, err := h.newsletter.List()
	if err != nil {
		serviceError(w, err)
		return
	}
	filtered := filter.Subscribers(all, h.subscriberFilters(r))
	body, err := export.Subscribers(filtered)
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.CSV(w, export.Filename("subscribers", time.Now()), body)
}
