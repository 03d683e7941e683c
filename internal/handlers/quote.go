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

type QuoteHandler struct {
	quotes *services.QuoteService
}

func NewQuoteHandler(quotes *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

func (h *QuoteHandler) quoteFilters(r *http.Request) filter.QuoteFilters {
	return filter.QuoteFilters{
		Search: r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.quotes.List()
	if err != nil {
		serviceError(w, err)
		return
	}
	filtered := filter.Quotes(all, h.quoteFilters(r))
	httpx.JSON(w, http.StatusOK, map[string]any{
		"quotes": filtered,
		"total":  len(filtered),
	})
}

// Create opens a new draft. ?contact_id= pre-fills customer fields from an
// inquiry without changing the inquiry itself.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.NewDraft(r.URL.Query().Get("contact_id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, q)
}

func (h *QuoteHandler) View(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.Get(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

type quoteUpdateRequest struct {
	CustomerName     *string           `json:"customer_name"`
	CustomerEmail    *string           `json:"customer_email"`
	CustomerPhone    *string           `json:"customer_phone"`
	HouseType        *models.HouseType `json:"house_type"`
	HouseSize        *string           `json:"house_size"`
	Location         *string           `json:"location"`
	BasePrice        *float64          `json:"base_price"`
	Discount         *float64          `json:"discount"`
	PaymentTerms     *string           `json:"payment_terms"`
	DeliveryTimeline *string           `json:"delivery_timeline"`
	ValidityPeriod   *string           `json:"validity_period"`
	Notes            *string           `json:"notes"`
}

// Update edits a draft. Absent fields are untouched; totals are recomputed
// by the service.
func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req quoteUpdateRequest
	if !decode(w, r, &req) {
		return
	}
	q, err := h.quotes.UpdateDraft(r.PathValue("id"), services.QuoteUpdate{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		HouseType:        req.HouseType,
		HouseSize:        req.HouseSize,
		Location:         req.Location,
		BasePrice:        req.BasePrice,
		Discount:         req.Discount,
		PaymentTerms:     req.PaymentTerms,
		DeliveryTimeline: req.DeliveryTimeline,
		ValidityPeriod:   req.ValidityPeriod,
		Notes:            req.Notes,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

type addCostRequest struct {
	Item        string  `json:"item"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

func (h *QuoteHandler) AddCost(w http.ResponseWriter, r *http.Request) {
	var req addCostRequest
	if !decode(w, r, &req) {
		return
	}
	q, err := h.quotes.AddCost(r.PathValue("id"), req.Item, req.Description, req.Cost)
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) RemoveCost(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.RemoveCost(r.PathValue("id"), r.PathValue("cost_id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

// Send runs the validation gate and transitions draft to sent. A failing
// gate leaves the quote untouched.
func (h *QuoteHandler) Send(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.Send(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.MarkViewed(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.Accept(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) Reject(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.Reject(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) Expire(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.Expire(r.PathValue("id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

func (h *QuoteHandler) Export(w http.ResponseWriter, r *http.Request) {
	all, err := h.quotes.List()
	if err != nil {
		serviceError(w, err)
		return
	}
	filtered := filter.Quotes(all, h.quoteFilters(r))
	body, err := export.Quotes(filtered)
	if err != nil {
		serviceError(w, err)
		return
	}
	httpx.CSV(w, export.Filename("quotes", time.Now()), body)
}
