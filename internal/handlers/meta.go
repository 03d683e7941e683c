package handlers

import (
	"net/http"

	"github.com/mbaocraft/go-admin/httpx"
	"github.com/mbaocraft/go-admin/internal/badge"
	"github.com/mbaocraft/go-admin/internal/models"
)

// MetaHandler serves the static lookup tables the admin frontend renders
// from: display labels, suggested prices and status badges.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type houseTypeMeta struct {
	Value          models.HouseType `json:"value"`
	Label          string           `json:"label"`
	SuggestedPrice float64          `json:"suggested_price"`
}

func (h *MetaHandler) Lookups(w http.ResponseWriter, r *http.Request) {
	houseTypes := make([]houseTypeMeta, 0, len(models.HouseTypeLabels))
	for _, t := range []models.HouseType{
		models.HouseTypeTwoBedroom,
		models.HouseTypeThreeBedroom,
		models.HouseTypeCabin,
		models.HouseTypeCustom,
	} {
		houseTypes = append(houseTypes, houseTypeMeta{
			Value:          t,
			Label:          models.HouseTypeLabels[t],
			SuggestedPrice: models.HouseTypePrices[t],
		})
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"house_types":      houseTypes,
		"service_types":    models.ServiceTypeLabels,
		"budgets":          models.BudgetLabels,
		"timelines":        models.TimelineLabels,
		"contact_statuses": models.ContactStatusLabels,
		"priorities":       models.PriorityLabels,
	})
}

var badgeKinds = map[string]badge.Kind{
	"contact":    badge.KindContact,
	"quote":      badge.KindQuote,
	"priority":   badge.KindPriority,
	"newsletter": badge.KindNewsletter,
}

// Badge resolves one status badge. An unknown kind is a 404; an unknown
// status within a known kind resolves to the neutral fallback.
func (h *MetaHandler) Badge(w http.ResponseWriter, r *http.Request) {
	kind, ok := badgeKinds[r.PathValue("kind")]
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, badge.Resolve(kind, r.PathValue("status")))
}
