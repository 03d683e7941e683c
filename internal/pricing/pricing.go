// Package pricing derives monetary totals for a quote. Totals are always
// recomputed in full from their inputs; nothing here caches or mutates state.
package pricing

import "github.com/mbaocraft/go-admin/internal/models"

// Totals is the derived price breakdown of a quote.
type Totals struct {
	AdditionalTotal float64 `json:"additional_total"`
	Subtotal        float64 `json:"subtotal"`
	FinalPrice      float64 `json:"final_price"`
}

// Compute derives the totals from a base price, a list of additional costs
// and a discount. The discount is subtracted as-is: a discount larger than
// the subtotal yields a negative final price. Non-negativity of the inputs
// is a caller concern.
func Compute(basePrice float64, costs []models.AdditionalCost, discount float64) Totals {
	var additional float64
	for _, c := range costs {
		additional += c.Cost
	}
	subtotal := basePrice + additional
	return Totals{
		AdditionalTotal: additional,
		Subtotal:        subtotal,
		FinalPrice:      subtotal - discount,
	}
}

// Apply recomputes a quote's stored derived fields from its current pricing
// inputs. Callers invoke it after any mutation of BasePrice,
// AdditionalCosts or Discount; the derived fields are never set directly.
func Apply(q *models.Quote) {
	t := Compute(q.BasePrice, q.AdditionalCosts, q.Discount)
	q.TotalPrice = t.Subtotal
	q.FinalPrice = t.FinalPrice
}
