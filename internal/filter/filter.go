// Package filter computes the visible subset of an entity list from a
// free-text query and categorical filters. Filters are pure and recomputed
// in full on every call; at tens to low hundreds of records that is cheaper
// than maintaining any incremental state.
package filter

import (
	"strings"

	"github.com/mbaocraft/go-admin/internal/models"
)

// All is the sentinel that disables a categorical filter.
const All = "all"

func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesCategory(filter, value string) bool {
	return filter == "" || filter == All || filter == value
}

// ContactFilters selects contacts by substring and category.
type ContactFilters struct {
	Search      string
	Status      string
	ServiceType string
}

// Contacts returns the matching subset in input order. The query matches
// name, email and phone.
func Contacts(list []models.Contact, f ContactFilters) []models.Contact {
	out := make([]models.Contact, 0, len(list))
	for _, c := range list {
		if !matchesQuery(f.Search, c.Name, c.Email, c.Phone) {
			continue
		}
		if !matchesCategory(f.Status, string(c.Status)) {
			continue
		}
		if !matchesCategory(f.ServiceType, string(c.ServiceType)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SubscriberFilters selects newsletter subscribers.
type SubscriberFilters struct {
	Search string
	Status string
	Source string
}

// Subscribers returns the matching subset in input order. The query matches
// email and name.
func Subscribers(list []models.NewsletterSubscriber, f SubscriberFilters) []models.NewsletterSubscriber {
	out := make([]models.NewsletterSubscriber, 0, len(list))
	for _, s := range list {
		if !matchesQuery(f.Search, s.Email, s.Name) {
			continue
		}
		if !matchesCategory(f.Status, string(s.Status)) {
			continue
		}
		if !matchesCategory(f.Source, string(s.Source)) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// QuoteFilters selects quotes.
type QuoteFilters struct {
	Search string
	Status string
}

// Quotes returns the matching subset in input order. The query matches
// quote number, customer name and customer email.
func Quotes(list []models.Quote, f QuoteFilters) []models.Quote {
	out := make([]models.Quote, 0, len(list))
	for _, q := range list {
		if !matchesQuery(f.Search, q.QuoteNumber, q.CustomerName, q.CustomerEmail) {
			continue
		}
		if !matchesCategory(f.Status, string(q.Status)) {
			continue
		}
		out = append(out, q)
	}
	return out
}
