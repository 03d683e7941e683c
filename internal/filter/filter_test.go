package filter

import (
	"testing"

	"github.com/mbaocraft/go-admin/internal/models"
)

var contacts = []models.Contact{
	{ID: "1", Name: "Jane Wanjiku", Email: "jane@example.com", Phone: "0712", Status: models.ContactStatusNew, ServiceType: models.ServiceWoodenHouse},
	{ID: "2", Name: "Jim Otieno", Email: "jim@example.com", Phone: "0722", Status: models.ContactStatusClosed, ServiceType: models.ServiceCarpentry},
	{ID: "3", Name: "Peter Mwangi", Email: "peter@example.com", Phone: "0733", Status: models.ContactStatusNew, ServiceType: models.ServiceCarpentry},
}

func contactIDs(list []models.Contact) []string {
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.ID
	}
	return ids
}

func TestContactsQuery(t *testing.T) {
	// Substring match is case-insensitive and hits name, email or phone.
	got := Contacts(contacts, ContactFilters{Search: "ja", Status: "all", ServiceType: "all"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("query ja: got %v", contactIDs(got))
	}

	got = Contacts(contacts, ContactFilters{Search: "EXAMPLE.COM"})
	if len(got) != 3 {
		t.Errorf("query by email domain: got %v", contactIDs(got))
	}

	got = Contacts(contacts, ContactFilters{Search: "0722"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("query by phone: got %v", contactIDs(got))
	}
}

func TestContactsCategorical(t *testing.T) {
	got := Contacts(contacts, ContactFilters{Status: "new"})
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("status new: got %v, want [1 3] in order", contactIDs(got))
	}

	got = Contacts(contacts, ContactFilters{Status: "new", ServiceType: "carpentry"})
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("combined: got %v", contactIDs(got))
	}

	// "all" disables the predicate: equivalent to filtering by query alone.
	all := Contacts(contacts, ContactFilters{Search: "e", Status: All, ServiceType: All})
	queryOnly := Contacts(contacts, ContactFilters{Search: "e"})
	if len(all) != len(queryOnly) {
		t.Errorf("all-sentinel differs from query-only: %v vs %v", contactIDs(all), contactIDs(queryOnly))
	}
}

func TestContactsIsSubsetInOrder(t *testing.T) {
	got := Contacts(contacts, ContactFilters{Search: "example"})
	seen := -1
	for _, c := range got {
		idx := -1
		for i, orig := range contacts {
			if orig.ID == c.ID {
				idx = i
			}
		}
		if idx <= seen {
			t.Fatalf("order not preserved: %v", contactIDs(got))
		}
		seen = idx
	}
}

func TestSubscribers(t *testing.T) {
	subs := []models.NewsletterSubscriber{
		{ID: "1", Email: "jane@example.com", Name: "Jane", Status: models.SubscriberActive, Source: models.SourceWebsite},
		{ID: "2", Email: "jim@example.com", Status: models.SubscriberUnsubscribed, Source: models.SourceManual},
	}

	got := Subscribers(subs, SubscriberFilters{Status: "active"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("active: got %d", len(got))
	}

	got = Subscribers(subs, SubscriberFilters{Search: "jim", Status: All, Source: All})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("query jim: got %d", len(got))
	}

	got = Subscribers(subs, SubscriberFilters{Source: "manual"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("source manual: got %d", len(got))
	}
}

func TestQuotes(t *testing.T) {
	quotes := []models.Quote{
		{ID: "1", QuoteNumber: "QT-2026-0001", CustomerName: "Jane Wanjiku", CustomerEmail: "jane@example.com", Status: models.QuoteStatusDraft},
		{ID: "2", QuoteNumber: "QT-2026-0002", CustomerName: "Jim Otieno", CustomerEmail: "jim@example.com", Status: models.QuoteStatusSent},
	}

	got := Quotes(quotes, QuoteFilters{Search: "0002"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("query by number: got %d", len(got))
	}

	got = Quotes(quotes, QuoteFilters{Status: "draft"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("status draft: got %d", len(got))
	}

	got = Quotes(quotes, QuoteFilters{Search: "wanjiku", Status: "sent"})
	if len(got) != 0 {
		t.Errorf("conflicting predicates: got %d", len(got))
	}

	if got := Quotes(nil, QuoteFilters{}); len(got) != 0 {
		t.Errorf("nil input: got %d", len(got))
	}
}
