// Package export renders entity lists as CSV downloads. Column sets are
// fixed per entity; quoting and escaping are delegated to encoding/csv.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/mbaocraft/go-admin/internal/models"
)

const timestampLayout = "2006-01-02 15:04"

// Filename builds the download name for an entity export,
// e.g. "quotes-2026-09-01.csv".
func Filename(entity string, now time.Time) string {
	return entity + "-" + now.Format("2006-01-02") + ".csv"
}

func formatTime(t time.Time) string {
	return t.Format(timestampLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeAll(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Contacts renders one row per contact.
func Contacts(contacts []models.Contact) ([]byte, error) {
	records := [][]string{{
		"Name", "Email", "Phone", "Service Type", "Location", "Budget",
		"Timeline", "Status", "Priority", "Message", "Notes",
		"Created At", "Contacted At",
	}}
	for _, c := range contacts {
		priority := string(c.Priority)
		if priority == "" {
			priority = string(models.PriorityNormal)
		}
		records = append(records, []string{
			c.Name, c.Email, c.Phone, string(c.ServiceType), c.Location,
			string(c.Budget), string(c.Timeline), string(c.Status), priority,
			c.Message, c.Notes,
			formatTime(c.CreatedAt), formatTimePtr(c.ContactedAt),
		})
	}
	return writeAll(records)
}

// Subscribers renders one row per newsletter subscriber.
func Subscribers(subs []models.NewsletterSubscriber) ([]byte, error) {
	records := [][]string{{
		"Email", "Name", "Status", "Source", "Subscribed At", "Unsubscribed At",
	}}
	for _, s := range subs {
		records = append(records, []string{
			s.Email, s.Name, string(s.Status), string(s.Source),
			formatTime(s.SubscribedAt), formatTimePtr(s.UnsubscribedAt),
		})
	}
	return writeAll(records)
}

// Quotes renders one row per quote. Amounts are raw numbers; display
// formatting is a consumer concern.
func Quotes(quotes []models.Quote) ([]byte, error) {
	records := [][]string{{
		"Quote Number", "Customer Name", "Customer Email", "Customer Phone",
		"House Type", "Location", "Base Price", "Total Price", "Discount",
		"Final Price", "Status", "Payment Terms", "Delivery Timeline",
		"Validity Period", "Created At", "Sent At",
	}}
	for _, q := range quotes {
		records = append(records, []string{
			q.QuoteNumber, q.CustomerName, q.CustomerEmail, q.CustomerPhone,
			string(q.HouseType), q.Location,
			formatAmount(q.BasePrice), formatAmount(q.TotalPrice),
			formatAmount(q.Discount), formatAmount(q.FinalPrice),
			string(q.Status), q.PaymentTerms, q.DeliveryTimeline,
			q.ValidityPeriod,
			formatTime(q.CreatedAt), formatTimePtr(q.SentAt),
		})
	}
	return writeAll(records)
}
