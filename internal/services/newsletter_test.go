package services

import (
	"errors"
	"testing"

	"github.com/mbaocraft/go-admin/internal/models"
)

func newNewsletterService(t *testing.T) *NewsletterService {
	t.Helper()
	db := setupTestDB(t)
	return NewNewsletterService(db, NewActivityService(db))
}

func TestSubscribe(t *testing.T) {
	svc := newNewsletterService(t)

	sub, err := svc.Subscribe("Jane@Example.com", "Jane", models.SourceWebsite)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if sub.Email != "jane@example.com" {
		t.Errorf("email not normalized: %q", sub.Email)
	}
	if !sub.IsActive() || sub.SubscribedAt.IsZero() {
		t.Errorf("bad subscriber state: %+v", sub)
	}

	// The email is the unique key.
	if _, err := svc.Subscribe("jane@example.com", "", models.SourceManual); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("duplicate: err = %v, want ErrDuplicateEmail", err)
	}
}

func TestSubscribeValidation(t *testing.T) {
	svc := newNewsletterService(t)

	var verr *ValidationError
	if _, err := svc.Subscribe("nonsense", "", models.SourceWebsite); !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, err := svc.Subscribe("ok@example.com", "", "carrier-pigeon"); !errors.As(err, &verr) {
		t.Fatalf("bad source: err = %v, want ValidationError", err)
	}
}

func TestUnsubscribeAndResubscribe(t *testing.T) {
	svc := newNewsletterService(t)
	sub, _ := svc.Subscribe("jane@example.com", "Jane", models.SourceContactForm)

	sub, err := svc.Unsubscribe(sub.ID)
	if err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	if sub.IsActive() || sub.UnsubscribedAt == nil {
		t.Errorf("bad state after unsubscribe: %+v", sub)
	}

	// Unsubscribing twice is a no-op.
	again, err := svc.Unsubscribe(sub.ID)
	if err != nil {
		t.Fatalf("repeat Unsubscribe: %v", err)
	}
	if !again.UnsubscribedAt.Equal(*sub.UnsubscribedAt) {
		t.Error("repeat unsubscribe moved the timestamp")
	}

	sub, err = svc.Resubscribe(sub.ID)
	if err != nil {
		t.Fatalf("Resubscribe: %v", err)
	}
	if !sub.IsActive() || sub.UnsubscribedAt != nil {
		t.Errorf("bad state after resubscribe: %+v", sub)
	}
}

func TestSubscribeRevivesUnsubscribed(t *testing.T) {
	svc := newNewsletterService(t)
	sub, _ := svc.Subscribe("jane@example.com", "Jane", models.SourceWebsite)
	if _, err := svc.Unsubscribe(sub.ID); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	// Re-subscribing the same address flips the existing row back rather
	// than creating a duplicate.
	revived, err := svc.Subscribe("jane@example.com", "Jane W.", models.SourceManual)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if revived.ID != sub.ID {
		t.Errorf("new row created: %s vs %s", revived.ID, sub.ID)
	}
	if !revived.IsActive() || revived.UnsubscribedAt != nil {
		t.Errorf("bad revived state: %+v", revived)
	}
	if revived.Name != "Jane W." {
		t.Errorf("name not refreshed: %q", revived.Name)
	}

	subs, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("subscriber rows = %d, want 1", len(subs))
	}
}

func TestNewsletterNotFound(t *testing.T) {
	svc := newNewsletterService(t)
	if _, err := svc.Unsubscribe("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
