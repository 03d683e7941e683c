package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/mbaocraft/go-admin/internal/models"
)

func TestActivityRecordAndRecent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActivityService(db)

	for i := 0; i < 5; i++ {
		if err := svc.Record(models.ActivityContact, fmt.Sprintf("event %d", i), "detail"); err != nil {
			t.Fatalf("Record: %v", err)
		}
		time.Sleep(2 * time.Millisecond) // distinct timestamps for ordering
	}

	items, err := svc.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].Title != "event 4" {
		t.Errorf("newest first: got %q", items[0].Title)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Timestamp.After(items[i-1].Timestamp) {
			t.Error("items not in descending time order")
		}
	}
}

func TestActivityRecentDefaultLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActivityService(db)
	if _, err := svc.Recent(0); err != nil {
		t.Fatalf("Recent(0): %v", err)
	}
	if _, err := svc.Recent(500); err != nil {
		t.Fatalf("Recent(500): %v", err)
	}
}
