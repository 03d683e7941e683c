package badge

import "testing"

func TestResolveKnown(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		status    string
		wantLabel string
		wantColor string
	}{
		{"contact new", KindContact, "new", "New", "#3B82F6"},
		{"contact converted", KindContact, "converted", "Converted", "#10B981"},
		{"quote draft", KindQuote, "draft", "Draft", "#6B7280"},
		{"quote accepted", KindQuote, "accepted", "Accepted", "#10B981"},
		{"quote rejected", KindQuote, "rejected", "Rejected", "#EF4444"},
		{"priority urgent", KindPriority, "urgent", "Urgent", "#EF4444"},
		{"newsletter active", KindNewsletter, "active", "Active", "#10B981"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Resolve(tt.kind, tt.status)
			if b.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", b.Label, tt.wantLabel)
			}
			if b.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", b.Color, tt.wantColor)
			}
		})
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	b := Resolve(KindContact, "pending-review")
	if b.Label != "pending-review" {
		t.Errorf("Label = %q, want raw status", b.Label)
	}
	if b.Color != "#6B7280" || b.BgClass != "bg-gray-100" {
		t.Errorf("fallback styling not neutral gray: %+v", b)
	}
}

func TestNoFallthroughBetweenTables(t *testing.T) {
	// "sent" is a quote status; the contact table must not resolve it.
	b := Resolve(KindContact, "sent")
	if b.Label != "sent" {
		t.Errorf("contact table resolved a quote status: %+v", b)
	}
	// "urgent" exists in the priority table but is unknown to quotes.
	b = Resolve(KindQuote, "urgent")
	if b.Label != "urgent" || b.Color != "#6B7280" {
		t.Errorf("quote table resolved a priority status: %+v", b)
	}
}
