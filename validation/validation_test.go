package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "Jane", v)
	Required("location", "  ", v)
	if v.Empty() {
		t.Fatal("expected violations")
	}
	if _, ok := v["name"]; ok {
		t.Error("name should pass")
	}
	if v["location"] != "required" {
		t.Errorf("location = %q, want required", v["location"])
	}
}

func TestNonZeroFloat(t *testing.T) {
	v := Violations{}
	NonZeroFloat("base_price", 0, v)
	if v["base_price"] != "required" {
		t.Errorf("base_price = %q, want required", v["base_price"])
	}
	v = Violations{}
	NonZeroFloat("base_price", 200000, v)
	if !v.Empty() {
		t.Errorf("unexpected violations: %v", v)
	}
}

func TestNonNegativeFloat(t *testing.T) {
	v := Violations{}
	NonNegativeFloat("discount", -1, v)
	if v["discount"] != "must_not_be_negative" {
		t.Errorf("discount = %q", v["discount"])
	}
	v = Violations{}
	NonNegativeFloat("discount", 0, v)
	if !v.Empty() {
		t.Errorf("zero discount should pass: %v", v)
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"jane@example.com", true},
		{"j@x.co", true},
		{"", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"jane@", false},
		{"jane@nodot", false},
	}
	for _, tt := range tests {
		v := Violations{}
		Email("email", tt.value, v)
		if got := v.Empty(); got != tt.ok {
			t.Errorf("Email(%q): valid = %v, want %v (violations %v)", tt.value, got, tt.ok, v)
		}
	}
}

func TestFirst(t *testing.T) {
	v := Violations{"base_price": "required", "location": "required"}
	if got := v.First("location", "base_price"); got != "location: required" {
		t.Errorf("First = %q, want location first", got)
	}
	if got := (Violations{}).First("x"); got != "" {
		t.Errorf("First on empty = %q, want empty", got)
	}
}
