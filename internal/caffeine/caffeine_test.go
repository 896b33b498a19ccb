package caffeine

import (
	"math"
	"testing"
)

func TestCaffeineMg(t *testing.T) {
	tests := []struct {
		per100ml float64
		sizeMl   int
		want     int
	}{
		{50, 250, 125},
		{32, 100, 32},
		{0, 500, 0},
		{33, 10, 3},
		{32, 250, 80},
		{30, 355, 106},
	}
	for _, tt := range tests {
		got := CaffeineMg(tt.per100ml, tt.sizeMl)
		if got != tt.want {
			t.Errorf("CaffeineMg(%v, %d) = %d, want %d", tt.per100ml, tt.sizeMl, got, tt.want)
		}
	}
}

func TestServingInRange(t *testing.T) {
	tests := []struct {
		per100ml float64
		sizeMl   int
		want     bool
	}{
		{32, 250, true},
		{0, 500, true},
		{-1, 500, false},
		{1e20, 500, false},
		{float64(MaxServingMg), 100, true},
		{float64(MaxServingMg), 200, false},
	}
	for _, tt := range tests {
		if got := ServingInRange(tt.per100ml, tt.sizeMl); got != tt.want {
			t.Errorf("ServingInRange(%v, %d) = %v, want %v", tt.per100ml, tt.sizeMl, got, tt.want)
		}
	}
}

func TestPer100mlRoundTrip(t *testing.T) {
	mg := CaffeineMg(32, 250)
	if mg != 80 {
		t.Fatalf("caffeine_mg = %d, want 80", mg)
	}
	got := Per100ml(mg, 250)
	if math.Abs(got-32) > 0.5 {
		t.Errorf("Per100ml(80, 250) = %v, want ~32", got)
	}
}

func TestPer100mlZeroSize(t *testing.T) {
	if got := Per100ml(80, 0); got != 0 {
		t.Errorf("Per100ml(80, 0) = %v, want 0", got)
	}
}

func TestDisplayName(t *testing.T) {
	got := DisplayName("Red Bull", "Sugarfree", 250)
	if got != "Red Bull Sugarfree 250ml" {
		t.Errorf("DisplayName = %q, want %q", got, "Red Bull Sugarfree 250ml")
	}
}

func TestBrandColorKnown(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Red Bull", "#00008B"},
		{"RED BULL", "#00008B"},
		{"purdeys", "green"},
		{"Celsius", "#EFEFEF"},
		{"", "#CCCCCC"},
	}
	for _, tt := range tests {
		if got := BrandColor(tt.name); got != tt.want {
			t.Errorf("BrandColor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBrandColorHashed(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Monster", "hsl(218, 80%, 60%)"},
		{"monster", "hsl(258, 80%, 60%)"},
		{"Rockstar", "hsl(129, 80%, 60%)"},
		{"Prime", "hsl(239, 80%, 60%)"},
		{"A very long brand name that overflows", "hsl(163, 80%, 60%)"},
	}
	for _, tt := range tests {
		if got := BrandColor(tt.name); got != tt.want {
			t.Errorf("BrandColor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
