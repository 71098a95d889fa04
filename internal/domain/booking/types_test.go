package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) DateRange {
	t.Helper()
	d, err := NewDateRange(start, end)
	if err != nil {
		t.Fatalf("NewDateRange(%s, %s): %v", start, end, err)
	}
	return d
}

func TestNewDateRangeRejectsBadOrder(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"end before start", date(2025, 10, 15), date(2025, 10, 10)},
		{"end equals start", date(2025, 10, 10), date(2025, 10, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewDateRange(tc.start, tc.end); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDateRangeNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	start := time.Date(2025, 10, 10, 15, 30, 0, 0, loc)
	d := mustRange(t, start, start.AddDate(0, 0, 2))

	if !d.Start.Equal(date(2025, 10, 10)) {
		t.Errorf("start = %s, want 2025-10-10 midnight UTC", d.Start)
	}
	if got := d.Nights(); got != 2 {
		t.Errorf("nights = %d, want 2", got)
	}
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, date(2025, 10, 10), date(2025, 10, 15))

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", date(2025, 10, 10), date(2025, 10, 15), true},
		{"starts inside", date(2025, 10, 14), date(2025, 10, 16), true},
		{"ends inside", date(2025, 10, 8), date(2025, 10, 11), true},
		{"contains", date(2025, 10, 9), date(2025, 10, 16), true},
		{"contained", date(2025, 10, 11), date(2025, 10, 13), true},
		{"touches at end", date(2025, 10, 15), date(2025, 10, 18), false},
		{"touches at start", date(2025, 10, 7), date(2025, 10, 10), false},
		{"disjoint after", date(2025, 10, 20), date(2025, 10, 22), false},
		{"disjoint before", date(2025, 10, 1), date(2025, 10, 5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustRange(t, tc.start, tc.end)
			if got := base.Overlaps(other); got != tc.want {
				t.Errorf("Overlaps(%s) = %v, want %v", other, got, tc.want)
			}
			// Overlap is symmetric.
			if got := other.Overlaps(base); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewResourceValidation(t *testing.T) {
	rate := decimal.NewFromInt(100_000)

	if _, err := NewResource(1, "101", 2, rate); err != nil {
		t.Fatalf("valid resource rejected: %v", err)
	}

	cases := []struct {
		name     string
		id       int
		label    string
		capacity int
		rate     decimal.Decimal
	}{
		{"zero id", 0, "101", 2, rate},
		{"blank label", 1, "  ", 2, rate},
		{"zero capacity", 1, "101", 0, rate},
		{"negative rate", 1, "101", 2, decimal.NewFromInt(-1)},
		{"zero rate", 1, "101", 2, decimal.Zero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewResource(tc.id, tc.label, tc.capacity, tc.rate); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewRequesterValidation(t *testing.T) {
	if _, err := NewRequester(1, "Marlon", "m@example.com", "300123456"); err != nil {
		t.Fatalf("valid requester rejected: %v", err)
	}
	if _, err := NewRequester(0, "Marlon", "", ""); err == nil {
		t.Error("expected an error for non-positive id")
	}
	if _, err := NewRequester(1, "   ", "", ""); err == nil {
		t.Error("expected an error for blank name")
	}
}

func TestCatalogLookup(t *testing.T) {
	r1, _ := NewResource(1, "101", 2, decimal.NewFromInt(100))
	r2, _ := NewResource(2, "102", 3, decimal.NewFromInt(200))
	c := NewResourceCatalog([]Resource{r1, r2})

	if got, ok := c.Get(2); !ok || got.Label != "102" {
		t.Errorf("Get(2) = %+v, %v", got, ok)
	}
	if _, ok := c.Get(99); ok {
		t.Error("Get(99) should miss")
	}
	all := c.All()
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Errorf("All() not in registration order: %+v", all)
	}
}
