package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is a half-open [Start, End) span of calendar nights.
// Both endpoints are normalized to midnight UTC; End is always after Start.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	d := DateRange{Start: MidnightUTC(start), End: MidnightUTC(end)}
	if !d.End.After(d.Start) {
		return DateRange{}, fmt.Errorf("check-out %s must be after check-in %s",
			d.End.Format(dateLayout), d.Start.Format(dateLayout))
	}
	return d, nil
}

// MidnightUTC truncates t to the start of its calendar day in UTC.
func MidnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const dateLayout = "2006-01-02"

// Nights is the number of whole nights covered by the range, at least 1.
func (d DateRange) Nights() int {
	return int(d.End.Sub(d.Start) / (24 * time.Hour))
}

// Overlaps reports whether the two half-open ranges share at least one
// night. Ranges that merely touch (one ends where the other starts) do
// not overlap.
func (d DateRange) Overlaps(o DateRange) bool {
	return d.Start.Before(o.End) && o.Start.Before(d.End)
}

func (d DateRange) String() string {
	return d.Start.Format(dateLayout) + " to " + d.End.Format(dateLayout)
}

// Resource is a bookable unit: a room, seat or slot. Immutable once built.
type Resource struct {
	ID       int
	Label    string
	Capacity int
	BaseRate decimal.Decimal // per night
}

func NewResource(id int, label string, capacity int, baseRate decimal.Decimal) (Resource, error) {
	if id <= 0 {
		return Resource{}, fmt.Errorf("resource id must be positive, got %d", id)
	}
	if strings.TrimSpace(label) == "" {
		return Resource{}, fmt.Errorf("resource %d: label is required", id)
	}
	if capacity <= 0 {
		return Resource{}, fmt.Errorf("resource %d: capacity must be positive, got %d", id, capacity)
	}
	if !baseRate.IsPositive() {
		return Resource{}, fmt.Errorf("resource %d: base rate must be positive, got %s", id, baseRate)
	}
	return Resource{ID: id, Label: strings.TrimSpace(label), Capacity: capacity, BaseRate: baseRate}, nil
}

// Requester is whoever a reservation is held for. Looked up by ID only.
type Requester struct {
	ID    int
	Name  string
	Email string
	Phone string
}

func NewRequester(id int, name, email, phone string) (Requester, error) {
	if id <= 0 {
		return Requester{}, fmt.Errorf("requester id must be positive, got %d", id)
	}
	if strings.TrimSpace(name) == "" {
		return Requester{}, fmt.Errorf("requester %d: name is required", id)
	}
	return Requester{ID: id, Name: strings.TrimSpace(name), Email: email, Phone: phone}, nil
}

// Reservation is a confirmed hold on a resource for a date range.
// ID and Confirmation are assigned once; only Dates and Total change
// across an update.
type Reservation struct {
	ID           int
	ResourceID   int
	RequesterID  int
	Dates        DateRange
	Total        decimal.Decimal
	Confirmation string
}

func (r Reservation) String() string {
	return fmt.Sprintf("reservation %d: resource %d, requester %d, %s, total %s",
		r.ID, r.ResourceID, r.RequesterID, r.Dates, r.Total)
}
