// Package engine orchestrates reservation operations: validation,
// availability, pricing, and the store mutation, one atomic step per call.
package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/roomsched/internal/domain/booking"
	"github.com/example/roomsched/internal/infrastructure/memstore"
)

// Engine is the composition root of the booking core. Business failures
// (bad dates, unknown IDs, overlap) come back as an absent result, never
// an error; callers are expected to check the bool on every call.
type Engine struct {
	resources  booking.ResourceCatalog
	requesters booking.RequesterCatalog

	mu    sync.RWMutex
	store *memstore.ReservationStore

	log *zap.Logger
	now func() time.Time
}

type Option func(*Engine)

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock overrides the source of "today" for past-date validation.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(resources booking.ResourceCatalog, requesters booking.RequesterCatalog, opts ...Option) *Engine {
	e := &Engine{
		resources:  resources,
		requesters: requesters,
		store:      memstore.NewReservationStore(),
		log:        zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Create books dates on a resource for a requester, pricing the stay with
// the given policy. Validation order: date order, past check-in, resource
// lookup, requester lookup, availability; the first failing check wins.
func (e *Engine) Create(resourceID, requesterID int, dates booking.DateRange, policy booking.PricingPolicy) (booking.Reservation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !dates.End.After(dates.Start) {
		e.log.Debug("rejected: check-out not after check-in", zap.Stringer("dates", dates))
		return booking.Reservation{}, false
	}
	if dates.Start.Before(e.today()) {
		e.log.Debug("rejected: check-in in the past", zap.Stringer("dates", dates))
		return booking.Reservation{}, false
	}
	resource, ok := e.resources.Get(resourceID)
	if !ok {
		e.log.Debug("rejected: unknown resource", zap.Int("resource_id", resourceID))
		return booking.Reservation{}, false
	}
	if _, ok := e.requesters.Get(requesterID); !ok {
		e.log.Debug("rejected: unknown requester", zap.Int("requester_id", requesterID))
		return booking.Reservation{}, false
	}
	if !e.store.IsAvailable(resourceID, dates, memstore.ExcludeNone) {
		e.log.Debug("rejected: dates unavailable",
			zap.Int("resource_id", resourceID), zap.Stringer("dates", dates))
		return booking.Reservation{}, false
	}

	res := e.store.Insert(booking.Reservation{
		ResourceID:   resourceID,
		RequesterID:  requesterID,
		Dates:        dates,
		Total:        policy.Total(resource, dates),
		Confirmation: uuid.NewString(),
	})
	e.log.Info("reservation created",
		zap.Int("id", res.ID),
		zap.Int("resource_id", res.ResourceID),
		zap.Stringer("dates", res.Dates),
		zap.String("total", res.Total.String()))
	return res, true
}

// Update moves an existing reservation to new dates and reprices it with
// the given policy. ID, resource, requester and confirmation code are
// preserved. On any failure the stored record is left untouched.
func (e *Engine) Update(id int, dates booking.DateRange, policy booking.PricingPolicy) (booking.Reservation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing, ok := e.store.Get(id)
	if !ok {
		return booking.Reservation{}, false
	}
	if !dates.End.After(dates.Start) {
		return booking.Reservation{}, false
	}
	// A reservation never conflicts with itself.
	if !e.store.IsAvailable(existing.ResourceID, dates, existing.ID) {
		e.log.Debug("update rejected: dates unavailable",
			zap.Int("id", id), zap.Stringer("dates", dates))
		return booking.Reservation{}, false
	}
	resource, ok := e.resources.Get(existing.ResourceID)
	if !ok {
		return booking.Reservation{}, false
	}

	updated := existing
	updated.Dates = dates
	updated.Total = policy.Total(resource, dates)
	if !e.store.Replace(id, updated) {
		return booking.Reservation{}, false
	}
	e.log.Info("reservation updated",
		zap.Int("id", id),
		zap.Stringer("dates", updated.Dates),
		zap.String("total", updated.Total.String()))
	return updated, true
}

// Cancel removes the reservation, reporting whether it existed. Calling
// twice with the same ID returns true then false.
func (e *Engine) Cancel(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok := e.store.Remove(id)
	if ok {
		e.log.Info("reservation cancelled", zap.Int("id", id))
	}
	return ok
}

// Reservations returns a snapshot of all reservations in insertion order.
func (e *Engine) Reservations() []booking.Reservation {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.All()
}

// Available reports whether dates are free on a resource right now. The
// answer can go stale as soon as the lock is released; Create revalidates.
func (e *Engine) Available(resourceID int, dates booking.DateRange) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.IsAvailable(resourceID, dates, memstore.ExcludeNone)
}

func (e *Engine) today() time.Time {
	return booking.MidnightUTC(e.now())
}
