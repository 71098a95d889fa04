// Package memstore holds the in-memory reservation ledger. It is the
// only mutable state in the system and is owned by a single engine,
// which serializes all access; the store itself takes no locks.
package memstore

import "github.com/example/roomsched/internal/domain/booking"

// ExcludeNone as the exclude argument to IsAvailable excludes nothing.
// Reservation IDs start at 1, so 0 never matches a stored record.
const ExcludeNone = 0

type ReservationStore struct {
	reservations []booking.Reservation
	nextID       int
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{nextID: 1}
}

// IsAvailable reports whether no stored reservation for resourceID, other
// than excludeID, overlaps dates. Linear scan; fine at this scale.
func (s *ReservationStore) IsAvailable(resourceID int, dates booking.DateRange, excludeID int) bool {
	for _, r := range s.reservations {
		if r.ResourceID != resourceID || r.ID == excludeID {
			continue
		}
		if r.Dates.Overlaps(dates) {
			return false
		}
	}
	return true
}

// Insert assigns the next reservation ID and appends the record. IDs are
// monotonic and never reused, even after cancellation. The caller must
// have already confirmed availability.
func (s *ReservationStore) Insert(r booking.Reservation) booking.Reservation {
	r.ID = s.nextID
	s.nextID++
	s.reservations = append(s.reservations, r)
	return r
}

func (s *ReservationStore) Get(id int) (booking.Reservation, bool) {
	for _, r := range s.reservations {
		if r.ID == id {
			return r, true
		}
	}
	return booking.Reservation{}, false
}

// Remove deletes the reservation with the given ID, reporting whether it
// existed. A missing ID is not an error.
func (s *ReservationStore) Remove(id int) bool {
	for i, r := range s.reservations {
		if r.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the stored record with the given ID for updated in place,
// preserving insertion order. The swap is a single assignment: no reader
// between calls can observe both versions or neither.
func (s *ReservationStore) Replace(id int, updated booking.Reservation) bool {
	for i, r := range s.reservations {
		if r.ID == id {
			updated.ID = id
			s.reservations[i] = updated
			return true
		}
	}
	return false
}

// All returns a snapshot of every reservation in insertion order. The
// returned slice is a copy; later mutations do not show through.
func (s *ReservationStore) All() []booking.Reservation {
	out := make([]booking.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

func (s *ReservationStore) Len() int {
	return len(s.reservations)
}
