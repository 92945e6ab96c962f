// Package memory holds the in-process reservation registry. Records live only
// for the lifetime of the process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

const DefaultCapacity = 1024

type Option func(*ReservationRepository)

// WithCapacity bounds the number of records (active and cancelled) the
// registry may hold. Non-positive values keep the default.
func WithCapacity(n int) Option {
	return func(r *ReservationRepository) {
		if n > 0 {
			r.capacity = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *ReservationRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// ReservationRepository keeps every reservation of a run in insertion order
// and indexes the active ones by seat number. At most one active record
// exists per seat.
type ReservationRepository struct {
	mu       sync.Mutex
	records  []domain.Reservation
	active   map[int]int // seat -> index into records
	version  uint64      // bumped on every occupancy change
	capacity int
	now      func() time.Time
}

func NewReservationRepository(opts ...Option) *ReservationRepository {
	r := &ReservationRepository{
		active:   make(map[int]int),
		capacity: DefaultCapacity,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *ReservationRepository) IsSeatOccupied(ctx context.Context, seat int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.active[seat]

	return ok
}

func (r *ReservationRepository) Register(ctx context.Context, firstName, lastName string, date domain.Date, seat int) (domain.Reservation, error) {
	if !domain.IsValidSeat(seat) {
		return domain.Reservation{}, domain.ErrInvalidSeat
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[seat]; ok {
		return domain.Reservation{}, domain.ErrSeatTaken
	}

	if len(r.records) >= r.capacity {
		return domain.Reservation{}, domain.ErrOutOfMemory
	}

	res := domain.Reservation{
		ID:         uuid.New(),
		FirstName:  firstName,
		LastName:   lastName,
		Date:       date,
		SeatNumber: seat,
		Active:     true,
		CreatedAt:  r.now(),
	}

	r.records = append(r.records, res)
	r.active[seat] = len(r.records) - 1
	r.version++

	return res, nil
}

// Cancel releases the seat but keeps the record as history until Compact
// purges it.
func (r *ReservationRepository) Cancel(ctx context.Context, seat int) (domain.Reservation, error) {
	if !domain.IsValidSeat(seat) {
		return domain.Reservation{}, domain.ErrInvalidSeat
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.active[seat]
	if !ok {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}

	cancelledAt := r.now()
	r.records[idx].Active = false
	r.records[idx].CancelledAt = &cancelledAt
	delete(r.active, seat)
	r.version++

	return r.records[idx], nil
}

func (r *ReservationRepository) Reservation(ctx context.Context, seat int) (domain.Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.active[seat]
	if !ok {
		return domain.Reservation{}, false
	}

	return r.records[idx], true
}

// Snapshot reports occupancy of every seat as of a single registry version.
func (r *ReservationRepository) Snapshot(ctx context.Context) domain.SeatMap {
	r.mu.Lock()
	defer r.mu.Unlock()

	seats := make([]domain.SeatStatus, 0, domain.SeatCount)
	for seat := domain.MinSeatNumber; seat <= domain.MaxSeatNumber; seat++ {
		_, occupied := r.active[seat]
		seats = append(seats, domain.SeatStatus{SeatNumber: seat, Occupied: occupied})
	}

	return domain.SeatMap{Version: r.version, Seats: seats}
}

func (r *ReservationRepository) Version(ctx context.Context) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.version
}

// List returns a copy of all records, newest first.
func (r *ReservationRepository) List(ctx context.Context) []domain.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Reservation, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
	}

	return out
}

func (r *ReservationRepository) Len(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}

// Compact drops cancelled records cancelled before the cutoff and returns how
// many were removed. Active records are never dropped.
func (r *ReservationRepository) Compact(ctx context.Context, before time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	purged := 0

	for _, res := range r.records {
		if !res.Active && res.CancelledAt != nil && res.CancelledAt.Before(before) {
			purged++
			continue
		}

		kept = append(kept, res)
	}

	if purged == 0 {
		return 0
	}

	// clear the tail so dropped records can be collected
	for i := len(kept); i < len(r.records); i++ {
		r.records[i] = domain.Reservation{}
	}

	r.records = kept
	r.active = make(map[int]int, len(r.active))
	for i, res := range r.records {
		if res.Active {
			r.active[res.SeatNumber] = i
		}
	}

	return purged
}
