package ports

import (
	"context"
	"time"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

type ReservationRepository interface {
	IsSeatOccupied(ctx context.Context, seat int) bool
	Register(ctx context.Context, firstName, lastName string, date domain.Date, seat int) (domain.Reservation, error)
	Cancel(ctx context.Context, seat int) (domain.Reservation, error)
	Reservation(ctx context.Context, seat int) (domain.Reservation, bool)
	Snapshot(ctx context.Context) domain.SeatMap
	Version(ctx context.Context) uint64
	List(ctx context.Context) []domain.Reservation
	Len(ctx context.Context) int
	Compact(ctx context.Context, before time.Time) int
}

type EventPublisher interface {
	PublishReservationEvent(ctx context.Context, event domain.ReservationEvent) error
}
