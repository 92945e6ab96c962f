package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventReservationBooked    EventType = "reservation.booked"
	EventReservationCancelled EventType = "reservation.cancelled"
)

// ReservationEvent is published after a registry mutation succeeds.
type ReservationEvent struct {
	Type          EventType `json:"type"`
	Venue         string    `json:"venue"`
	ReservationID uuid.UUID `json:"reservation_id"`
	SeatNumber    int       `json:"seat"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Date          string    `json:"date"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewReservationEvent(t EventType, venue string, r Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		Type:          t,
		Venue:         venue,
		ReservationID: r.ID,
		SeatNumber:    r.SeatNumber,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Date:          r.Date.String(),
		OccurredAt:    at,
	}
}
