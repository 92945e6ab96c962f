package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const MaxNameLength = 64

type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Validate only checks field ranges, not calendar correctness.
func (d Date) Validate() error {
	if d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("%w: day %d", ErrInvalidDate, d.Day)
	}

	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}

	if d.Year < 1900 || d.Year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidDate, d.Year)
	}

	return nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

type Reservation struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Date        Date       `json:"date"`
	SeatNumber  int        `json:"seat"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
