package domain

import "errors"

var (
	ErrInvalidSeat         = errors.New("invalid seat number")
	ErrSeatTaken           = errors.New("seat is already taken")
	ErrOutOfMemory         = errors.New("registry is out of memory")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDate         = errors.New("invalid date")
)
