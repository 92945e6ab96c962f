package domain

const (
	MinSeatNumber = 0
	MaxSeatNumber = 99
	SeatCount     = MaxSeatNumber - MinSeatNumber + 1
)

type SeatStatus struct {
	SeatNumber int  `json:"seat"`
	Occupied   bool `json:"occupied"`
}

// SeatMap is the occupancy of all seats at one registry version.
type SeatMap struct {
	Version uint64       `json:"version"`
	Seats   []SeatStatus `json:"seats"`
}

func IsValidSeat(seat int) bool {
	return seat >= MinSeatNumber && seat <= MaxSeatNumber
}
