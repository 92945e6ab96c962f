package domain_test

import (
	"testing"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDateValidate(t *testing.T) {
	tests := []struct {
		name    string
		date    domain.Date
		wantErr bool
	}{
		{"valid", domain.Date{Day: 1, Month: 3, Year: 2024}, false},
		{"last day", domain.Date{Day: 31, Month: 12, Year: 9999}, false},
		{"day zero", domain.Date{Day: 0, Month: 3, Year: 2024}, true},
		{"day too big", domain.Date{Day: 32, Month: 3, Year: 2024}, true},
		{"month zero", domain.Date{Day: 1, Month: 0, Year: 2024}, true},
		{"month too big", domain.Date{Day: 1, Month: 13, Year: 2024}, true},
		{"ancient year", domain.Date{Day: 1, Month: 1, Year: 1066}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.date.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2024-03-01", domain.Date{Day: 1, Month: 3, Year: 2024}.String())
}

func TestIsValidSeat(t *testing.T) {
	assert.True(t, domain.IsValidSeat(0))
	assert.True(t, domain.IsValidSeat(99))
	assert.False(t, domain.IsValidSeat(-1))
	assert.False(t, domain.IsValidSeat(100))
}
