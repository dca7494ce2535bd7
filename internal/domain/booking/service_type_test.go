//go:build unit

package booking_test

import (
	"testing"
	"time"

	"coolslate/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestServiceTypeRequiredHours(t *testing.T) {
	installation := booking.ServiceType{
		Name:                    booking.ServiceInstallation,
		BaseDurationHours:       2,
		AdditionalDurationHours: 1,
	}

	tests := []struct {
		name      string
		st        booking.ServiceType
		unitCount int
		want      int
	}{
		{"single unit uses base duration", installation, 1, 2},
		{"each extra unit adds additional duration", installation, 3, 4},
		{"duration caps at the working day", installation, 20, booking.MaxServiceHours},
		{"zero units treated as one", installation, 0, 2},
		{"negative units treated as one", installation, -5, 2},
		{
			"zero additional duration is flat",
			booking.ServiceType{Name: booking.ServiceMaintenance, BaseDurationHours: 1},
			8, 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.st.RequiredHours(tt.unitCount))
		})
	}
}

func TestServiceTypeRequiredHoursMonotonic(t *testing.T) {
	st := booking.ServiceType{BaseDurationHours: 2, AdditionalDurationHours: 1}
	prev := 0
	for units := 1; units <= 20; units++ {
		got := st.RequiredHours(units)
		assert.GreaterOrEqual(t, got, prev, "units=%d", units)
		assert.LessOrEqual(t, got, booking.MaxServiceHours)
		prev = got
	}
}

func TestServiceTypeDateBookable(t *testing.T) {
	st := booking.ServiceType{BookingAdvanceMonths: 2}
	today := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   bool
	}{
		{"today itself is not bookable", today, false},
		{"yesterday is not bookable", today.AddDate(0, 0, -1), false},
		{"tomorrow is bookable", today.AddDate(0, 0, 1), true},
		{"last day of the window", today.AddDate(0, 0, 60), true},
		{"one past the window", today.AddDate(0, 0, 61), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, st.DateBookable(today, tt.target))
		})
	}
}

func TestServiceKindRequiresPreLock(t *testing.T) {
	assert.True(t, booking.ServiceInstallation.RequiresPreLock())
	assert.True(t, booking.ServiceMaintenance.RequiresPreLock())
	assert.False(t, booking.ServiceRepair.RequiresPreLock())
}
