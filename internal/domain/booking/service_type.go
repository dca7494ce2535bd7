package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidUnitCount   = errors.New("unit count out of range")
)

// ServiceType is immutable catalog reference data.
type ServiceType struct {
	ID                      uuid.UUID
	Name                    ServiceKind
	RequiredWorkers         int
	BaseDurationHours       int
	AdditionalDurationHours int
	BookingAdvanceMonths    int
	PricingType             PricingType
	Priority                int
}

// RequiredHours computes the service duration for unitCount units:
// base + (units-1) * additional, capped at MaxServiceHours.
// AdditionalDurationHours is non-negative, so the result is non-decreasing in
// unitCount; calculateMaxUnits relies on that for its early exit.
func (s ServiceType) RequiredHours(unitCount int) int {
	if unitCount < 1 {
		unitCount = 1
	}
	hours := s.BaseDurationHours + (unitCount-1)*s.AdditionalDurationHours
	if hours > MaxServiceHours {
		hours = MaxServiceHours
	}
	return hours
}

// LastBookableDate returns the latest date orders of this type may target.
// Advance months are counted as 30-day blocks.
func (s ServiceType) LastBookableDate(today time.Time) time.Time {
	return today.AddDate(0, 0, s.BookingAdvanceMonths*30)
}

// DateBookable reports whether target is strictly after today and within the
// advance window.
func (s ServiceType) DateBookable(today, target time.Time) bool {
	today = Midnight(today)
	target = Midnight(target)
	return target.After(today) && !target.After(s.LastBookableDate(today))
}

// Midnight truncates t to its date in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
