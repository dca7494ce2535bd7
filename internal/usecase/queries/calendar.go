package queries

import (
	"context"
	"time"

	"coolslate/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceTypeNotFound = errs.New("service type not found")
	ErrInvalidQueryRange   = errs.New("invalid calendar range")
)

// DayAvailability summarizes one calendar day for the month view.
type DayAvailability struct {
	Date      string `json:"date"`
	Bookable  bool   `json:"bookable"`
	Available bool   `json:"available"`
}

type MonthView struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  []DayAvailability `json:"days"`
}

// HourAvailability reports how many workers are free if a service starts at
// Hour, over the whole service window.
type HourAvailability struct {
	Hour             int    `json:"hour"`
	Label            string `json:"label"`
	AvailableWorkers int    `json:"available_workers"`
	Feasible         bool   `json:"feasible"`
}

type DayView struct {
	Date          string             `json:"date"`
	RequiredHours int                `json:"required_hours"`
	Hours         []HourAvailability `json:"hours"`
}

type CalendarQueries interface {
	// Month marks each day of the month that still has a feasible start hour
	// for the service at the given unit count.
	Month(ctx context.Context, serviceTypeID uuid.UUID, year, month, unitCount int) (*MonthView, error)
	// Day breaks a single day into start hours with remaining worker counts.
	Day(ctx context.Context, serviceTypeID uuid.UUID, date time.Time, unitCount int) (*DayView, error)
	// MaxUnits returns the largest unit count still schedulable at the given
	// start hour, zero when none fits.
	MaxUnits(ctx context.Context, serviceTypeID uuid.UUID, date time.Time, startHour int) (int, error)
}
