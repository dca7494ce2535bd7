package queries

import (
	"context"
	"time"

	"coolslate/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrForbidden     = errs.New("order belongs to another user")
)

// BookingSlotView is one candidate window as the customer sees it, including
// whether it still holds a provisional capacity lock.
type BookingSlotView struct {
	SlotDate      string     `json:"slot_date"`
	StartHour     int        `json:"start_hour"`
	EndHour       int        `json:"end_hour"`
	ContactName   string     `json:"contact_name"`
	ContactPhone  string     `json:"contact_phone"`
	IsPrimary     bool       `json:"is_primary"`
	IsSelected    bool       `json:"is_selected"`
	IsLocked      bool       `json:"is_locked"`
	LockExpiresAt *time.Time `json:"lock_expires_at,omitempty"`
}

type OrderView struct {
	ID                 uuid.UUID         `json:"id"`
	OrderNumber        string            `json:"order_number"`
	ServiceKind        string            `json:"service_kind"`
	Status             string            `json:"status"`
	PaymentStatus      string            `json:"payment_status"`
	TotalAmount        int               `json:"total_amount"`
	UnitCount          int               `json:"unit_count"`
	Address            string            `json:"address"`
	BookingSlots       []BookingSlotView `json:"booking_slots"`
	SchedulingFeedback string            `json:"scheduling_feedback,omitempty"`
	ScheduledDate      *string           `json:"scheduled_date,omitempty"`
	Note               string            `json:"note,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

type OrderSummaryView struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	ServiceKind string    `json:"service_kind"`
	Status      string    `json:"status"`
	TotalAmount int       `json:"total_amount"`
	SlotDate    string    `json:"slot_date"`
	StartHour   int       `json:"start_hour"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderQueries interface {
	ByID(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderSummaryView, error)
}
