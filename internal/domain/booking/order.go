package booking

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderNotCancellable = errors.New("order cannot be cancelled in its current state")
	ErrRefundRequired      = errors.New("paid order requires a refund before cancellation")
	ErrAlreadyPaid         = errors.New("order is already paid")
	ErrNotPaid             = errors.New("order is not paid")
	ErrAmountMismatch      = errors.New("payment amount does not match order total")
	ErrNotSchedulable      = errors.New("order is not awaiting scheduling")
	ErrNotCompletable      = errors.New("order is not in a completable state")
)

// Order is the aggregate root for a customer service request. User identity
// is denormalized from the external auth service at creation time. Candidate
// service windows live in BookingSlot rows keyed by the order ID.
type Order struct {
	ID                 uuid.UUID
	OrderNumber        string
	UserID             uuid.UUID
	UserEmail          string
	ServiceTypeID      uuid.UUID
	ServiceKind        ServiceKind
	Status             OrderStatus
	PaymentStatus      PaymentStatus
	TotalAmount        int
	UnitCount          int
	Address            string
	Latitude           float64
	Longitude          float64
	SchedulingFeedback string
	Note               string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Geocoded reports whether the order already carries resolved coordinates.
func (o Order) Geocoded() bool {
	return o.Latitude != 0 || o.Longitude != 0
}

// NewOrderNumber generates a human-readable order number:
// "AC" + yyyymmddHHMMSS + 4 random uppercase hex chars.
func NewOrderNumber(now time.Time) string {
	var b [2]byte
	_, _ = rand.Read(b[:])
	return "AC" + now.Format("20060102150405") + strings.ToUpper(hex.EncodeToString(b[:]))
}

// terminal order states admit no further transitions.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// ValidateCancel enforces the cancellation rules: only unpaid or refunded
// orders may be cancelled directly; paid orders must be refunded first.
func (o Order) ValidateCancel() error {
	if o.Status.Terminal() {
		return ErrOrderNotCancellable
	}
	switch o.PaymentStatus {
	case PaymentUnpaid, PaymentRefunded:
		return nil
	default:
		return ErrRefundRequired
	}
}

// ValidateConfirmPayment checks a payment notification against the order.
func (o Order) ValidateConfirmPayment(amount int) error {
	if o.PaymentStatus != PaymentUnpaid {
		return ErrAlreadyPaid
	}
	if o.Status.Terminal() {
		return ErrOrderNotCancellable
	}
	if amount != o.TotalAmount {
		return ErrAmountMismatch
	}
	return nil
}

// ValidateRefund checks that the order holds funds to return.
func (o Order) ValidateRefund() error {
	if o.PaymentStatus != PaymentPaid {
		return ErrNotPaid
	}
	return nil
}

// ValidateSchedule checks that the order is awaiting worker assignment.
func (o Order) ValidateSchedule() error {
	switch o.Status {
	case OrderPendingSchedule, OrderSchedulingFailed, OrderPendingReschedule:
		return nil
	}
	return ErrNotSchedulable
}

// ValidateComplete checks that a completion report may close the order.
func (o Order) ValidateComplete() error {
	if o.Status != OrderScheduled {
		return ErrNotCompletable
	}
	return nil
}

// NextAfterPayment returns the status an order moves to once payment is
// confirmed. Lockable services go straight to scheduling; repairs wait for
// the daily dispatch.
func (o Order) NextAfterPayment() OrderStatus {
	return OrderPendingSchedule
}
