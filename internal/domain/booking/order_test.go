//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"coolslate/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 5, 6, 13, 4, 5, 0, time.UTC)
	n := booking.NewOrderNumber(now)

	require.Len(t, n, 20)
	assert.True(t, regexp.MustCompile(`^AC20260506130405[0-9A-F]{4}$`).MatchString(n), n)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[booking.NewOrderNumber(now)] = true
	}
	assert.Greater(t, len(seen), 1, "suffix should vary")
}

func TestOrderValidateCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  booking.OrderStatus
		payment booking.PaymentStatus
		errIs   error
	}{
		{"unpaid pending order", booking.OrderPending, booking.PaymentUnpaid, nil},
		{"refunded scheduled order", booking.OrderScheduled, booking.PaymentRefunded, nil},
		{"paid order needs refund first", booking.OrderPaid, booking.PaymentPaid, booking.ErrRefundRequired},
		{"completed order", booking.OrderCompleted, booking.PaymentPaid, booking.ErrOrderNotCancellable},
		{"already cancelled order", booking.OrderCancelled, booking.PaymentRefunded, booking.ErrOrderNotCancellable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := booking.Order{Status: tt.status, PaymentStatus: tt.payment}
			err := o.ValidateCancel()
			if tt.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestOrderValidateConfirmPayment(t *testing.T) {
	order := booking.Order{
		Status:        booking.OrderPending,
		PaymentStatus: booking.PaymentUnpaid,
		TotalAmount:   3400,
	}

	t.Run("matching amount succeeds", func(t *testing.T) {
		assert.NoError(t, order.ValidateConfirmPayment(3400))
	})
	t.Run("amount mismatch", func(t *testing.T) {
		assert.ErrorIs(t, order.ValidateConfirmPayment(3500), booking.ErrAmountMismatch)
	})
	t.Run("second notification is rejected", func(t *testing.T) {
		paid := order
		paid.PaymentStatus = booking.PaymentPaid
		assert.ErrorIs(t, paid.ValidateConfirmPayment(3400), booking.ErrAlreadyPaid)
	})
	t.Run("cancelled order rejects payment", func(t *testing.T) {
		cancelled := order
		cancelled.Status = booking.OrderCancelled
		assert.ErrorIs(t, cancelled.ValidateConfirmPayment(3400), booking.ErrOrderNotCancellable)
	})
}

func TestOrderValidateSchedule(t *testing.T) {
	for _, s := range []booking.OrderStatus{
		booking.OrderPendingSchedule,
		booking.OrderSchedulingFailed,
		booking.OrderPendingReschedule,
	} {
		assert.NoError(t, booking.Order{Status: s}.ValidateSchedule(), string(s))
	}
	for _, s := range []booking.OrderStatus{
		booking.OrderPending,
		booking.OrderScheduled,
		booking.OrderCompleted,
		booking.OrderCancelled,
	} {
		assert.ErrorIs(t, booking.Order{Status: s}.ValidateSchedule(), booking.ErrNotSchedulable, string(s))
	}
}

func TestOrderValidateRefundAndComplete(t *testing.T) {
	assert.NoError(t, booking.Order{PaymentStatus: booking.PaymentPaid}.ValidateRefund())
	assert.ErrorIs(t, booking.Order{PaymentStatus: booking.PaymentUnpaid}.ValidateRefund(), booking.ErrNotPaid)

	assert.NoError(t, booking.Order{Status: booking.OrderScheduled}.ValidateComplete())
	assert.ErrorIs(t, booking.Order{Status: booking.OrderPendingSchedule}.ValidateComplete(), booking.ErrNotCompletable)
}
