package commands

import (
	"context"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/pkg/errs"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotUnavailable = errs.New("requested time slots have no free workers")
	ErrLockExpired     = errs.New("slot lock has expired")
)

// reserveWindow seeds the ledger for the window's day, locks the covered hour
// rows, verifies free capacity, and writes a lock group. Must run inside a
// transaction; the FOR UPDATE locks serialize racing reservations so only one
// can claim the last worker.
func reserveWindow(
	ctx context.Context,
	tx shared.Tx,
	w booking.SlotWindow,
	workerCount int,
	lockType booking.LockType,
	referenceID uuid.UUID,
	defaultWorkers int,
	now time.Time,
	expiresAt *time.Time,
) (uuid.UUID, error) {
	if err := tx.Slots().EnsureDay(ctx, tx.DB(), w.Date, defaultWorkers); err != nil {
		return uuid.Nil, err
	}

	totals, err := tx.Slots().LockWindow(ctx, tx.DB(), w)
	if err != nil {
		return uuid.Nil, err
	}

	usage, err := tx.Locks().UsageByHour(ctx, tx.DB(), w.Date, w.StartHour, w.EndHour(), now)
	if err != nil {
		return uuid.Nil, err
	}

	for _, h := range w.HourSlots() {
		total, ok := totals[h]
		if !ok || total-usage[h] < workerCount {
			return uuid.Nil, ErrSlotUnavailable
		}
	}

	groupID := uuid.New()
	if err := tx.Locks().InsertGroup(ctx, tx.DB(), groupID, lockType, referenceID, w, workerCount, expiresAt); err != nil {
		return uuid.Nil, err
	}
	return groupID, nil
}

// releaseSlotLocks drops every provisional lock group the candidate slots
// still hold and detaches the slots from them.
func releaseSlotLocks(ctx context.Context, tx shared.Tx, slots []booking.BookingSlot) error {
	for _, s := range slots {
		if !s.Locked() {
			continue
		}
		if _, err := tx.Locks().Release(ctx, tx.DB(), s.LockGroupID.UUID); err != nil {
			return err
		}
		if err := tx.BookingSlots().ClearLock(ctx, tx.DB(), s.ID); err != nil {
			return err
		}
	}
	return nil
}
