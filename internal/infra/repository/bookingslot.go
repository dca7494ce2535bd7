package repository

import (
	"context"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra"
	"coolslate/internal/infra/db"

	"github.com/google/uuid"
)

type BookingSlotRepository struct{}

func NewBookingSlotRepository() *BookingSlotRepository {
	return &BookingSlotRepository{}
}

func (r *BookingSlotRepository) Insert(ctx context.Context, tx db.DBTX, s *booking.BookingSlot) error {
	const q = `
		INSERT INTO booking_slots (
			id, order_id, slot_date, start_hour, hours,
			contact_name, contact_phone, is_primary, is_selected,
			lock_group_id, lock_expires_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := tx.Exec(ctx, q,
		s.ID, s.OrderID, s.Window.Date, s.Window.StartHour, s.Window.Hours,
		s.ContactName, s.ContactPhone, s.IsPrimary, s.IsSelected,
		s.LockGroupID, s.LockExpiresAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking slot", err)
	}
	return nil
}

func (r *BookingSlotRepository) ListByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]booking.BookingSlot, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, order_id, slot_date, start_hour, hours,
		       contact_name, contact_phone, is_primary, is_selected,
		       lock_group_id, lock_expires_at, created_at
		FROM booking_slots
		WHERE order_id = $1
		ORDER BY is_primary DESC, created_at`,
		orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking slots", err)
	}
	defer rows.Close()

	var slots []booking.BookingSlot
	for rows.Next() {
		var s booking.BookingSlot
		var slotDate time.Time
		var startHour, hours int
		if err := rows.Scan(
			&s.ID, &s.OrderID, &slotDate, &startHour, &hours,
			&s.ContactName, &s.ContactPhone, &s.IsPrimary, &s.IsSelected,
			&s.LockGroupID, &s.LockExpiresAt, &s.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking slot", err)
		}
		s.Window = booking.NewSlotWindow(slotDate, startHour, hours)
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking slots", err)
	}
	return slots, nil
}

func (r *BookingSlotRepository) MarkSelected(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE booking_slots SET is_selected = true WHERE id = $1`, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking slot selected", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking slot not found")
	}
	return nil
}

func (r *BookingSlotRepository) SetWindow(ctx context.Context, tx db.DBTX, slotID uuid.UUID, w booking.SlotWindow) error {
	tag, err := tx.Exec(ctx,
		`UPDATE booking_slots SET slot_date = $2, start_hour = $3, hours = $4 WHERE id = $1`,
		slotID, w.Date, w.StartHour, w.Hours)
	if err != nil {
		return infra.WrapRepoErr("failed to set booking slot window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking slot not found")
	}
	return nil
}

func (r *BookingSlotRepository) ClearLock(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE booking_slots SET lock_group_id = NULL, lock_expires_at = NULL WHERE id = $1`,
		slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear booking slot lock", err)
	}
	return nil
}

// ClearExpiredLockRefs runs ahead of the expired-lock sweep so no slot keeps
// pointing at a group whose rows are about to disappear.
func (r *BookingSlotRepository) ClearExpiredLockRefs(ctx context.Context, tx db.DBTX, now time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE booking_slots
		SET lock_group_id = NULL, lock_expires_at = NULL
		WHERE lock_group_id IS NOT NULL AND lock_expires_at <= $1`,
		now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear expired slot lock refs", err)
	}
	return tag.RowsAffected(), nil
}
