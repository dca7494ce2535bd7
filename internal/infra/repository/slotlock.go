package repository

import (
	"context"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra"
	"coolslate/internal/infra/db"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotLockRepository stores one row per held hour. Booking locks carry an
// expiry; schedule locks hold capacity until released.
type SlotLockRepository struct{}

func NewSlotLockRepository() *SlotLockRepository {
	return &SlotLockRepository{}
}

func (r *SlotLockRepository) InsertGroup(ctx context.Context, tx db.DBTX, groupID uuid.UUID, lockType booking.LockType, referenceID uuid.UUID, w booking.SlotWindow, workerCount int, expiresAt *time.Time) error {
	for _, h := range w.HourSlots() {
		_, err := tx.Exec(ctx, `
			INSERT INTO time_slot_locks (id, lock_group_id, lock_type, reference_id, slot_date, slot_hour, worker_count, expires_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), groupID, lockType, referenceID, w.Date, h, workerCount, expiresAt)
		if err != nil {
			return infra.WrapRepoErr("failed to insert slot lock", err)
		}
	}
	return nil
}

// UsageByHour sums held workers per hour over [startHour, endHour).
// Expired booking locks are ignored even before the reclaimer deletes them.
func (r *SlotLockRepository) UsageByHour(ctx context.Context, tx db.DBTX, date time.Time, startHour, endHour int, now time.Time) (map[int]int, error) {
	rows, err := tx.Query(ctx, `
		SELECT slot_hour, COALESCE(SUM(worker_count), 0)
		FROM time_slot_locks
		WHERE slot_date = $1
		  AND slot_hour >= $2 AND slot_hour < $3
		  AND (expires_at IS NULL OR expires_at > $4)
		GROUP BY slot_hour`,
		date, startHour, endHour, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read slot usage", err)
	}
	defer rows.Close()

	usage := make(map[int]int)
	for rows.Next() {
		var hour, used int
		if err := rows.Scan(&hour, &used); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot usage", err)
		}
		usage[hour] = used
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot usage", err)
	}
	return usage, nil
}

func (r *SlotLockRepository) Release(ctx context.Context, tx db.DBTX, groupID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM time_slot_locks WHERE lock_group_id = $1`, groupID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release slot locks", err)
	}
	return tag.RowsAffected(), nil
}

// ConvertToSchedule promotes a provisional booking group to a committed
// schedule hold. Expired rows are not convertible.
func (r *SlotLockRepository) ConvertToSchedule(ctx context.Context, tx db.DBTX, groupID, scheduleID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE time_slot_locks
		SET lock_type = 'schedule', reference_id = $2, expires_at = NULL
		WHERE lock_group_id = $1
		  AND lock_type = 'booking'
		  AND expires_at > now()`,
		groupID, scheduleID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to convert slot locks", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotLockRepository) FindGroup(ctx context.Context, tx db.DBTX, groupID uuid.UUID) ([]shared.SlotLockRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, lock_group_id, lock_type, reference_id, slot_date, slot_hour, worker_count, expires_at
		FROM time_slot_locks
		WHERE lock_group_id = $1
		ORDER BY slot_hour`,
		groupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find lock group", err)
	}
	defer rows.Close()

	var locks []shared.SlotLockRecord
	for rows.Next() {
		var l shared.SlotLockRecord
		if err := rows.Scan(&l.ID, &l.GroupID, &l.LockType, &l.ReferenceID, &l.Date, &l.Hour, &l.WorkerCount, &l.ExpiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lock row", err)
		}
		locks = append(locks, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read lock group", err)
	}
	return locks, nil
}

func (r *SlotLockRepository) DeleteExpired(ctx context.Context, tx db.DBTX, now time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		DELETE FROM time_slot_locks
		WHERE lock_type = 'booking' AND expires_at <= $1`,
		now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired locks", err)
	}
	return tag.RowsAffected(), nil
}
