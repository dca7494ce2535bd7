package repository

import (
	"context"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra"
	"coolslate/internal/infra/db"
)

// SlotRepository owns the per-hour capacity ledger rows that reservations
// serialize on.
type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

// EnsureDay lazily seeds the hour grid for date. Existing rows keep their
// configured worker totals.
func (r *SlotRepository) EnsureDay(ctx context.Context, tx db.DBTX, date time.Time, totalWorkers int) error {
	for _, h := range booking.StartHours() {
		_, err := tx.Exec(ctx, `
			INSERT INTO time_slots (slot_date, slot_hour, total_workers)
			VALUES ($1, $2, $3)
			ON CONFLICT (slot_date, slot_hour) DO NOTHING`,
			date, h, totalWorkers)
		if err != nil {
			return infra.WrapRepoErr("failed to seed time slot", err)
		}
	}
	return nil
}

// LockWindow takes FOR UPDATE row locks on the window's hours in ascending
// order, so concurrent reservations over overlapping windows queue instead of
// deadlocking. Returns total workers per locked hour.
func (r *SlotRepository) LockWindow(ctx context.Context, tx db.DBTX, w booking.SlotWindow) (map[int]int, error) {
	rows, err := tx.Query(ctx, `
		SELECT slot_hour, total_workers
		FROM time_slots
		WHERE slot_date = $1 AND slot_hour >= $2 AND slot_hour < $3
		ORDER BY slot_hour
		FOR UPDATE`,
		w.Date, w.StartHour, w.EndHour())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock time slots", err)
	}
	defer rows.Close()

	totals := make(map[int]int, w.Hours)
	for rows.Next() {
		var hour, workers int
		if err := rows.Scan(&hour, &workers); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot", err)
		}
		totals[hour] = workers
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time slots", err)
	}
	return totals, nil
}

func (r *SlotRepository) TotalWorkersByHour(ctx context.Context, tx db.DBTX, date time.Time) (map[int]int, error) {
	rows, err := tx.Query(ctx, `
		SELECT slot_hour, total_workers FROM time_slots WHERE slot_date = $1`,
		date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read day capacity", err)
	}
	defer rows.Close()

	totals := make(map[int]int)
	for rows.Next() {
		var hour, workers int
		if err := rows.Scan(&hour, &workers); err != nil {
			return nil, infra.WrapRepoErr("failed to scan day capacity", err)
		}
		totals[hour] = workers
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read day capacity", err)
	}
	return totals, nil
}
