package repository

import (
	"context"

	"coolslate/internal/infra"
	"coolslate/internal/infra/db"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) Create(ctx context.Context, tx db.DBTX, s *shared.ScheduleRecord) (uuid.UUID, error) {
	const q = `
		INSERT INTO schedules (id, order_id, lock_group_id, slot_date, start_hour, end_hour, worker_count, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		s.ID, s.OrderID, s.LockGroupID, s.Date, s.StartHour, s.EndHour, s.WorkerCount, s.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create schedule", err)
	}
	return id, nil
}

func (r *ScheduleRepository) FindActiveByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*shared.ScheduleRecord, error) {
	var s shared.ScheduleRecord
	err := tx.QueryRow(ctx, `
		SELECT id, order_id, lock_group_id, slot_date, start_hour, end_hour, worker_count, status, created_at
		FROM schedules
		WHERE order_id = $1 AND status = 'scheduled'`,
		orderID,
	).Scan(&s.ID, &s.OrderID, &s.LockGroupID, &s.Date, &s.StartHour, &s.EndHour, &s.WorkerCount, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active schedule", err)
	}
	return &s, nil
}

func (r *ScheduleRepository) Cancel(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE schedules SET status = 'cancelled' WHERE id = $1 AND status = 'scheduled'`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "active schedule not found")
	}
	return nil
}
