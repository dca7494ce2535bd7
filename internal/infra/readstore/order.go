package readstore

import (
	"context"
	"time"

	"coolslate/internal/infra"
	"coolslate/internal/pkg/errs"
	"coolslate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) queries.OrderQueries {
	return &OrderReadStore{pool: pool}
}

func (s *OrderReadStore) ByID(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*queries.OrderView, error) {
	const q = `
		SELECT o.id, o.order_number, o.user_id, o.service_kind, o.status, o.payment_status,
		       o.total_amount, o.unit_count, o.address, o.scheduling_feedback,
		       o.note, o.created_at,
		       s.slot_date AS scheduled_date
		FROM orders o
		LEFT JOIN schedules s ON s.order_id = o.id AND s.status = 'scheduled'
		WHERE o.id = $1`

	var (
		v             queries.OrderView
		ownerID       uuid.UUID
		scheduledDate *time.Time
	)
	err := s.pool.QueryRow(ctx, q, orderID).Scan(
		&v.ID, &v.OrderNumber, &ownerID, &v.ServiceKind, &v.Status, &v.PaymentStatus,
		&v.TotalAmount, &v.UnitCount, &v.Address, &v.SchedulingFeedback,
		&v.Note, &v.CreatedAt, &scheduledDate,
	)
	if err != nil {
		return nil, errs.Mark(infra.WrapRepoErr("failed to read order view", err), queries.ErrOrderNotFound)
	}
	if !isAdmin && ownerID != requesterID {
		return nil, queries.ErrForbidden
	}
	if scheduledDate != nil {
		formatted := scheduledDate.Format("2006-01-02")
		v.ScheduledDate = &formatted
	}

	slots, err := s.slotsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	v.BookingSlots = slots
	return &v, nil
}

func (s *OrderReadStore) slotsByOrder(ctx context.Context, orderID uuid.UUID) ([]queries.BookingSlotView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT slot_date, start_hour, hours, contact_name, contact_phone,
		       is_primary, is_selected, lock_group_id IS NOT NULL, lock_expires_at
		FROM booking_slots
		WHERE order_id = $1
		ORDER BY is_primary DESC, created_at`,
		orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booking slots", err)
	}
	defer rows.Close()

	var views []queries.BookingSlotView
	for rows.Next() {
		var sv queries.BookingSlotView
		var slotDate time.Time
		var hours int
		if err := rows.Scan(&slotDate, &sv.StartHour, &hours, &sv.ContactName, &sv.ContactPhone,
			&sv.IsPrimary, &sv.IsSelected, &sv.IsLocked, &sv.LockExpiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking slot view", err)
		}
		sv.SlotDate = slotDate.Format("2006-01-02")
		sv.EndHour = sv.StartHour + hours
		views = append(views, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking slot views", err)
	}
	return views, nil
}

func (s *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.OrderSummaryView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT o.id, o.order_number, o.service_kind, o.status, o.total_amount,
		       bs.slot_date, bs.start_hour, o.created_at
		FROM orders o
		JOIN booking_slots bs ON bs.order_id = o.id AND bs.is_primary
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user orders", err)
	}
	defer rows.Close()

	var views []queries.OrderSummaryView
	for rows.Next() {
		var v queries.OrderSummaryView
		var slotDate time.Time
		if err := rows.Scan(&v.ID, &v.OrderNumber, &v.ServiceKind, &v.Status, &v.TotalAmount, &slotDate, &v.StartHour, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order summary", err)
		}
		v.SlotDate = slotDate.Format("2006-01-02")
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order summaries", err)
	}
	return views, nil
}
