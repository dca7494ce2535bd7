package repository

import (
	"context"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra"
	"coolslate/internal/infra/db"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const orderColumns = `id, order_number, user_id, user_email, service_type_id, service_kind,
	status, payment_status, total_amount, unit_count, address, latitude, longitude,
	scheduling_feedback, note, created_at, updated_at`

func scanOrder(row pgx.Row) (*booking.Order, error) {
	var o booking.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.UserEmail, &o.ServiceTypeID, &o.ServiceKind,
		&o.Status, &o.PaymentStatus, &o.TotalAmount, &o.UnitCount, &o.Address, &o.Latitude, &o.Longitude,
		&o.SchedulingFeedback, &o.Note, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *booking.Order) (uuid.UUID, error) {
	const q = `
		INSERT INTO orders (
			id, order_number, user_id, user_email, service_type_id, service_kind,
			status, payment_status, total_amount, unit_count, address, latitude, longitude,
			scheduling_feedback, note
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id`
	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		o.ID, o.OrderNumber, o.UserID, o.UserEmail, o.ServiceTypeID, o.ServiceKind,
		o.Status, o.PaymentStatus, o.TotalAmount, o.UnitCount, o.Address, o.Latitude, o.Longitude,
		o.SchedulingFeedback, o.Note,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return id, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Order, error) {
	o, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return o, nil
}

// FindByIDForUpdate pins the order row for state transitions inside a
// transaction.
func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Order, error) {
	o, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return o, nil
}

func (r *OrderRepository) FindByNumber(ctx context.Context, tx db.DBTX, orderNumber string) (*booking.Order, error) {
	o, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order by number", err)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.OrderStatus) error {
	tag, err := tx.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found for status update")
	}
	return nil
}

func (r *OrderRepository) SetCoordinates(ctx context.Context, tx db.DBTX, id uuid.UUID, lat, lng float64) error {
	_, err := tx.Exec(ctx,
		`UPDATE orders SET latitude = $2, longitude = $3, updated_at = now() WHERE id = $1`,
		id, lat, lng)
	if err != nil {
		return infra.WrapRepoErr("failed to set order coordinates", err)
	}
	return nil
}

// SetSchedulingOutcome writes a scheduling result and the customer-facing
// feedback in one update; success clears any earlier failure reason.
func (r *OrderRepository) SetSchedulingOutcome(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.OrderStatus, feedback string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $2, scheduling_feedback = $3, updated_at = now() WHERE id = $1`,
		id, status, feedback)
	if err != nil {
		return infra.WrapRepoErr("failed to record scheduling outcome", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found for scheduling outcome")
	}
	return nil
}

// ConfirmPayment is a conditional update so duplicate webhook deliveries
// become no-ops instead of double transitions.
func (r *OrderRepository) ConfirmPayment(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.OrderStatus) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET payment_status = 'paid', status = $2, updated_at = now()
		WHERE id = $1 AND payment_status = 'unpaid'`,
		id, status)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm payment", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrderRepository) MarkRefunded(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.OrderStatus) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET payment_status = 'refunded', status = $2, updated_at = now()
		WHERE id = $1 AND payment_status = 'paid'`,
		id, status)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark order refunded", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteStaleUnpaid removes orders that sat unpaid past the cutoff. Orders of
// lock-holding services survive while any candidate slot still holds a live
// lock; repairs never lock and are reclaimed by age alone. Booking slot rows
// go with the order via the FK cascade.
func (r *OrderRepository) DeleteStaleUnpaid(ctx context.Context, tx db.DBTX, before, now time.Time) ([]shared.StaleOrder, error) {
	rows, err := tx.Query(ctx, `
		DELETE FROM orders o
		WHERE o.payment_status = 'unpaid'
		  AND o.status = 'pending'
		  AND o.created_at < $1
		  AND (o.service_kind = 'REPAIR' OR NOT EXISTS (
			SELECT 1 FROM booking_slots bs
			WHERE bs.order_id = o.id
			  AND bs.lock_group_id IS NOT NULL
			  AND bs.lock_expires_at > $2))
		RETURNING o.id, o.order_number, o.user_email, o.service_kind`,
		before, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete stale unpaid orders", err)
	}
	defer rows.Close()

	var stale []shared.StaleOrder
	for rows.Next() {
		var s shared.StaleOrder
		if err := rows.Scan(&s.ID, &s.OrderNumber, &s.UserEmail, &s.ServiceKind); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stale order", err)
		}
		stale = append(stale, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read stale orders", err)
	}
	return stale, nil
}

// ListForDispatch returns repair orders awaiting assignment whose primary
// slot falls inside the horizon, earliest target date first. Previously
// failed orders are picked up again.
func (r *OrderRepository) ListForDispatch(ctx context.Context, tx db.DBTX, from, to time.Time) ([]uuid.UUID, error) {
	rows, err := tx.Query(ctx, `
		SELECT o.id
		FROM orders o
		JOIN booking_slots bs ON bs.order_id = o.id AND bs.is_primary
		WHERE o.service_kind = 'REPAIR'
		  AND o.status IN ('pending_schedule', 'scheduling_failed')
		  AND bs.slot_date >= $1 AND bs.slot_date <= $2
		ORDER BY bs.slot_date, o.created_at`,
		from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders for dispatch", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan dispatch order", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read dispatch orders", err)
	}
	return ids, nil
}
