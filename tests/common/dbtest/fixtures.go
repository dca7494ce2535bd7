//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"coolslate/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ServiceTypeID resolves a seeded service type by name.
func ServiceTypeID(t *testing.T, db DBLike, kind booking.ServiceKind) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM service_types WHERE name = $1", string(kind)).Scan(&id)
	require.NoError(t, err)
	return id
}

// EquipmentIDs returns the ids of the first n seeded equipment items.
func EquipmentIDs(t *testing.T, pool *pgxpool.Pool, n int) []uuid.UUID {
	t.Helper()

	rows, err := pool.Query(context.Background(),
		"SELECT id FROM equipment WHERE active ORDER BY name LIMIT $1", n)
	require.NoError(t, err)
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	require.Len(t, ids, n)
	return ids
}

// SetDayCapacity pins the worker pool for every bookable hour of a day,
// overriding whatever the lazy seeding would write.
func SetDayCapacity(t *testing.T, db DBLike, date time.Time, totalWorkers int) {
	t.Helper()

	ctx := context.Background()
	for hour := booking.DayStartHour; hour <= booking.LastStartHour; hour++ {
		_, err := db.Exec(ctx, `
			INSERT INTO time_slots (slot_date, slot_hour, total_workers)
			VALUES ($1, $2, $3)
			ON CONFLICT (slot_date, slot_hour) DO UPDATE SET total_workers = $3`,
			date, hour, totalWorkers)
		require.NoError(t, err)
	}
}

// CountLockRows counts live lock rows for a group, expired ones excluded.
func CountLockRows(t *testing.T, db DBLike, groupID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM time_slot_locks
		WHERE lock_group_id = $1 AND (expires_at IS NULL OR expires_at > now())`,
		groupID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ExpireOrderLocks backdates an order's provisional locks so the reclaimer
// sees them as expired.
func ExpireOrderLocks(t *testing.T, db DBLike, orderID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		UPDATE time_slot_locks l SET expires_at = now() - interval '1 minute'
		FROM booking_slots bs
		WHERE bs.order_id = $1
		  AND l.lock_group_id = bs.lock_group_id
		  AND l.lock_type = 'booking'`, orderID)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `
		UPDATE booking_slots SET lock_expires_at = now() - interval '1 minute'
		WHERE order_id = $1 AND lock_group_id IS NOT NULL`, orderID)
	require.NoError(t, err)
}

// SeedReferenceData inserts the catalog rows tests depend on. Safe to call
// repeatedly; migrations already seed the same data.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO service_types (name, required_workers, base_duration_hours, additional_duration_hours, booking_advance_months, pricing_type, priority)
		VALUES
		    ('INSTALLATION', 2, 2, 1, 2, 'equipment', 1),
		    ('MAINTENANCE', 1, 1, 1, 1, 'unit_count', 2),
		    ('REPAIR', 1, 2, 0, 1, 'location', 3)
		ON CONFLICT (name) DO NOTHING`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO unit_pricing (service_type_id, base_price, additional_unit_price)
		SELECT id, 1800, 800 FROM service_types WHERE name = 'MAINTENANCE'
		ON CONFLICT (service_type_id) DO NOTHING`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO location_pricing (region, price)
		VALUES ('雙北', 800), ('桃園', 1200), ('基隆', 1500), ('新竹', 1500)
		ON CONFLICT (region) DO NOTHING`)
	if err != nil {
		return err
	}

	var equipmentCount int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM equipment").Scan(&equipmentCount); err != nil {
		return err
	}
	if equipmentCount == 0 {
		_, err = pool.Exec(ctx, `
			INSERT INTO equipment (name, price)
			VALUES
			    ('分離式冷氣 2.8kW', 25000),
			    ('分離式冷氣 4.1kW', 36000),
			    ('窗型冷氣 2.2kW', 15000),
			    ('安裝架', 1500),
			    ('冷媒銅管(每米)', 800)`)
		if err != nil {
			return err
		}
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds the catalog.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
