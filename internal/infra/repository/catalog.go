package repository

import (
	"context"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogReadStore serves service catalog reference data straight off the
// pool; the tables are effectively immutable at runtime.
type CatalogReadStore struct {
	pool *pgxpool.Pool
}

func NewCatalogReadStore(pool *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{pool: pool}
}

const serviceTypeColumns = `id, name, required_workers, base_duration_hours,
	additional_duration_hours, booking_advance_months, pricing_type, priority`

func scanServiceType(row pgx.Row) (*booking.ServiceType, error) {
	var st booking.ServiceType
	err := row.Scan(
		&st.ID, &st.Name, &st.RequiredWorkers, &st.BaseDurationHours,
		&st.AdditionalDurationHours, &st.BookingAdvanceMonths, &st.PricingType, &st.Priority,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *CatalogReadStore) ServiceTypeByID(ctx context.Context, id uuid.UUID) (*booking.ServiceType, error) {
	st, err := scanServiceType(s.pool.QueryRow(ctx, `SELECT `+serviceTypeColumns+` FROM service_types WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service type", err)
	}
	return st, nil
}

func (s *CatalogReadStore) ServiceTypeByName(ctx context.Context, name booking.ServiceKind) (*booking.ServiceType, error) {
	st, err := scanServiceType(s.pool.QueryRow(ctx, `SELECT `+serviceTypeColumns+` FROM service_types WHERE name = $1`, name))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service type by name", err)
	}
	return st, nil
}

func (s *CatalogReadStore) ListServiceTypes(ctx context.Context) ([]booking.ServiceType, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+serviceTypeColumns+` FROM service_types ORDER BY priority`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service types", err)
	}
	defer rows.Close()

	var types []booking.ServiceType
	for rows.Next() {
		st, err := scanServiceType(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service type", err)
		}
		types = append(types, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service types", err)
	}
	return types, nil
}

func (s *CatalogReadStore) UnitPricingByServiceType(ctx context.Context, serviceTypeID uuid.UUID) (*booking.UnitPricing, error) {
	var p booking.UnitPricing
	err := s.pool.QueryRow(ctx, `
		SELECT id, base_price, additional_unit_price
		FROM unit_pricing WHERE service_type_id = $1`,
		serviceTypeID,
	).Scan(&p.ID, &p.BasePrice, &p.AdditionalUnit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find unit pricing", err)
	}
	return &p, nil
}

func (s *CatalogReadStore) LocationPricing(ctx context.Context) ([]booking.LocationPricing, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, region, price FROM location_pricing`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list location pricing", err)
	}
	defer rows.Close()

	var regions []booking.LocationPricing
	for rows.Next() {
		var lp booking.LocationPricing
		if err := rows.Scan(&lp.ID, &lp.Region, &lp.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan location pricing", err)
		}
		regions = append(regions, lp)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read location pricing", err)
	}
	return regions, nil
}

func (s *CatalogReadStore) EquipmentByIDs(ctx context.Context, ids []uuid.UUID) ([]booking.EquipmentItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, price FROM equipment WHERE id = ANY($1) AND active`,
		ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	defer rows.Close()

	var items []booking.EquipmentItem
	for rows.Next() {
		var it booking.EquipmentItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read equipment", err)
	}
	return items, nil
}
