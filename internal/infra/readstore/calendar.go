package readstore

import (
	"context"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra"
	"coolslate/internal/pkg/clock"
	"coolslate/internal/pkg/config"
	"coolslate/internal/pkg/errs"
	"coolslate/internal/usecase/queries"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CalendarReadStore computes availability views without taking row locks;
// the write path re-checks under FOR UPDATE, so a stale read only costs the
// caller a rejected reservation.
type CalendarReadStore struct {
	pool    *pgxpool.Pool
	catalog shared.CatalogReads
	clock   clock.Clock
	cfg     config.WorkforceConfig
	loc     *time.Location
}

func NewCalendarReadStore(pool *pgxpool.Pool, catalog shared.CatalogReads, clk clock.Clock, cfg config.WorkforceConfig) queries.CalendarQueries {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	return &CalendarReadStore{pool: pool, catalog: catalog, clock: clk, cfg: cfg, loc: loc}
}

// dayLedger holds one day's totals and usage keyed by hour. Hours without a
// ledger row fall back to the configured workforce.
type dayLedger struct {
	totals map[int]int
	usage  map[int]int
	def    int
}

func (l dayLedger) available(hour int) int {
	total, ok := l.totals[hour]
	if !ok {
		total = l.def
	}
	return total - l.usage[hour]
}

// minAvailable is the bottleneck across a window; any fully booked hour makes
// the whole window unavailable.
func (l dayLedger) minAvailable(startHour, hours int) int {
	minAvail := l.available(startHour)
	for h := startHour + 1; h < startHour+hours; h++ {
		if avail := l.available(h); avail < minAvail {
			minAvail = avail
		}
	}
	return minAvail
}

func (s *CalendarReadStore) loadRange(ctx context.Context, from, to time.Time, now time.Time) (map[string]*dayLedger, error) {
	ledgers := make(map[string]*dayLedger)
	ledger := func(date time.Time) *dayLedger {
		key := date.Format("2006-01-02")
		l, ok := ledgers[key]
		if !ok {
			l = &dayLedger{totals: map[int]int{}, usage: map[int]int{}, def: s.cfg.TotalWorkers}
			ledgers[key] = l
		}
		return l
	}

	rows, err := s.pool.Query(ctx, `
		SELECT slot_date, slot_hour, total_workers
		FROM time_slots
		WHERE slot_date >= $1 AND slot_date <= $2`,
		from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read slot totals", err)
	}
	for rows.Next() {
		var date time.Time
		var hour, workers int
		if err := rows.Scan(&date, &hour, &workers); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan slot totals", err)
		}
		ledger(date).totals[hour] = workers
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot totals", err)
	}

	rows, err = s.pool.Query(ctx, `
		SELECT slot_date, slot_hour, COALESCE(SUM(worker_count), 0)
		FROM time_slot_locks
		WHERE slot_date >= $1 AND slot_date <= $2
		  AND (expires_at IS NULL OR expires_at > $3)
		GROUP BY slot_date, slot_hour`,
		from, to, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read slot usage", err)
	}
	for rows.Next() {
		var date time.Time
		var hour, used int
		if err := rows.Scan(&date, &hour, &used); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan slot usage", err)
		}
		ledger(date).usage[hour] = used
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot usage", err)
	}

	return ledgers, nil
}

func (s *CalendarReadStore) Month(ctx context.Context, serviceTypeID uuid.UUID, year, month, unitCount int) (*queries.MonthView, error) {
	if month < 1 || month > 12 {
		return nil, queries.ErrInvalidQueryRange
	}
	st, err := s.catalog.ServiceTypeByID(ctx, serviceTypeID)
	if err != nil {
		return nil, errs.Mark(err, queries.ErrServiceTypeNotFound)
	}

	hours := st.RequiredHours(unitCount)
	now := s.clock.Now().In(s.loc)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	last := first.AddDate(0, 1, -1)

	ledgers, err := s.loadRange(ctx, first, last, now)
	if err != nil {
		return nil, err
	}

	view := &queries.MonthView{Year: year, Month: month}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day := queries.DayAvailability{Date: d.Format("2006-01-02")}
		if st.DateBookable(now, d) {
			day.Bookable = true
			l, ok := ledgers[day.Date]
			if !ok {
				l = &dayLedger{totals: map[int]int{}, usage: map[int]int{}, def: s.cfg.TotalWorkers}
			}
			for _, h := range booking.StartHours() {
				w := booking.NewSlotWindow(d, h, hours)
				if !w.FitsBusinessDay() {
					continue
				}
				if l.minAvailable(h, hours) >= st.RequiredWorkers {
					day.Available = true
					break
				}
			}
		}
		view.Days = append(view.Days, day)
	}
	return view, nil
}

func (s *CalendarReadStore) Day(ctx context.Context, serviceTypeID uuid.UUID, date time.Time, unitCount int) (*queries.DayView, error) {
	st, err := s.catalog.ServiceTypeByID(ctx, serviceTypeID)
	if err != nil {
		return nil, errs.Mark(err, queries.ErrServiceTypeNotFound)
	}

	hours := st.RequiredHours(unitCount)
	now := s.clock.Now().In(s.loc)
	date = booking.Midnight(date.In(s.loc))

	ledgers, err := s.loadRange(ctx, date, date, now)
	if err != nil {
		return nil, err
	}
	l, ok := ledgers[date.Format("2006-01-02")]
	if !ok {
		l = &dayLedger{totals: map[int]int{}, usage: map[int]int{}, def: s.cfg.TotalWorkers}
	}

	bookable := st.DateBookable(now, date)
	view := &queries.DayView{Date: date.Format("2006-01-02"), RequiredHours: hours}
	for _, h := range booking.StartHours() {
		slot := queries.HourAvailability{Hour: h, Label: booking.FormatHour(h)}
		w := booking.NewSlotWindow(date, h, hours)
		if bookable && w.FitsBusinessDay() {
			avail := l.minAvailable(h, hours)
			if avail < 0 {
				avail = 0
			}
			slot.AvailableWorkers = avail
			slot.Feasible = avail >= st.RequiredWorkers
		}
		view.Hours = append(view.Hours, slot)
	}
	return view, nil
}

// MaxUnits walks unit counts upward until the duration no longer fits the
// start hour or the window loses capacity; duration is non-decreasing in
// units, so the first failure is final.
func (s *CalendarReadStore) MaxUnits(ctx context.Context, serviceTypeID uuid.UUID, date time.Time, startHour int) (int, error) {
	st, err := s.catalog.ServiceTypeByID(ctx, serviceTypeID)
	if err != nil {
		return 0, errs.Mark(err, queries.ErrServiceTypeNotFound)
	}
	if !booking.IsBookableStartHour(startHour) {
		return 0, queries.ErrInvalidQueryRange
	}

	now := s.clock.Now().In(s.loc)
	date = booking.Midnight(date.In(s.loc))
	if !st.DateBookable(now, date) {
		return 0, nil
	}

	ledgers, err := s.loadRange(ctx, date, date, now)
	if err != nil {
		return 0, err
	}
	l, ok := ledgers[date.Format("2006-01-02")]
	if !ok {
		l = &dayLedger{totals: map[int]int{}, usage: map[int]int{}, def: s.cfg.TotalWorkers}
	}

	maxUnits := 0
	for units := 1; units <= booking.MaxUnitCount; units++ {
		w := booking.NewSlotWindow(date, startHour, st.RequiredHours(units))
		if !w.FitsBusinessDay() {
			break
		}
		if l.minAvailable(w.StartHour, w.Hours) < st.RequiredWorkers {
			break
		}
		maxUnits = units
	}
	return maxUnits, nil
}
