package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra"
	"coolslate/internal/infra/geocode"
	"coolslate/internal/infra/mail"
	"coolslate/internal/pkg/clock"
	"coolslate/internal/pkg/config"
	"coolslate/internal/pkg/errs"
	"coolslate/internal/pkg/metrics"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSchedulingFailed = errs.New("no capacity available to schedule the order")

// Customer-facing reasons written to the order when scheduling fails.
const (
	feedbackNoLockedSlot = "沒有已鎖定的時段可以排程"
	feedbackNoCapacity   = "所選時段已無可用人力"
	feedbackRescheduleNA = "重新排程的時段已無可用人力"
)

type DispatchResult struct {
	Attempted int
	Succeeded int
	Failed    int
}

type SchedulingCommands interface {
	// ScheduleOrder assigns workers to a paid order by converting one of its
	// still-live provisional locks, preferring the primary slot. Losing
	// candidates give their capacity back.
	ScheduleOrder(ctx context.Context, orderID uuid.UUID) error
	// DispatchDueRepairs walks paid repair orders inside the dispatch
	// horizon, resolving addresses and assigning each to one of its
	// candidate windows. Each order runs in its own transaction.
	DispatchDueRepairs(ctx context.Context, now time.Time) (*DispatchResult, error)
	Reschedule(ctx context.Context, orderID uuid.UUID, date time.Time, startHour int) error
}

type schedulingUseCaseImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.CatalogReads
	geocoder geocode.Geocoder
	area     geocode.ServiceArea
	mailer   mail.Mailer
	clock    clock.Clock
	cfg      config.WorkforceConfig
	jobs     config.JobsConfig
	metrics  *metrics.Metrics
}

func NewSchedulingUseCase(
	uow shared.UnitOfWork,
	catalog shared.CatalogReads,
	geocoder geocode.Geocoder,
	area geocode.ServiceArea,
	mailer mail.Mailer,
	clk clock.Clock,
	cfg config.WorkforceConfig,
	jobs config.JobsConfig,
	m *metrics.Metrics,
) SchedulingCommands {
	return &schedulingUseCaseImpl{
		uow:      uow,
		catalog:  catalog,
		geocoder: geocoder,
		area:     area,
		mailer:   mailer,
		clock:    clk,
		cfg:      cfg,
		jobs:     jobs,
		metrics:  m,
	}
}

func (u *schedulingUseCaseImpl) ScheduleOrder(ctx context.Context, orderID uuid.UUID) error {
	var (
		order  *booking.Order
		window booking.SlotWindow
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		order, err = tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return errs.Mark(err, ErrOrderNotFound)
		}
		if err := order.ValidateSchedule(); err != nil {
			return errs.Mark(err, ErrOrderConflict)
		}

		slots, err := tx.BookingSlots().ListByOrder(ctx, tx.DB(), order.ID)
		if err != nil {
			return err
		}
		window, err = u.scheduleInTx(ctx, tx, order, slots)
		return err
	})
	if errors.Is(err, ErrSchedulingFailed) {
		// The transaction rolled back; record the failure separately so the
		// order surfaces as scheduling_failed instead of silently pending.
		u.markFailed(ctx, orderID, booking.OrderSchedulingFailed, feedbackNoLockedSlot)
		u.metrics.DispatchFailed.Inc()
		return err
	}
	if err != nil {
		return err
	}

	u.metrics.DispatchSucceeded.Inc()
	u.sendScheduledMail(ctx, order, window)
	return nil
}

// scheduleInTx commits one of the order's still-locked candidate windows,
// primary first. Slots whose locks expired are skipped; with no live lock
// left the order cannot be scheduled and no fresh capacity is taken.
func (u *schedulingUseCaseImpl) scheduleInTx(ctx context.Context, tx shared.Tx, order *booking.Order, slots []booking.BookingSlot) (booking.SlotWindow, error) {
	for _, c := range booking.ScheduleCandidates(slots) {
		scheduleID := uuid.New()
		converted, err := tx.Locks().ConvertToSchedule(ctx, tx.DB(), c.LockGroupID.UUID, scheduleID)
		if err != nil {
			return booking.SlotWindow{}, err
		}
		if int(converted) != c.Window.Hours {
			// The group expired under us. Drop any partial conversion and
			// try the next candidate.
			if converted > 0 {
				if _, err := tx.Locks().Release(ctx, tx.DB(), c.LockGroupID.UUID); err != nil {
					return booking.SlotWindow{}, err
				}
			}
			if err := tx.BookingSlots().ClearLock(ctx, tx.DB(), c.ID); err != nil {
				return booking.SlotWindow{}, err
			}
			continue
		}

		sched := &shared.ScheduleRecord{
			ID:          scheduleID,
			OrderID:     order.ID,
			LockGroupID: c.LockGroupID.UUID,
			Date:        c.Window.Date,
			StartHour:   c.Window.StartHour,
			EndHour:     c.Window.EndHour(),
			WorkerCount: groupWorkerCount(ctx, tx, c.LockGroupID.UUID),
			Status:      booking.ScheduleActive,
		}
		if _, err := tx.Schedules().Create(ctx, tx.DB(), sched); err != nil {
			return booking.SlotWindow{}, err
		}
		if err := tx.BookingSlots().MarkSelected(ctx, tx.DB(), c.ID); err != nil {
			return booking.SlotWindow{}, err
		}
		// The capacity now belongs to the schedule, not the slot.
		if err := tx.BookingSlots().ClearLock(ctx, tx.DB(), c.ID); err != nil {
			return booking.SlotWindow{}, err
		}

		for _, other := range slots {
			if other.ID == c.ID || !other.Locked() {
				continue
			}
			if _, err := tx.Locks().Release(ctx, tx.DB(), other.LockGroupID.UUID); err != nil {
				return booking.SlotWindow{}, err
			}
			if err := tx.BookingSlots().ClearLock(ctx, tx.DB(), other.ID); err != nil {
				return booking.SlotWindow{}, err
			}
		}

		if err := tx.Orders().SetSchedulingOutcome(ctx, tx.DB(), order.ID, booking.OrderScheduled, ""); err != nil {
			return booking.SlotWindow{}, err
		}
		return c.Window, nil
	}
	return booking.SlotWindow{}, ErrSchedulingFailed
}

// groupWorkerCount reads the per-hour worker hold of an existing group; the
// rows were written together so the first one is representative.
func groupWorkerCount(ctx context.Context, tx shared.Tx, groupID uuid.UUID) int {
	locks, err := tx.Locks().FindGroup(ctx, tx.DB(), groupID)
	if err != nil || len(locks) == 0 {
		return 1
	}
	return locks[0].WorkerCount
}

func (u *schedulingUseCaseImpl) DispatchDueRepairs(ctx context.Context, now time.Time) (*DispatchResult, error) {
	result := &DispatchResult{}

	st, err := u.catalog.ServiceTypeByName(ctx, booking.ServiceRepair)
	if err != nil {
		return nil, errs.Mark(err, ErrServiceTypeNotFound)
	}

	from := booking.Midnight(now)
	to := from.AddDate(0, 0, u.jobs.DispatchHorizon)

	var ids []uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Orders().ListForDispatch(ctx, tx.DB(), from, to)
		return err
	})
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		result.Attempted++
		if err := u.dispatchOne(ctx, id, st.RequiredWorkers, now); err != nil {
			result.Failed++
			if !errors.Is(err, ErrSchedulingFailed) {
				slog.Error("repair dispatch error", "order_id", id.String(), "error", err.Error())
			}
			continue
		}
		result.Succeeded++
	}

	u.metrics.DispatchSucceeded.Add(float64(result.Succeeded))
	u.metrics.DispatchFailed.Add(float64(result.Failed))
	slog.Info("repair dispatch finished",
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"failed", result.Failed)
	return result, nil
}

// dispatchOne assigns a single repair order inside its own transactions so a
// failing order never blocks the rest of the batch. The address is resolved
// first when the order has no coordinates yet; out-of-area orders fail with
// the measured distance, transient geocoder errors leave the order untouched
// for the next run.
func (u *schedulingUseCaseImpl) dispatchOne(ctx context.Context, orderID uuid.UUID, workerCount int, now time.Time) error {
	var order *booking.Order
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		order, err = tx.Orders().FindByID(ctx, tx.DB(), orderID)
		return err
	})
	if err != nil {
		return errs.Mark(err, ErrOrderNotFound)
	}

	lat, lng := order.Latitude, order.Longitude
	if !order.Geocoded() {
		lat, lng, err = u.geocoder.Geocode(ctx, order.Address)
		if errors.Is(err, geocode.ErrAddressNotFound) {
			u.markFailed(ctx, orderID, booking.OrderSchedulingFailed,
				fmt.Sprintf("地址無法定位：%s", order.Address))
			return errs.Mark(err, ErrSchedulingFailed)
		}
		if err != nil {
			return err
		}
		err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Orders().SetCoordinates(ctx, tx.DB(), orderID, lat, lng)
		})
		if err != nil {
			return err
		}
	}

	if !u.area.Contains(lat, lng) {
		dist := geocode.DistanceKm(u.area.Lat, u.area.Lng, lat, lng)
		u.markFailed(ctx, orderID, booking.OrderSchedulingFailed,
			fmt.Sprintf("服務地址距離服務中心 %.1f 公里，超出 %.0f 公里服務範圍", dist, u.area.RadiusKm))
		return errs.Mark(geocode.ErrOutOfArea, ErrSchedulingFailed)
	}

	var window booking.SlotWindow
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return errs.Mark(err, ErrOrderNotFound)
		}
		if err := locked.ValidateSchedule(); err != nil {
			return errs.Mark(err, ErrOrderConflict)
		}

		slots, err := tx.BookingSlots().ListByOrder(ctx, tx.DB(), orderID)
		if err != nil {
			return err
		}
		for _, c := range booking.DispatchCandidates(slots) {
			scheduleID := uuid.New()
			groupID, err := reserveWindow(ctx, tx, c.Window, workerCount, booking.LockSchedule, scheduleID, u.cfg.TotalWorkers, now, nil)
			if errors.Is(err, ErrSlotUnavailable) {
				continue
			}
			if err != nil {
				return err
			}
			sched := &shared.ScheduleRecord{
				ID:          scheduleID,
				OrderID:     orderID,
				LockGroupID: groupID,
				Date:        c.Window.Date,
				StartHour:   c.Window.StartHour,
				EndHour:     c.Window.EndHour(),
				WorkerCount: workerCount,
				Status:      booking.ScheduleActive,
			}
			if _, err := tx.Schedules().Create(ctx, tx.DB(), sched); err != nil {
				return err
			}
			if err := tx.BookingSlots().MarkSelected(ctx, tx.DB(), c.ID); err != nil {
				return err
			}
			window = c.Window
			return tx.Orders().SetSchedulingOutcome(ctx, tx.DB(), orderID, booking.OrderScheduled, "")
		}
		return ErrSlotUnavailable
	})
	if errors.Is(err, ErrSlotUnavailable) {
		u.markFailed(ctx, orderID, booking.OrderSchedulingFailed, feedbackNoCapacity)
		return errs.Mark(err, ErrSchedulingFailed)
	}
	if err != nil {
		return err
	}

	u.sendScheduledMail(ctx, order, window)
	return nil
}

func (u *schedulingUseCaseImpl) Reschedule(ctx context.Context, orderID uuid.UUID, date time.Time, startHour int) error {
	var (
		order  *booking.Order
		window booking.SlotWindow
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		order, err = tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return errs.Mark(err, ErrOrderNotFound)
		}
		if order.Status != booking.OrderScheduled && order.ValidateSchedule() != nil {
			return ErrOrderConflict
		}

		st, err := u.catalog.ServiceTypeByID(ctx, order.ServiceTypeID)
		if err != nil {
			return errs.Mark(err, ErrServiceTypeNotFound)
		}

		window = booking.NewSlotWindow(date, startHour, st.RequiredHours(order.UnitCount))
		if !booking.IsBookableStartHour(startHour) || !window.FitsBusinessDay() {
			return ErrInvalidTimeSlot
		}

		sched, err := tx.Schedules().FindActiveByOrder(ctx, tx.DB(), order.ID)
		switch {
		case err == nil:
			if err := tx.Schedules().Cancel(ctx, tx.DB(), sched.ID); err != nil {
				return err
			}
			if _, err := tx.Locks().Release(ctx, tx.DB(), sched.LockGroupID); err != nil {
				return err
			}
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		slots, err := tx.BookingSlots().ListByOrder(ctx, tx.DB(), order.ID)
		if err != nil {
			return err
		}
		if err := releaseSlotLocks(ctx, tx, slots); err != nil {
			return err
		}

		slot := booking.SelectedSlot(slots)
		if slot == nil {
			return ErrOrderConflict
		}
		if err := tx.BookingSlots().SetWindow(ctx, tx.DB(), slot.ID, window); err != nil {
			return err
		}
		if !slot.IsSelected {
			if err := tx.BookingSlots().MarkSelected(ctx, tx.DB(), slot.ID); err != nil {
				return err
			}
		}

		scheduleID := uuid.New()
		groupID, err := reserveWindow(ctx, tx, window, st.RequiredWorkers, booking.LockSchedule, scheduleID, u.cfg.TotalWorkers, u.clock.Now(), nil)
		if err != nil {
			return err
		}
		record := &shared.ScheduleRecord{
			ID:          scheduleID,
			OrderID:     order.ID,
			LockGroupID: groupID,
			Date:        window.Date,
			StartHour:   window.StartHour,
			EndHour:     window.EndHour(),
			WorkerCount: st.RequiredWorkers,
			Status:      booking.ScheduleActive,
		}
		if _, err := tx.Schedules().Create(ctx, tx.DB(), record); err != nil {
			return err
		}
		return tx.Orders().SetSchedulingOutcome(ctx, tx.DB(), order.ID, booking.OrderScheduled, "")
	})
	if errors.Is(err, ErrSlotUnavailable) {
		u.markFailed(ctx, orderID, booking.OrderPendingReschedule, feedbackRescheduleNA)
		return errs.Mark(err, ErrSchedulingFailed)
	}
	if err != nil {
		return err
	}

	u.sendScheduledMail(ctx, order, window)
	return nil
}

// markFailed records a scheduling outcome outside the rolled-back
// reservation transaction.
func (u *schedulingUseCaseImpl) markFailed(ctx context.Context, orderID uuid.UUID, status booking.OrderStatus, feedback string) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().SetSchedulingOutcome(ctx, tx.DB(), orderID, status, feedback)
	})
	if err != nil {
		slog.Error("failed to record scheduling failure",
			"order_id", orderID.String(),
			"status", string(status),
			"error", err.Error())
	}
}

func (u *schedulingUseCaseImpl) sendScheduledMail(ctx context.Context, o *booking.Order, w booking.SlotWindow) {
	subject := fmt.Sprintf("訂單 %s 已排定服務時間", o.OrderNumber)
	body := fmt.Sprintf("<p>訂單 %s 已排定服務時間：%s。技師將準時抵達 %s。</p>", o.OrderNumber, w.String(), o.Address)
	if err := u.mailer.Send(ctx, o.UserEmail, subject, body); err != nil {
		slog.Warn("failed to send schedule mail", "order", o.OrderNumber, "error", err.Error())
	}
}
