//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra"
	"coolslate/internal/infra/geocode"
	"coolslate/internal/pkg/clock"
	"coolslate/internal/pkg/config"
	"coolslate/internal/usecase/commands"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSchedulingUseCase(f *txFixture) commands.SchedulingCommands {
	cfg := config.WorkforceConfig{
		TotalWorkers:  4,
		LockTTL:       30 * time.Minute,
		ServiceLat:    taipeiLat,
		ServiceLng:    taipeiLng,
		ServiceRadius: 15,
		TimeZone:      "UTC",
	}
	return commands.NewSchedulingUseCase(
		f.uow, f.catalog, f.geocoder, geocode.NewServiceArea(cfg),
		f.mailer, clock.NewMockClock(fixedNow), cfg,
		config.JobsConfig{DispatchHorizon: 14, UnpaidOrderMaxAge: 30 * time.Minute},
		testMetrics,
	)
}

func fullCapacity(w booking.SlotWindow, workers int) map[int]int {
	totals := make(map[int]int, w.Hours)
	for _, h := range w.HourSlots() {
		totals[h] = workers
	}
	return totals
}

// expectReservation wires the capacity checks for one window; an empty usage
// map lets the reservation go through to a fresh lock group.
func expectReservation(ctx context.Context, f *txFixture, w booking.SlotWindow, usage map[int]int, lockType booking.LockType, workers int) {
	f.slots.EXPECT().EnsureDay(ctx, gomock.Any(), w.Date, 4).Return(nil)
	f.slots.EXPECT().LockWindow(ctx, gomock.Any(), w).Return(fullCapacity(w, 4), nil)
	f.locks.EXPECT().UsageByHour(ctx, gomock.Any(), w.Date, w.StartHour, w.EndHour(), fixedNow).
		Return(usage, nil)
	if len(usage) == 0 {
		f.locks.EXPECT().InsertGroup(ctx, gomock.Any(), gomock.Any(), lockType, gomock.Any(), w, workers, gomock.Nil()).
			Return(nil)
	}
}

func TestScheduleOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("live primary lock converts in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := maintenanceServiceType()
		order := pendingScheduleOrder(st)
		groupID := uuid.New()
		w := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		slot := lockedSlotFor(order, w, true, groupID)

		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{slot}, nil)
		f.locks.EXPECT().ConvertToSchedule(ctx, gomock.Any(), groupID, gomock.Any()).
			Return(int64(w.Hours), nil)
		f.locks.EXPECT().FindGroup(ctx, gomock.Any(), groupID).
			Return([]shared.SlotLockRecord{{GroupID: groupID, WorkerCount: 1}}, nil)
		f.schedules.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, rec *shared.ScheduleRecord) (uuid.UUID, error) {
				assert.Equal(t, order.ID, rec.OrderID)
				assert.Equal(t, groupID, rec.LockGroupID)
				assert.Equal(t, w.StartHour, rec.StartHour)
				assert.Equal(t, w.EndHour(), rec.EndHour)
				assert.Equal(t, booking.ScheduleActive, rec.Status)
				return rec.ID, nil
			})
		f.bookingSlots.EXPECT().MarkSelected(ctx, gomock.Any(), slot.ID).Return(nil)
		f.bookingSlots.EXPECT().ClearLock(ctx, gomock.Any(), slot.ID).Return(nil)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID, booking.OrderScheduled, "").Return(nil)

		require.NoError(t, newSchedulingUseCase(f).ScheduleOrder(ctx, order.ID))
	})

	t.Run("expired primary falls back to the second candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := maintenanceServiceType()
		order := pendingScheduleOrder(st)
		g1, g2 := uuid.New(), uuid.New()
		w1 := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		w2 := booking.NewSlotWindow(slotDate.AddDate(0, 0, 1), 14, st.RequiredHours(1))
		s1 := lockedSlotFor(order, w1, true, g1)
		s2 := lockedSlotFor(order, w2, false, g2)

		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{s1, s2}, nil)

		f.locks.EXPECT().ConvertToSchedule(ctx, gomock.Any(), g1, gomock.Any()).Return(int64(0), nil)
		f.locks.EXPECT().ConvertToSchedule(ctx, gomock.Any(), g2, gomock.Any()).
			Return(int64(w2.Hours), nil)
		f.locks.EXPECT().FindGroup(ctx, gomock.Any(), g2).
			Return([]shared.SlotLockRecord{{GroupID: g2, WorkerCount: 1}}, nil)
		f.schedules.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, rec *shared.ScheduleRecord) (uuid.UUID, error) {
				assert.Equal(t, g2, rec.LockGroupID)
				assert.Equal(t, w2.StartHour, rec.StartHour)
				return rec.ID, nil
			})
		f.bookingSlots.EXPECT().MarkSelected(ctx, gomock.Any(), s2.ID).Return(nil)
		f.bookingSlots.EXPECT().ClearLock(ctx, gomock.Any(), s2.ID).Return(nil)
		// The dead primary is detached when its conversion comes up empty and
		// released again as a losing candidate.
		f.bookingSlots.EXPECT().ClearLock(ctx, gomock.Any(), s1.ID).Return(nil).Times(2)
		f.locks.EXPECT().Release(ctx, gomock.Any(), g1).Return(int64(0), nil)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID, booking.OrderScheduled, "").Return(nil)

		require.NoError(t, newSchedulingUseCase(f).ScheduleOrder(ctx, order.ID))
	})

	t.Run("order whose locks all expired fails without taking fresh capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := maintenanceServiceType()
		order := pendingScheduleOrder(st)
		groupID := uuid.New()
		w := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		slot := lockedSlotFor(order, w, true, groupID)

		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{slot}, nil)
		f.locks.EXPECT().ConvertToSchedule(ctx, gomock.Any(), groupID, gomock.Any()).Return(int64(0), nil)
		f.bookingSlots.EXPECT().ClearLock(ctx, gomock.Any(), slot.ID).Return(nil)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID,
			booking.OrderSchedulingFailed, "沒有已鎖定的時段可以排程").Return(nil)

		err := newSchedulingUseCase(f).ScheduleOrder(ctx, order.ID)
		assert.ErrorIs(t, err, commands.ErrSchedulingFailed)
	})

	t.Run("already scheduled order conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := maintenanceServiceType()
		order := pendingScheduleOrder(st)
		order.Status = booking.OrderScheduled

		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)

		err := newSchedulingUseCase(f).ScheduleOrder(ctx, order.ID)
		assert.ErrorIs(t, err, commands.ErrOrderConflict)
	})
}

func TestDispatchDueRepairs(t *testing.T) {
	ctx := context.Background()
	from := booking.Midnight(fixedNow)
	to := from.AddDate(0, 0, 14)

	t.Run("due repair is assigned its primary window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := repairServiceType()
		order := pendingScheduleOrder(st)
		order.Latitude, order.Longitude = taipeiLat, taipeiLng
		w := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		slot := slotFor(order, w, true)

		f.catalog.EXPECT().ServiceTypeByName(ctx, booking.ServiceRepair).Return(st, nil)
		f.orders.EXPECT().ListForDispatch(ctx, gomock.Any(), from, to).
			Return([]uuid.UUID{order.ID}, nil)
		f.orders.EXPECT().FindByID(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{slot}, nil)
		expectReservation(ctx, f, w, map[int]int{}, booking.LockSchedule, st.RequiredWorkers)
		f.schedules.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, rec *shared.ScheduleRecord) (uuid.UUID, error) {
				assert.Equal(t, order.ID, rec.OrderID)
				assert.Equal(t, w.StartHour, rec.StartHour)
				assert.Equal(t, st.RequiredWorkers, rec.WorkerCount)
				return rec.ID, nil
			})
		f.bookingSlots.EXPECT().MarkSelected(ctx, gomock.Any(), slot.ID).Return(nil)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID, booking.OrderScheduled, "").Return(nil)

		result, err := newSchedulingUseCase(f).DispatchDueRepairs(ctx, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Attempted)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("unresolved address is geocoded before assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := repairServiceType()
		order := pendingScheduleOrder(st)
		w := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		slot := slotFor(order, w, true)

		f.catalog.EXPECT().ServiceTypeByName(ctx, booking.ServiceRepair).Return(st, nil)
		f.orders.EXPECT().ListForDispatch(ctx, gomock.Any(), from, to).
			Return([]uuid.UUID{order.ID}, nil)
		f.orders.EXPECT().FindByID(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.geocoder.EXPECT().Geocode(ctx, order.Address).Return(taipeiLat, taipeiLng, nil)
		f.orders.EXPECT().SetCoordinates(ctx, gomock.Any(), order.ID, taipeiLat, taipeiLng).Return(nil)
		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{slot}, nil)
		expectReservation(ctx, f, w, map[int]int{}, booking.LockSchedule, st.RequiredWorkers)
		f.schedules.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, rec *shared.ScheduleRecord) (uuid.UUID, error) { return rec.ID, nil })
		f.bookingSlots.EXPECT().MarkSelected(ctx, gomock.Any(), slot.ID).Return(nil)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID, booking.OrderScheduled, "").Return(nil)

		result, err := newSchedulingUseCase(f).DispatchDueRepairs(ctx, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Succeeded)
	})

	t.Run("address beyond the service radius fails with the measured distance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := repairServiceType()
		order := pendingScheduleOrder(st)
		order.Address = "花蓮縣花蓮市中山路1號"

		f.catalog.EXPECT().ServiceTypeByName(ctx, booking.ServiceRepair).Return(st, nil)
		f.orders.EXPECT().ListForDispatch(ctx, gomock.Any(), from, to).
			Return([]uuid.UUID{order.ID}, nil)
		f.orders.EXPECT().FindByID(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.geocoder.EXPECT().Geocode(ctx, order.Address).Return(23.9872, 121.6011, nil)
		f.orders.EXPECT().SetCoordinates(ctx, gomock.Any(), order.ID, 23.9872, 121.6011).Return(nil)

		var feedback string
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID, booking.OrderSchedulingFailed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, _ booking.OrderStatus, fb string) error {
				feedback = fb
				return nil
			})

		result, err := newSchedulingUseCase(f).DispatchDueRepairs(ctx, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 0, result.Succeeded)
		assert.Contains(t, feedback, "公里")
	})

	t.Run("full primary window falls back to the second candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := repairServiceType()
		order := pendingScheduleOrder(st)
		order.Latitude, order.Longitude = taipeiLat, taipeiLng
		w1 := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		w2 := booking.NewSlotWindow(slotDate.AddDate(0, 0, 2), 8, st.RequiredHours(1))
		s1 := slotFor(order, w1, true)
		s2 := slotFor(order, w2, false)

		f.catalog.EXPECT().ServiceTypeByName(ctx, booking.ServiceRepair).Return(st, nil)
		f.orders.EXPECT().ListForDispatch(ctx, gomock.Any(), from, to).
			Return([]uuid.UUID{order.ID}, nil)
		f.orders.EXPECT().FindByID(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{s1, s2}, nil)
		expectReservation(ctx, f, w1, fullCapacity(w1, 4), booking.LockSchedule, st.RequiredWorkers)
		expectReservation(ctx, f, w2, map[int]int{}, booking.LockSchedule, st.RequiredWorkers)
		f.schedules.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, rec *shared.ScheduleRecord) (uuid.UUID, error) {
				assert.Equal(t, w2.StartHour, rec.StartHour)
				return rec.ID, nil
			})
		f.bookingSlots.EXPECT().MarkSelected(ctx, gomock.Any(), s2.ID).Return(nil)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID, booking.OrderScheduled, "").Return(nil)

		result, err := newSchedulingUseCase(f).DispatchDueRepairs(ctx, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Succeeded)
	})

	t.Run("every candidate full leaves capacity feedback on the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := repairServiceType()
		order := pendingScheduleOrder(st)
		order.Latitude, order.Longitude = taipeiLat, taipeiLng
		w := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		slot := slotFor(order, w, true)

		f.catalog.EXPECT().ServiceTypeByName(ctx, booking.ServiceRepair).Return(st, nil)
		f.orders.EXPECT().ListForDispatch(ctx, gomock.Any(), from, to).
			Return([]uuid.UUID{order.ID}, nil)
		f.orders.EXPECT().FindByID(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{slot}, nil)
		expectReservation(ctx, f, w, fullCapacity(w, 4), booking.LockSchedule, st.RequiredWorkers)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID,
			booking.OrderSchedulingFailed, "所選時段已無可用人力").Return(nil)

		result, err := newSchedulingUseCase(f).DispatchDueRepairs(ctx, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("one failing order never blocks the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := repairServiceType()
		broken := uuid.New()
		order := pendingScheduleOrder(st)
		order.Latitude, order.Longitude = taipeiLat, taipeiLng
		w := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		slot := slotFor(order, w, true)

		f.catalog.EXPECT().ServiceTypeByName(ctx, booking.ServiceRepair).Return(st, nil)
		f.orders.EXPECT().ListForDispatch(ctx, gomock.Any(), from, to).
			Return([]uuid.UUID{broken, order.ID}, nil)

		f.orders.EXPECT().FindByID(ctx, gomock.Any(), broken).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "connection reset"))

		f.orders.EXPECT().FindByID(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{slot}, nil)
		expectReservation(ctx, f, w, map[int]int{}, booking.LockSchedule, st.RequiredWorkers)
		f.schedules.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, rec *shared.ScheduleRecord) (uuid.UUID, error) { return rec.ID, nil })
		f.bookingSlots.EXPECT().MarkSelected(ctx, gomock.Any(), slot.ID).Return(nil)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID, booking.OrderScheduled, "").Return(nil)

		result, err := newSchedulingUseCase(f).DispatchDueRepairs(ctx, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Attempted)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("moves a scheduled order to a free window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := maintenanceServiceType()
		order := pendingScheduleOrder(st)
		order.Status = booking.OrderScheduled

		oldW := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		schedGroup := uuid.New()
		sched := scheduleRecordFor(order, oldW, schedGroup)

		newDate := slotDate.AddDate(0, 0, 1)
		newWindow := booking.NewSlotWindow(newDate, 9, st.RequiredHours(1))

		slot := slotFor(order, oldW, true)
		slot.IsSelected = true

		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.catalog.EXPECT().ServiceTypeByID(ctx, order.ServiceTypeID).Return(st, nil)
		f.schedules.EXPECT().FindActiveByOrder(ctx, gomock.Any(), order.ID).Return(sched, nil)
		f.schedules.EXPECT().Cancel(ctx, gomock.Any(), sched.ID).Return(nil)
		f.locks.EXPECT().Release(ctx, gomock.Any(), schedGroup).Return(int64(1), nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{slot}, nil)
		f.bookingSlots.EXPECT().SetWindow(ctx, gomock.Any(), slot.ID, newWindow).Return(nil)
		expectReservation(ctx, f, newWindow, map[int]int{}, booking.LockSchedule, st.RequiredWorkers)
		f.schedules.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, rec *shared.ScheduleRecord) (uuid.UUID, error) {
				assert.Equal(t, newWindow.StartHour, rec.StartHour)
				assert.Equal(t, newWindow.EndHour(), rec.EndHour)
				return rec.ID, nil
			})
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID, booking.OrderScheduled, "").Return(nil)

		require.NoError(t, newSchedulingUseCase(f).Reschedule(ctx, order.ID, newDate, 9))
	})

	t.Run("full target window leaves the order pending reschedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := maintenanceServiceType()
		order := pendingScheduleOrder(st)
		order.Status = booking.OrderScheduled

		oldW := booking.NewSlotWindow(slotDate, 10, st.RequiredHours(1))
		schedGroup := uuid.New()
		sched := scheduleRecordFor(order, oldW, schedGroup)

		newDate := slotDate.AddDate(0, 0, 1)
		newWindow := booking.NewSlotWindow(newDate, 9, st.RequiredHours(1))

		slot := slotFor(order, oldW, true)
		slot.IsSelected = true

		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.catalog.EXPECT().ServiceTypeByID(ctx, order.ServiceTypeID).Return(st, nil)
		f.schedules.EXPECT().FindActiveByOrder(ctx, gomock.Any(), order.ID).Return(sched, nil)
		f.schedules.EXPECT().Cancel(ctx, gomock.Any(), sched.ID).Return(nil)
		f.locks.EXPECT().Release(ctx, gomock.Any(), schedGroup).Return(int64(1), nil)
		f.bookingSlots.EXPECT().ListByOrder(ctx, gomock.Any(), order.ID).
			Return([]booking.BookingSlot{slot}, nil)
		f.bookingSlots.EXPECT().SetWindow(ctx, gomock.Any(), slot.ID, newWindow).Return(nil)
		expectReservation(ctx, f, newWindow, fullCapacity(newWindow, 4), booking.LockSchedule, st.RequiredWorkers)
		f.orders.EXPECT().SetSchedulingOutcome(ctx, gomock.Any(), order.ID,
			booking.OrderPendingReschedule, "重新排程的時段已無可用人力").Return(nil)

		err := newSchedulingUseCase(f).Reschedule(ctx, order.ID, newDate, 9)
		assert.ErrorIs(t, err, commands.ErrSchedulingFailed)
	})

	t.Run("rejects a start hour outside business hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(t, ctrl)

		st := maintenanceServiceType()
		order := pendingScheduleOrder(st)
		order.Status = booking.OrderScheduled

		f.orders.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), order.ID).Return(order, nil)
		f.catalog.EXPECT().ServiceTypeByID(ctx, order.ServiceTypeID).Return(st, nil)

		err := newSchedulingUseCase(f).Reschedule(ctx, order.ID, slotDate, 7)
		assert.ErrorIs(t, err, commands.ErrInvalidTimeSlot)
	})
}
