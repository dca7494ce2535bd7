//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra/db"
	"coolslate/internal/pkg/metrics"
	"coolslate/internal/usecase/shared"
	collabmock "coolslate/tests/mock/collaborators"
	sharedmock "coolslate/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// Registered once for the whole test binary; prometheus rejects duplicates.
var testMetrics = metrics.New("commands-test")

// fixedNow keeps windows and expirations deterministic across the suite.
var fixedNow = time.Date(2026, 5, 6, 13, 0, 0, 0, time.UTC)

// slotDate is the default candidate date used by the fixtures.
var slotDate = time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

type txFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	orders       *sharedmock.MockOrderRepository
	bookingSlots *sharedmock.MockBookingSlotRepository
	slots        *sharedmock.MockSlotRepository
	locks        *sharedmock.MockLockRepository
	schedules    *sharedmock.MockScheduleRepository
	reports      *sharedmock.MockReportRepository
	catalog      *sharedmock.MockCatalogReads
	mailer       *collabmock.MockMailer
	geocoder     *collabmock.MockGeocoder
}

// newTxFixture wires a unit of work whose Within callback runs against the
// mocked repositories, mirroring a committed transaction.
func newTxFixture(t *testing.T, ctrl *gomock.Controller) *txFixture {
	t.Helper()

	f := &txFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		orders:       sharedmock.NewMockOrderRepository(ctrl),
		bookingSlots: sharedmock.NewMockBookingSlotRepository(ctrl),
		slots:        sharedmock.NewMockSlotRepository(ctrl),
		locks:        sharedmock.NewMockLockRepository(ctrl),
		schedules:    sharedmock.NewMockScheduleRepository(ctrl),
		reports:      sharedmock.NewMockReportRepository(ctrl),
		catalog:      sharedmock.NewMockCatalogReads(ctrl),
		mailer:       collabmock.NewMockMailer(ctrl),
		geocoder:     collabmock.NewMockGeocoder(ctrl),
	}

	f.tx.EXPECT().Orders().Return(f.orders).AnyTimes()
	f.tx.EXPECT().BookingSlots().Return(f.bookingSlots).AnyTimes()
	f.tx.EXPECT().Slots().Return(f.slots).AnyTimes()
	f.tx.EXPECT().Locks().Return(f.locks).AnyTimes()
	f.tx.EXPECT().Schedules().Return(f.schedules).AnyTimes()
	f.tx.EXPECT().Reports().Return(f.reports).AnyTimes()
	f.tx.EXPECT().DB().Return(db.DBTX(nil)).AnyTimes()

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func maintenanceServiceType() *booking.ServiceType {
	return &booking.ServiceType{
		ID:                      uuid.New(),
		Name:                    booking.ServiceMaintenance,
		RequiredWorkers:         1,
		BaseDurationHours:       1,
		AdditionalDurationHours: 1,
		BookingAdvanceMonths:    1,
		PricingType:             booking.PricingUnitCount,
	}
}

func repairServiceType() *booking.ServiceType {
	return &booking.ServiceType{
		ID:                   uuid.New(),
		Name:                 booking.ServiceRepair,
		RequiredWorkers:      1,
		BaseDurationHours:    2,
		BookingAdvanceMonths: 1,
		PricingType:          booking.PricingLocation,
	}
}

func scheduleRecordFor(o *booking.Order, w booking.SlotWindow, groupID uuid.UUID) *shared.ScheduleRecord {
	return &shared.ScheduleRecord{
		ID:          uuid.New(),
		OrderID:     o.ID,
		LockGroupID: groupID,
		Date:        w.Date,
		StartHour:   w.StartHour,
		EndHour:     w.EndHour(),
		WorkerCount: 1,
		Status:      booking.ScheduleActive,
	}
}

func pendingScheduleOrder(st *booking.ServiceType) *booking.Order {
	return &booking.Order{
		ID:            uuid.New(),
		OrderNumber:   booking.NewOrderNumber(fixedNow),
		UserID:        uuid.New(),
		UserEmail:     "customer@example.com",
		ServiceTypeID: st.ID,
		ServiceKind:   st.Name,
		Status:        booking.OrderPendingSchedule,
		PaymentStatus: booking.PaymentPaid,
		TotalAmount:   1800,
		UnitCount:     1,
		Address:       "台北市中山區南京東路一段1號",
	}
}

// slotFor builds an unlocked candidate slot on the order.
func slotFor(o *booking.Order, w booking.SlotWindow, primary bool) booking.BookingSlot {
	return booking.BookingSlot{
		ID:           uuid.New(),
		OrderID:      o.ID,
		Window:       w,
		ContactName:  "王小明",
		ContactPhone: "0912345678",
		IsPrimary:    primary,
	}
}

// lockedSlotFor builds a candidate slot still holding a provisional lock.
func lockedSlotFor(o *booking.Order, w booking.SlotWindow, primary bool, groupID uuid.UUID) booking.BookingSlot {
	s := slotFor(o, w, primary)
	s.LockGroupID = uuid.NullUUID{UUID: groupID, Valid: true}
	expiry := fixedNow.Add(30 * time.Minute)
	s.LockExpiresAt = &expiry
	return s
}
