package shared

import (
	"context"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Orders() OrderRepository
	BookingSlots() BookingSlotRepository
	Slots() SlotRepository
	Locks() LockRepository
	Schedules() ScheduleRepository
	Reports() ReportRepository
	DB() db.DBTX
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *booking.Order) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Order, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Order, error)
	FindByNumber(ctx context.Context, tx db.DBTX, orderNumber string) (*booking.Order, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.OrderStatus) error
	SetCoordinates(ctx context.Context, tx db.DBTX, id uuid.UUID, lat, lng float64) error
	// SetSchedulingOutcome records a dispatch or scheduling result together
	// with the customer-facing feedback line (empty on success).
	SetSchedulingOutcome(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.OrderStatus, feedback string) error
	// ConfirmPayment flips payment_status from unpaid atomically; the returned
	// row count is zero when another notification already won.
	ConfirmPayment(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.OrderStatus) (int64, error)
	MarkRefunded(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.OrderStatus) (int64, error)
	// DeleteStaleUnpaid removes unpaid pending orders created before the
	// cutoff. Lockable orders are only reclaimed once every candidate slot
	// has lost its lock; repairs never hold locks and go by age alone.
	DeleteStaleUnpaid(ctx context.Context, tx db.DBTX, before, now time.Time) ([]StaleOrder, error)
	// ListForDispatch returns IDs of repair orders whose primary slot falls
	// inside the horizon, earliest date first.
	ListForDispatch(ctx context.Context, tx db.DBTX, from, to time.Time) ([]uuid.UUID, error)
}

// StaleOrder carries what the reclaimer needs to notify the customer.
type StaleOrder struct {
	ID          uuid.UUID
	OrderNumber string
	UserEmail   string
	ServiceKind booking.ServiceKind
}

type BookingSlotRepository interface {
	Insert(ctx context.Context, tx db.DBTX, s *booking.BookingSlot) error
	// ListByOrder returns the order's candidate slots, primary first.
	ListByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]booking.BookingSlot, error)
	MarkSelected(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error
	SetWindow(ctx context.Context, tx db.DBTX, slotID uuid.UUID, w booking.SlotWindow) error
	// ClearLock detaches the slot from its lock group once the group is
	// released or converted.
	ClearLock(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error
	// ClearExpiredLockRefs detaches every slot whose provisional lock has
	// expired, so nothing keeps pointing at capacity it lost.
	ClearExpiredLockRefs(ctx context.Context, tx db.DBTX, now time.Time) (int64, error)
}

type SlotRepository interface {
	// EnsureDay seeds the per-hour ledger rows for date so they can be locked.
	EnsureDay(ctx context.Context, tx db.DBTX, date time.Time, totalWorkers int) error
	// LockWindow takes row locks on the covered hours in ascending order,
	// serializing concurrent reservations against the same slots.
	LockWindow(ctx context.Context, tx db.DBTX, w booking.SlotWindow) (map[int]int, error)
	TotalWorkersByHour(ctx context.Context, tx db.DBTX, date time.Time) (map[int]int, error)
}

type LockRepository interface {
	// InsertGroup writes one lock row per covered hour under groupID.
	// A nil expiresAt marks committed schedule locks.
	InsertGroup(ctx context.Context, tx db.DBTX, groupID uuid.UUID, lockType booking.LockType, referenceID uuid.UUID, w booking.SlotWindow, workerCount int, expiresAt *time.Time) error
	// UsageByHour sums held workers per hour, ignoring expired locks.
	UsageByHour(ctx context.Context, tx db.DBTX, date time.Time, startHour, endHour int, now time.Time) (map[int]int, error)
	Release(ctx context.Context, tx db.DBTX, groupID uuid.UUID) (int64, error)
	ConvertToSchedule(ctx context.Context, tx db.DBTX, groupID, scheduleID uuid.UUID) (int64, error)
	FindGroup(ctx context.Context, tx db.DBTX, groupID uuid.UUID) ([]SlotLockRecord, error)
	DeleteExpired(ctx context.Context, tx db.DBTX, now time.Time) (int64, error)
}

type SlotLockRecord struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	LockType    booking.LockType
	ReferenceID uuid.UUID
	Date        time.Time
	Hour        int
	WorkerCount int
	ExpiresAt   *time.Time
}

type ScheduleRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *ScheduleRecord) (uuid.UUID, error)
	FindActiveByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*ScheduleRecord, error)
	Cancel(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ScheduleRecord struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	LockGroupID uuid.UUID
	Date        time.Time
	StartHour   int
	EndHour     int
	WorkerCount int
	Status      booking.ScheduleStatus
	CreatedAt   time.Time
}

type ReportRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *CompletionReport) (uuid.UUID, error)
	FindByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*CompletionReport, error)
}

type CompletionReport struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	FilePath   string
	FileSize   int64
	UploadedAt time.Time
}

// CatalogReads serves immutable reference data outside transactions.
type CatalogReads interface {
	ServiceTypeByID(ctx context.Context, id uuid.UUID) (*booking.ServiceType, error)
	ServiceTypeByName(ctx context.Context, name booking.ServiceKind) (*booking.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]booking.ServiceType, error)
	UnitPricingByServiceType(ctx context.Context, serviceTypeID uuid.UUID) (*booking.UnitPricing, error)
	LocationPricing(ctx context.Context) ([]booking.LocationPricing, error)
	EquipmentByIDs(ctx context.Context, ids []uuid.UUID) ([]booking.EquipmentItem, error)
}
