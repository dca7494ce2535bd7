package booking

// ServiceKind identifies a service offering in the catalog.
type ServiceKind string

const (
	ServiceInstallation ServiceKind = "INSTALLATION"
	ServiceMaintenance  ServiceKind = "MAINTENANCE"
	ServiceRepair       ServiceKind = "REPAIR"
)

// RequiresPreLock reports whether orders of this kind reserve provisional
// capacity at creation time. Repair orders are dispatched by the daily batch
// against live capacity instead.
func (k ServiceKind) RequiresPreLock() bool {
	return k == ServiceInstallation || k == ServiceMaintenance
}

func (k ServiceKind) Valid() bool {
	switch k {
	case ServiceInstallation, ServiceMaintenance, ServiceRepair:
		return true
	}
	return false
}

type PricingType string

const (
	PricingEquipment PricingType = "equipment"
	PricingUnitCount PricingType = "unit_count"
	PricingLocation  PricingType = "location"
)

type OrderStatus string

const (
	OrderPending           OrderStatus = "pending"
	OrderPaid              OrderStatus = "paid"
	OrderPendingSchedule   OrderStatus = "pending_schedule"
	OrderScheduled         OrderStatus = "scheduled"
	OrderCompleted         OrderStatus = "completed"
	OrderCancelled         OrderStatus = "cancelled"
	OrderPrecancel         OrderStatus = "precancel"
	OrderSchedulingFailed  OrderStatus = "scheduling_failed"
	OrderPendingReschedule OrderStatus = "pending_reschedule"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type LockType string

const (
	LockBooking  LockType = "booking"
	LockSchedule LockType = "schedule"
)

type ScheduleStatus string

const (
	ScheduleActive    ScheduleStatus = "scheduled"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// Working-day grid. Slots start on the hour; the whole service window must
// finish by DayEndHour.
const (
	DayStartHour    = 8
	LastStartHour   = 16
	DayEndHour      = 17
	MaxServiceHours = 8
	MaxBookingSlots = 2
	MaxUnitCount    = 8
)

// IsBookableStartHour reports whether h is on the 08:00-16:00 start grid.
func IsBookableStartHour(h int) bool {
	return h >= DayStartHour && h <= LastStartHour
}

// StartHours returns the bookable start-hour grid in order.
func StartHours() []int {
	hours := make([]int, 0, LastStartHour-DayStartHour+1)
	for h := DayStartHour; h <= LastStartHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
