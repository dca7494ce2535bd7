package booking

import (
	"time"

	"github.com/google/uuid"
)

// BookingSlot is one candidate service window on an order. Customers may
// propose up to MaxBookingSlots; exactly one is primary, and scheduling marks
// the window it commits as selected. Lockable services hold a provisional
// lock group per slot until payment or expiry.
type BookingSlot struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	Window        SlotWindow
	ContactName   string
	ContactPhone  string
	IsPrimary     bool
	IsSelected    bool
	LockGroupID   uuid.NullUUID
	LockExpiresAt *time.Time
	CreatedAt     time.Time
}

// Locked reports whether the slot still holds a provisional lock group.
func (s BookingSlot) Locked() bool {
	return s.LockGroupID.Valid
}

// ScheduleCandidates returns the slots still holding a live lock, primary
// first, so scheduling prefers the customer's first choice.
func ScheduleCandidates(slots []BookingSlot) []BookingSlot {
	out := make([]BookingSlot, 0, len(slots))
	for _, s := range slots {
		if s.IsPrimary && s.Locked() {
			out = append(out, s)
		}
	}
	for _, s := range slots {
		if !s.IsPrimary && s.Locked() {
			out = append(out, s)
		}
	}
	return out
}

// DispatchCandidates orders all slots primary first, for services that carry
// no provisional locks and are assigned by the daily dispatch.
func DispatchCandidates(slots []BookingSlot) []BookingSlot {
	out := make([]BookingSlot, 0, len(slots))
	for _, s := range slots {
		if s.IsPrimary {
			out = append(out, s)
		}
	}
	for _, s := range slots {
		if !s.IsPrimary {
			out = append(out, s)
		}
	}
	return out
}

// PrimarySlot returns the primary slot, falling back to the first one.
func PrimarySlot(slots []BookingSlot) *BookingSlot {
	for i := range slots {
		if slots[i].IsPrimary {
			return &slots[i]
		}
	}
	if len(slots) > 0 {
		return &slots[0]
	}
	return nil
}

// SelectedSlot returns the committed slot if scheduling already picked one,
// otherwise the primary.
func SelectedSlot(slots []BookingSlot) *BookingSlot {
	for i := range slots {
		if slots[i].IsSelected {
			return &slots[i]
		}
	}
	return PrimarySlot(slots)
}
