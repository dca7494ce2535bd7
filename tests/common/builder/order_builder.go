//go:build unit || e2e

package builder

import (
	"time"

	reqdto "coolslate/internal/handler/dto/request"

	"github.com/google/uuid"
)

// OrderBuilder assembles CreateOrderRequest payloads with sensible defaults:
// a maintenance visit in central Taipei, two weeks out, starting at 10:00,
// with one candidate slot.
type OrderBuilder struct {
	ServiceTypeID uuid.UUID
	Slots         []reqdto.BookingSlotRequest
	UnitCount     int
	Address       string
	Equipment     []reqdto.EquipmentSelection
	Note          string
}

func NewOrderBuilder(serviceTypeID uuid.UUID) *OrderBuilder {
	return &OrderBuilder{
		ServiceTypeID: serviceTypeID,
		Slots: []reqdto.BookingSlotRequest{{
			SlotDate:     time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
			StartHour:    10,
			ContactName:  "王小明",
			ContactPhone: "0912345678",
		}},
		UnitCount: 1,
		Address:   "台北市大安區和平東路二段106號",
	}
}

// WithDate moves the primary slot to date.
func (b *OrderBuilder) WithDate(date time.Time) *OrderBuilder {
	b.Slots[0].SlotDate = date.Format("2006-01-02")
	return b
}

// WithStartHour moves the primary slot to hour.
func (b *OrderBuilder) WithStartHour(hour int) *OrderBuilder {
	b.Slots[0].StartHour = hour
	return b
}

// WithSecondSlot appends a second candidate window.
func (b *OrderBuilder) WithSecondSlot(date time.Time, hour int) *OrderBuilder {
	b.Slots = append(b.Slots[:1], reqdto.BookingSlotRequest{
		SlotDate:     date.Format("2006-01-02"),
		StartHour:    hour,
		ContactName:  b.Slots[0].ContactName,
		ContactPhone: b.Slots[0].ContactPhone,
	})
	return b
}

func (b *OrderBuilder) WithContact(name, phone string) *OrderBuilder {
	for i := range b.Slots {
		b.Slots[i].ContactName = name
		b.Slots[i].ContactPhone = phone
	}
	return b
}

func (b *OrderBuilder) WithUnitCount(n int) *OrderBuilder {
	b.UnitCount = n
	return b
}

func (b *OrderBuilder) WithAddress(address string) *OrderBuilder {
	b.Address = address
	return b
}

func (b *OrderBuilder) WithEquipment(ids ...uuid.UUID) *OrderBuilder {
	b.Equipment = b.Equipment[:0]
	for _, id := range ids {
		b.Equipment = append(b.Equipment, reqdto.EquipmentSelection{EquipmentID: id, Quantity: 1})
	}
	return b
}

func (b *OrderBuilder) WithNote(note string) *OrderBuilder {
	b.Note = note
	return b
}

func (b *OrderBuilder) BuildRequest() reqdto.CreateOrderRequest {
	note := b.Note
	slots := make([]reqdto.BookingSlotRequest, len(b.Slots))
	copy(slots, b.Slots)
	return reqdto.CreateOrderRequest{
		ServiceTypeID: b.ServiceTypeID,
		BookingSlots:  slots,
		UnitCount:     b.UnitCount,
		Address:       b.Address,
		Equipment:     b.Equipment,
		Note:          &note,
	}
}
