package request

import (
	"strings"

	"github.com/google/uuid"
)

type EquipmentSelection struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

// BookingSlotRequest is one candidate service window. The first entry in the
// order's list becomes the primary slot.
type BookingSlotRequest struct {
	SlotDate     string `json:"slot_date" binding:"required"` // YYYY-MM-DD
	StartHour    int    `json:"start_hour" binding:"required,min=0,max=23"`
	ContactName  string `json:"contact_name" binding:"required"`
	ContactPhone string `json:"contact_phone" binding:"required"`
}

type CreateOrderRequest struct {
	ServiceTypeID uuid.UUID            `json:"service_type_id" binding:"required"`
	BookingSlots  []BookingSlotRequest `json:"booking_slots" binding:"required,min=1,dive"`
	UnitCount     int                  `json:"unit_count" binding:"required,min=1"`
	Address       string               `json:"address" binding:"required"`
	Equipment     []EquipmentSelection `json:"equipment,omitempty"`
	Note          *string              `json:"note,omitempty"`
}

func (r CreateOrderRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type RescheduleOrderRequest struct {
	SlotDate  string `json:"slot_date" binding:"required"`
	StartHour int    `json:"start_hour" binding:"required,min=0,max=23"`
}
