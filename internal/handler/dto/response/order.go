package response

import (
	"time"

	"coolslate/internal/usecase/commands"
	"coolslate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreatedSlotResponse struct {
	SlotDate  string `json:"slot_date"`
	StartHour int    `json:"start_hour"`
	IsPrimary bool   `json:"is_primary"`
	IsLocked  bool   `json:"is_locked"`
}

type CreateOrderResponse struct {
	OrderID      uuid.UUID             `json:"order_id"`
	OrderNumber  string                `json:"order_number"`
	TotalAmount  int                   `json:"total_amount"`
	Status       string                `json:"status"`
	LockedUntil  *time.Time            `json:"locked_until,omitempty"`
	BookingSlots []CreatedSlotResponse `json:"booking_slots"`
}

func FromCreateOrderResult(r *commands.CreateOrderResult) CreateOrderResponse {
	resp := CreateOrderResponse{
		OrderID:     r.OrderID,
		OrderNumber: r.OrderNumber,
		TotalAmount: r.TotalAmount,
		Status:      string(r.Status),
		LockedUntil: r.LockedUntil,
	}
	for _, s := range r.Slots {
		resp.BookingSlots = append(resp.BookingSlots, CreatedSlotResponse{
			SlotDate:  s.SlotDate,
			StartHour: s.StartHour,
			IsPrimary: s.IsPrimary,
			IsLocked:  s.Locked,
		})
	}
	return resp
}

type BookingSlotResponse struct {
	SlotDate      string     `json:"slot_date"`
	StartHour     int        `json:"start_hour"`
	EndHour       int        `json:"end_hour"`
	ContactName   string     `json:"contact_name"`
	ContactPhone  string     `json:"contact_phone"`
	IsPrimary     bool       `json:"is_primary"`
	IsSelected    bool       `json:"is_selected"`
	IsLocked      bool       `json:"is_locked"`
	LockExpiresAt *time.Time `json:"lock_expires_at,omitempty"`
}

type OrderResponse struct {
	ID                 uuid.UUID             `json:"id"`
	OrderNumber        string                `json:"order_number"`
	ServiceKind        string                `json:"service_kind"`
	Status             string                `json:"status"`
	PaymentStatus      string                `json:"payment_status"`
	TotalAmount        int                   `json:"total_amount"`
	UnitCount          int                   `json:"unit_count"`
	Address            string                `json:"address"`
	BookingSlots       []BookingSlotResponse `json:"booking_slots"`
	SchedulingFeedback string                `json:"scheduling_feedback,omitempty"`
	ScheduledDate      *string               `json:"scheduled_date,omitempty"`
	Note               string                `json:"note,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, v)
	return resp
}

type OrderSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	ServiceKind string    `json:"service_kind"`
	Status      string    `json:"status"`
	TotalAmount int       `json:"total_amount"`
	SlotDate    string    `json:"slot_date"`
	StartHour   int       `json:"start_hour"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromOrderSummaries(views []queries.OrderSummaryView) []OrderSummaryResponse {
	resp := make([]OrderSummaryResponse, 0, len(views))
	for i := range views {
		var item OrderSummaryResponse
		_ = copier.Copy(&item, &views[i])
		resp = append(resp, item)
	}
	return resp
}
