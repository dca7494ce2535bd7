package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coolslate/internal/domain/booking"
	reqdto "coolslate/internal/handler/dto/request"
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

var (
	ErrServiceTypeNotFound = errs.New("service type not found")
	ErrOrderNotFound       = errs.New("order not found")
	ErrInvalidTimeSlot     = errs.New("invalid time slot")
	ErrInvalidSlotCount    = errs.New("booking slot count out of range")
	ErrDateNotBookable     = errs.New("date is outside the booking window")
	ErrInvalidUnitCount    = errs.New("unit count out of range")
	ErrOutsideServiceArea  = errs.New("address is outside the service area")
	ErrAddressNotFound     = errs.New("address could not be located")
	ErrEquipmentRequired   = errs.New("equipment selection required for this service")
	ErrForbidden           = errs.New("order belongs to another user")
	ErrOrderConflict       = errs.New("order state conflict")
)

// SlotStatus reports one candidate window's lock outcome back to the caller.
type SlotStatus struct {
	SlotDate  string
	StartHour int
	IsPrimary bool
	Locked    bool
}

type CreateOrderResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	TotalAmount int
	Status      booking.OrderStatus
	LockedUntil *time.Time
	Slots       []SlotStatus
}

type OrderCommands interface {
	Create(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID, userEmail string) (*CreateOrderResult, error)
	Cancel(ctx context.Context, orderID, userID uuid.UUID, isAdmin bool) error
}

type orderUseCaseImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.CatalogReads
	geocoder geocode.Geocoder
	area     geocode.ServiceArea
	mailer   mail.Mailer
	clock    clock.Clock
	cfg      config.WorkforceConfig
	metrics  *metrics.Metrics
	loc      *time.Location
}

func NewOrderUseCase(
	uow shared.UnitOfWork,
	catalog shared.CatalogReads,
	geocoder geocode.Geocoder,
	area geocode.ServiceArea,
	mailer mail.Mailer,
	clk clock.Clock,
	cfg config.WorkforceConfig,
	m *metrics.Metrics,
) OrderCommands {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	return &orderUseCaseImpl{
		uow:      uow,
		catalog:  catalog,
		geocoder: geocoder,
		area:     area,
		mailer:   mailer,
		clock:    clk,
		cfg:      cfg,
		metrics:  m,
		loc:      loc,
	}
}

func (u *orderUseCaseImpl) Create(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID, userEmail string) (*CreateOrderResult, error) {
	st, err := u.catalog.ServiceTypeByID(ctx, req.ServiceTypeID)
	if err != nil {
		return nil, errs.Mark(err, ErrServiceTypeNotFound)
	}

	if req.UnitCount < 1 || req.UnitCount > booking.MaxUnitCount {
		return nil, ErrInvalidUnitCount
	}
	if len(req.BookingSlots) < 1 || len(req.BookingSlots) > booking.MaxBookingSlots {
		return nil, ErrInvalidSlotCount
	}

	now := u.clock.Now().In(u.loc)
	slots := make([]booking.BookingSlot, 0, len(req.BookingSlots))
	for i, sr := range req.BookingSlots {
		date, err := time.ParseInLocation("2006-01-02", sr.SlotDate, u.loc)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidTimeSlot)
		}
		if !st.DateBookable(now, date) {
			return nil, ErrDateNotBookable
		}
		window := booking.NewSlotWindow(date, sr.StartHour, st.RequiredHours(req.UnitCount))
		if !booking.IsBookableStartHour(sr.StartHour) || !window.FitsBusinessDay() {
			return nil, ErrInvalidTimeSlot
		}
		slots = append(slots, booking.BookingSlot{
			ID:           uuid.New(),
			Window:       window,
			ContactName:  sr.ContactName,
			ContactPhone: sr.ContactPhone,
			IsPrimary:    i == 0,
		})
	}

	// Repairs are geocoded by the daily dispatch run; only services that
	// lock capacity up front need the address resolved now.
	var lat, lng float64
	if st.Name.RequiresPreLock() {
		lat, lng, err = u.geocoder.Geocode(ctx, req.Address)
		if err != nil {
			return nil, errs.Mark(err, ErrAddressNotFound)
		}
		if !u.area.Contains(lat, lng) {
			return nil, ErrOutsideServiceArea
		}
	}

	total, err := u.priceOrder(ctx, st, req)
	if err != nil {
		return nil, err
	}

	order := &booking.Order{
		ID:            uuid.New(),
		OrderNumber:   booking.NewOrderNumber(now),
		UserID:        userID,
		UserEmail:     userEmail,
		ServiceTypeID: st.ID,
		ServiceKind:   st.Name,
		Status:        booking.OrderPending,
		PaymentStatus: booking.PaymentUnpaid,
		TotalAmount:   total,
		UnitCount:     req.UnitCount,
		Address:       req.Address,
		Latitude:      lat,
		Longitude:     lng,
		Note:          req.GetNote(),
	}

	lockedCount := 0
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lockedCount = 0
		if st.Name.RequiresPreLock() {
			expiry := u.clock.Now().Add(u.cfg.LockTTL)
			for i := range slots {
				groupID, err := reserveWindow(ctx, tx, slots[i].Window, st.RequiredWorkers, booking.LockBooking, slots[i].ID, u.cfg.TotalWorkers, u.clock.Now(), &expiry)
				if errors.Is(err, ErrSlotUnavailable) {
					// The candidate stays on the order without a lock;
					// scheduling will skip it.
					slots[i].LockGroupID = uuid.NullUUID{}
					slots[i].LockExpiresAt = nil
					continue
				}
				if err != nil {
					return err
				}
				e := expiry
				slots[i].LockGroupID = uuid.NullUUID{UUID: groupID, Valid: true}
				slots[i].LockExpiresAt = &e
				lockedCount++
			}
			if lockedCount == 0 {
				return ErrSlotUnavailable
			}
		}
		if _, err := tx.Orders().Create(ctx, tx.DB(), order); err != nil {
			return err
		}
		for i := range slots {
			slots[i].OrderID = order.ID
			if err := tx.BookingSlots().Insert(ctx, tx.DB(), &slots[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if lockedCount > 0 {
		u.metrics.LocksReserved.Add(float64(lockedCount))
	}
	u.sendOrderCreatedMail(ctx, order, slots)

	result := &CreateOrderResult{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
	}
	for _, s := range slots {
		result.Slots = append(result.Slots, SlotStatus{
			SlotDate:  s.Window.Date.Format("2006-01-02"),
			StartHour: s.Window.StartHour,
			IsPrimary: s.IsPrimary,
			Locked:    s.Locked(),
		})
		if s.Locked() && (result.LockedUntil == nil || s.IsPrimary) {
			result.LockedUntil = s.LockExpiresAt
		}
	}
	return result, nil
}

func (u *orderUseCaseImpl) priceOrder(ctx context.Context, st *booking.ServiceType, req reqdto.CreateOrderRequest) (int, error) {
	switch st.PricingType {
	case booking.PricingEquipment:
		if len(req.Equipment) == 0 {
			return 0, ErrEquipmentRequired
		}
		ids := make([]uuid.UUID, 0, len(req.Equipment))
		for _, sel := range req.Equipment {
			ids = append(ids, sel.EquipmentID)
		}
		items, err := u.catalog.EquipmentByIDs(ctx, ids)
		if err != nil {
			return 0, err
		}
		if len(items) != len(ids) {
			return 0, ErrEquipmentRequired
		}
		byID := make(map[uuid.UUID]booking.EquipmentItem, len(items))
		for _, it := range items {
			byID[it.ID] = it
		}
		selected := make([]booking.EquipmentItem, 0, len(req.Equipment))
		for _, sel := range req.Equipment {
			it := byID[sel.EquipmentID]
			it.Quantity = sel.Quantity
			selected = append(selected, it)
		}
		return booking.EquipmentTotal(selected), nil

	case booking.PricingUnitCount:
		pricing, err := u.catalog.UnitPricingByServiceType(ctx, st.ID)
		if err != nil {
			return 0, err
		}
		return pricing.Total(req.UnitCount), nil

	case booking.PricingLocation:
		regions, err := u.catalog.LocationPricing(ctx)
		if err != nil {
			return 0, err
		}
		return booking.LocationPrice(req.Address, regions), nil
	}
	return 0, errs.New("unknown pricing type")
}

func (u *orderUseCaseImpl) Cancel(ctx context.Context, orderID, userID uuid.UUID, isAdmin bool) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		order, err := tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return errs.Mark(err, ErrOrderNotFound)
		}
		if !isAdmin && order.UserID != userID {
			return ErrForbidden
		}
		if err := order.ValidateCancel(); err != nil {
			return err
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
		return tx.Orders().UpdateStatus(ctx, tx.DB(), order.ID, booking.OrderCancelled)
	})
}

func (u *orderUseCaseImpl) sendOrderCreatedMail(ctx context.Context, o *booking.Order, slots []booking.BookingSlot) {
	window := ""
	if primary := booking.PrimarySlot(slots); primary != nil {
		window = primary.Window.String()
	}
	subject := fmt.Sprintf("訂單 %s 已成立", o.OrderNumber)
	body := fmt.Sprintf(
		"<p>您的訂單 %s 已成立。</p><p>首選時段：%s</p><p>金額：NT$%d，請於 30 分鐘內完成付款。</p>",
		o.OrderNumber, window, o.TotalAmount,
	)
	if err := u.mailer.Send(ctx, o.UserEmail, subject, body); err != nil {
		slog.Warn("failed to send order created mail", "order", o.OrderNumber, "error", err.Error())
	}
}
