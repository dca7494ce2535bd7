//go:build e2e

package orders_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/handler/dto/response"
	"coolslate/tests/common/authtest"
	"coolslate/tests/common/builder"
	"coolslate/tests/common/dbtest"
	"coolslate/tests/common/httptest"
	"coolslate/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ordersURL = "/api/orders"

type OrderSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *OrderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) userToken(t *testing.T) (uuid.UUID, string) {
	userID := uuid.New()
	return userID, s.jwt.UserToken(t, userID, "customer@example.com")
}

func (s *OrderSuite) lockGroupOf(t *testing.T, orderID uuid.UUID) uuid.NullUUID {
	t.Helper()
	var groupID uuid.NullUUID
	err := s.DB.QueryRow(context.Background(),
		"SELECT lock_group_id FROM booking_slots WHERE order_id = $1 AND is_primary", orderID).Scan(&groupID)
	require.NoError(t, err)
	return groupID
}

// slotLockGroups returns each candidate slot's lock group, primary first.
func (s *OrderSuite) slotLockGroups(t *testing.T, orderID uuid.UUID) []uuid.NullUUID {
	t.Helper()
	rows, err := s.DB.Query(context.Background(), `
		SELECT lock_group_id FROM booking_slots
		WHERE order_id = $1 ORDER BY is_primary DESC, created_at`, orderID)
	require.NoError(t, err)
	defer rows.Close()

	var groups []uuid.NullUUID
	for rows.Next() {
		var g uuid.NullUUID
		require.NoError(t, rows.Scan(&g))
		groups = append(groups, g)
	}
	require.NoError(t, rows.Err())
	return groups
}

// =============================================================================
// TestCreateOrder - Order creation API tests
// =============================================================================

func (s *OrderSuite) TestCreateOrder() {
	s.Run("maintenance order holds one slot per required hour", func() {
		t := s.T()
		_, token := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).WithUnitCount(2).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)

		var resp response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
		require.Equal(t, "pending", resp.Status)
		require.Equal(t, 1800+800, resp.TotalAmount)
		require.NotNil(t, resp.LockedUntil)

		groupID := s.lockGroupOf(t, resp.OrderID)
		require.True(t, groupID.Valid)
		// two units at one base hour plus one additional hour
		require.Equal(t, 2, dbtest.CountLockRows(t, s.DB, groupID.UUID))
	})

	s.Run("full first choice still creates the order on the second candidate", func() {
		t := s.T()
		_, token := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		firstChoice := time.Now().AddDate(0, 0, 10)
		secondChoice := time.Now().AddDate(0, 0, 11)
		dbtest.SetDayCapacity(t, s.DB, firstChoice, 0)

		req := builder.NewOrderBuilder(maintenanceID).
			WithDate(firstChoice).
			WithSecondSlot(secondChoice, 14).
			BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)

		var resp response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
		require.NotNil(t, resp.LockedUntil)
		require.Len(t, resp.BookingSlots, 2)
		require.True(t, resp.BookingSlots[0].IsPrimary)
		require.False(t, resp.BookingSlots[0].IsLocked)
		require.True(t, resp.BookingSlots[1].IsLocked)

		groups := s.slotLockGroups(t, resp.OrderID)
		require.Len(t, groups, 2)
		require.False(t, groups[0].Valid)
		require.True(t, groups[1].Valid)
	})

	s.Run("repair order reserves nothing up front", func() {
		t := s.T()
		_, token := s.userToken(t)
		repairID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceRepair)

		req := builder.NewOrderBuilder(repairID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)

		var resp response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
		require.Equal(t, 800, resp.TotalAmount, "Taipei address resolves to the 雙北 rate")
		require.Nil(t, resp.LockedUntil)
		require.False(t, s.lockGroupOf(t, resp.OrderID).Valid)
	})

	s.Run("installation order prices from selected equipment", func() {
		t := s.T()
		_, token := s.userToken(t)
		installationID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceInstallation)
		equipment := dbtest.EquipmentIDs(t, s.DB, 2)

		req := builder.NewOrderBuilder(installationID).WithEquipment(equipment...).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)

		var resp response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
		require.Positive(t, resp.TotalAmount)
	})

	s.Run("installation order without equipment is rejected", func() {
		t := s.T()
		_, token := s.userToken(t)
		installationID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceInstallation)

		req := builder.NewOrderBuilder(installationID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Equipment")
	})

	s.Run("start hour before opening is rejected", func() {
		t := s.T()
		_, token := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).WithStartHour(7).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "time slot")
	})

	s.Run("address outside the service area is rejected", func() {
		t := s.T()
		_, token := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).WithAddress("花蓮縣花蓮市中山路100號").BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "service area")
	})

	s.Run("booking past the advance window is rejected", func() {
		t := s.T()
		_, token := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).
			WithDate(time.Now().AddDate(0, 6, 0)).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "booking window")
	})

	s.Run("unauthenticated request is rejected", func() {
		t := s.T()
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestConcurrentReservation - capacity race between two customers
// =============================================================================

func (s *OrderSuite) TestConcurrentReservation() {
	s.Run("last available slot goes to exactly one customer", func() {
		t := s.T()
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		date := time.Now().AddDate(0, 0, 14)
		dbtest.SetDayCapacity(t, s.DB, date, 1)

		const racers = 2
		codes := make([]int, racers)
		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				userID := uuid.New()
				token := s.jwt.UserToken(t, userID, "racer@example.com")
				req := builder.NewOrderBuilder(maintenanceID).WithDate(date).BuildRequest()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, 1, conflicted, "codes: %v", codes)

		var liveLocks int
		err := s.DB.QueryRow(context.Background(), `
			SELECT count(*) FROM time_slot_locks
			WHERE slot_date = $1 AND (expires_at IS NULL OR expires_at > now())`,
			date.Format("2006-01-02")).Scan(&liveLocks)
		require.NoError(t, err)
		require.Equal(t, 1, liveLocks)
	})
}

// =============================================================================
// TestGetOrder / TestListOrders - read API tests
// =============================================================================

func (s *OrderSuite) TestGetOrder() {
	s.Run("owner sees full order details", func() {
		t := s.T()
		_, token := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).WithNote("三樓沒有電梯").BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+created.OrderID.String(), nil, token)
		var resp response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, created.OrderNumber, resp.OrderNumber)
		require.Equal(t, "MAINTENANCE", resp.ServiceKind)
		require.Equal(t, "unpaid", resp.PaymentStatus)
		require.Equal(t, "三樓沒有電梯", resp.Note)
		require.Len(t, resp.BookingSlots, 1)
		require.True(t, resp.BookingSlots[0].IsPrimary)
		require.True(t, resp.BookingSlots[0].IsLocked)
		require.NotNil(t, resp.BookingSlots[0].LockExpiresAt)
		require.Equal(t, "王小明", resp.BookingSlots[0].ContactName)
	})

	s.Run("other users cannot read the order", func() {
		t := s.T()
		_, ownerToken := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, ownerToken)
		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		_, strangerToken := s.userToken(t)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+created.OrderID.String(), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("unknown order returns not found", func() {
		t := s.T()
		_, token := s.userToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

func (s *OrderSuite) TestListOrders() {
	s.Run("returns only the caller's orders, newest first", func() {
		t := s.T()
		_, token := s.userToken(t)
		_, otherToken := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		for hour := 9; hour <= 11; hour++ {
			req := builder.NewOrderBuilder(maintenanceID).WithStartHour(hour).BuildRequest()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
		req := builder.NewOrderBuilder(maintenanceID).WithStartHour(13).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)
		var resp []response.OrderSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp, 3)
		for i := 1; i < len(resp); i++ {
			require.False(t, resp[i-1].CreatedAt.Before(resp[i].CreatedAt))
		}
	})
}

// =============================================================================
// TestCancelOrder - cancellation and slot release
// =============================================================================

func (s *OrderSuite) TestCancelOrder() {
	s.Run("cancelling an unpaid order releases its slots", func() {
		t := s.T()
		_, token := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		groupID := s.lockGroupOf(t, created.OrderID)
		require.True(t, groupID.Valid)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, ordersURL+"/"+created.OrderID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Zero(t, dbtest.CountLockRows(t, s.DB, groupID.UUID))

		var status string
		err := s.DB.QueryRow(context.Background(),
			"SELECT status FROM orders WHERE id = $1", created.OrderID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "cancelled", status)
	})

	s.Run("cancelling someone else's order is forbidden", func() {
		t := s.T()
		_, ownerToken := s.userToken(t)
		maintenanceID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceMaintenance)

		req := builder.NewOrderBuilder(maintenanceID).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, ownerToken)
		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		_, strangerToken := s.userToken(t)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, ordersURL+"/"+created.OrderID.String(), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}
