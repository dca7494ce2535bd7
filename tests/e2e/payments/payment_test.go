//go:build e2e

package payments_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"coolslate/internal/domain/booking"
	"coolslate/internal/handler/dto/request"
	"coolslate/internal/handler/dto/response"
	"coolslate/internal/usecase/commands"
	"coolslate/tests/common/authtest"
	"coolslate/tests/common/builder"
	"coolslate/tests/common/dbtest"
	"coolslate/tests/common/httptest"
	"coolslate/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL  = "/api/orders"
	webhookURL = "/api/payments/webhook"
)

type PaymentSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *PaymentSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestPaymentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PaymentSuite))
}

func (s *PaymentSuite) createOrder(t *testing.T, kind booking.ServiceKind, token string) response.CreateOrderResponse {
	t.Helper()

	serviceTypeID := dbtest.ServiceTypeID(t, s.DB, kind)
	b := builder.NewOrderBuilder(serviceTypeID)
	if kind == booking.ServiceInstallation {
		b.WithEquipment(dbtest.EquipmentIDs(t, s.DB, 1)...)
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, b.BuildRequest(), token)
	var resp response.CreateOrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
	return resp
}

func (s *PaymentSuite) postWebhook(t *testing.T, orderNumber string, amount int) *struct {
	Code   int
	Status string
} {
	t.Helper()

	body, err := json.Marshal(request.PaymentWebhookRequest{
		OrderNumber: orderNumber,
		Amount:      amount,
		TradeNo:     "TRADE" + uuid.NewString()[:8],
	})
	require.NoError(t, err)

	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
		"Content-Type":        "application/json",
		"X-Payment-Signature": s.sign(body),
	})

	result := &struct {
		Code   int
		Status string
	}{Code: w.Code}
	var decoded struct {
		Status string `json:"status"`
	}
	if json.Unmarshal(w.Body.Bytes(), &decoded) == nil {
		result.Status = decoded.Status
	}
	return result
}

func (s *PaymentSuite) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(s.Config.Payment.WebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *PaymentSuite) orderState(t *testing.T, orderID uuid.UUID) (status, paymentStatus string) {
	t.Helper()
	err := s.DB.QueryRow(context.Background(),
		"SELECT status, payment_status FROM orders WHERE id = $1", orderID).Scan(&status, &paymentStatus)
	require.NoError(t, err)
	return status, paymentStatus
}

func (s *PaymentSuite) scheduleLockCount(t *testing.T, orderID uuid.UUID) int {
	t.Helper()
	var n int
	err := s.DB.QueryRow(context.Background(), `
		SELECT count(*) FROM time_slot_locks l
		JOIN schedules sc ON sc.lock_group_id = l.lock_group_id
		WHERE sc.order_id = $1 AND sc.status = 'scheduled'
		  AND l.lock_type = 'schedule' AND l.expires_at IS NULL`, orderID).Scan(&n)
	require.NoError(t, err)
	return n
}

// =============================================================================
// TestWebhook - payment confirmation and immediate scheduling
// =============================================================================

func (s *PaymentSuite) TestWebhook() {
	s.Run("successful payment schedules a maintenance order in place", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)

		result := s.postWebhook(t, order.OrderNumber, order.TotalAmount)
		require.Equal(t, http.StatusOK, result.Code)
		require.Equal(t, "confirmed", result.Status)

		status, paymentStatus := s.orderState(t, order.OrderID)
		require.Equal(t, "scheduled", status)
		require.Equal(t, "paid", paymentStatus)
		require.Equal(t, 1, s.scheduleLockCount(t, order.OrderID),
			"the provisional booking lock converts to a permanent schedule lock")
	})

	s.Run("repair order waits for dispatch after payment", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		order := s.createOrder(t, booking.ServiceRepair, token)

		result := s.postWebhook(t, order.OrderNumber, order.TotalAmount)
		require.Equal(t, http.StatusOK, result.Code)

		status, paymentStatus := s.orderState(t, order.OrderID)
		require.Equal(t, "pending_schedule", status)
		require.Equal(t, "paid", paymentStatus)
		require.Zero(t, s.scheduleLockCount(t, order.OrderID))
	})

	s.Run("redelivered notification is acknowledged without a second transition", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)

		first := s.postWebhook(t, order.OrderNumber, order.TotalAmount)
		require.Equal(t, "confirmed", first.Status)

		second := s.postWebhook(t, order.OrderNumber, order.TotalAmount)
		require.Equal(t, http.StatusOK, second.Code)
		require.Equal(t, "already_processed", second.Status)

		var scheduleCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM schedules WHERE order_id = $1", order.OrderID).Scan(&scheduleCount)
		require.NoError(t, err)
		require.Equal(t, 1, scheduleCount)
	})

	s.Run("amount mismatch is rejected", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)

		result := s.postWebhook(t, order.OrderNumber, order.TotalAmount+100)
		require.Equal(t, http.StatusUnprocessableEntity, result.Code)

		_, paymentStatus := s.orderState(t, order.OrderID)
		require.Equal(t, "unpaid", paymentStatus)
	})

	s.Run("tampered signature is rejected", func() {
		t := s.T()
		body, err := json.Marshal(request.PaymentWebhookRequest{
			OrderNumber: "AC202601010000000000",
			Amount:      1800,
			TradeNo:     "TRADE1",
		})
		require.NoError(t, err)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, map[string]string{
			"Content-Type":        "application/json",
			"X-Payment-Signature": "deadbeef",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown order number returns not found", func() {
		t := s.T()
		result := s.postWebhook(t, "AC202601010000000000", 1800)
		require.Equal(t, http.StatusNotFound, result.Code)
	})
}

// =============================================================================
// TestRefund - refund and precancel flow
// =============================================================================

func (s *PaymentSuite) TestRefund() {
	s.Run("refund flips payment only and the cancellation frees the schedule", func() {
		t := s.T()
		userID := uuid.New()
		token := s.jwt.UserToken(t, userID, "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/orders/"+order.OrderID.String()+"/refund", nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		status, paymentStatus := s.orderState(t, order.OrderID)
		require.Equal(t, "precancel", status)
		require.Equal(t, "refunded", paymentStatus)
		require.Equal(t, 1, s.scheduleLockCount(t, order.OrderID),
			"the visit stays on the books until the order is cancelled")

		// The follow-up cancellation is what gives the capacity back.
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			ordersURL+"/"+order.OrderID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		status, _ = s.orderState(t, order.OrderID)
		require.Equal(t, "cancelled", status)
		require.Zero(t, s.scheduleLockCount(t, order.OrderID))
	})

	s.Run("refunding an unpaid order conflicts", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/orders/"+order.OrderID.String()+"/refund", nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("non-admin cannot refund", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/orders/"+order.OrderID.String()+"/refund", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestDispatch - repair order batch assignment
// =============================================================================

func (s *PaymentSuite) TestDispatch() {
	s.Run("paid repair orders get scheduled by the dispatch sweep", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceRepair, token)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/dispatch", nil, adminToken)
		var result commands.DispatchResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, 1, result.Attempted)
		require.Equal(t, 1, result.Succeeded)
		require.Zero(t, result.Failed)

		status, _ := s.orderState(t, order.OrderID)
		require.Equal(t, "scheduled", status)
		require.Equal(t, 2, s.scheduleLockCount(t, order.OrderID), "repairs take two hours")
	})

	s.Run("repair falls back to its second candidate when the first is full", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")

		repairID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceRepair)
		firstChoice := time.Now().AddDate(0, 0, 5)
		secondChoice := time.Now().AddDate(0, 0, 6)
		req := builder.NewOrderBuilder(repairID).
			WithDate(firstChoice).
			WithSecondSlot(secondChoice, 14).
			BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
		var order response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &order)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		dbtest.SetDayCapacity(t, s.DB, firstChoice, 0)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/dispatch", nil, adminToken)
		var result commands.DispatchResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, 1, result.Succeeded, "order should land on the second candidate window")

		var selectedDate time.Time
		var selectedPrimary bool
		err := s.DB.QueryRow(context.Background(), `
			SELECT slot_date, is_primary FROM booking_slots
			WHERE order_id = $1 AND is_selected`, order.OrderID).Scan(&selectedDate, &selectedPrimary)
		require.NoError(t, err)
		require.False(t, selectedPrimary)
		require.Equal(t, secondChoice.Format("2006-01-02"), selectedDate.Format("2006-01-02"))

		status, _ := s.orderState(t, order.OrderID)
		require.Equal(t, "scheduled", status)
	})

	s.Run("repair lands in scheduling_failed when every candidate is full", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceRepair, token)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		var slotDate time.Time
		err := s.DB.QueryRow(context.Background(),
			"SELECT slot_date FROM booking_slots WHERE order_id = $1 AND is_primary",
			order.OrderID).Scan(&slotDate)
		require.NoError(t, err)
		dbtest.SetDayCapacity(t, s.DB, slotDate, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/dispatch", nil, adminToken)
		var result commands.DispatchResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, 1, result.Failed)

		status, _ := s.orderState(t, order.OrderID)
		require.Equal(t, "scheduling_failed", status)

		var feedback string
		err = s.DB.QueryRow(context.Background(),
			"SELECT scheduling_feedback FROM orders WHERE id = $1", order.OrderID).Scan(&feedback)
		require.NoError(t, err)
		require.NotEmpty(t, feedback)
	})

	s.Run("repair outside the service area fails with the measured distance", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")

		repairID := dbtest.ServiceTypeID(t, s.DB, booking.ServiceRepair)
		req := builder.NewOrderBuilder(repairID).WithAddress("花蓮縣花蓮市中山路100號").BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
		var order response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &order)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/dispatch", nil, adminToken)
		var result commands.DispatchResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, 1, result.Failed)

		var status, feedback string
		var lat float64
		err := s.DB.QueryRow(context.Background(),
			"SELECT status, scheduling_feedback, latitude FROM orders WHERE id = $1",
			order.OrderID).Scan(&status, &feedback, &lat)
		require.NoError(t, err)
		require.Equal(t, "scheduling_failed", status)
		require.Contains(t, feedback, "公里")
		require.NotZero(t, lat, "dispatch persists the geocoded coordinates")
	})
}

// =============================================================================
// TestCompletion - report upload closes the order
// =============================================================================

func (s *PaymentSuite) TestCompletion() {
	pdf := append([]byte("%PDF-1.7\n"), []byte("minimal report body")...)

	s.Run("uploading a report completes a scheduled order", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost,
			"/api/admin/orders/"+order.OrderID.String()+"/complete", pdf, map[string]string{
				"Content-Type":  "application/pdf",
				"Authorization": "Bearer " + adminToken,
			})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		status, _ := s.orderState(t, order.OrderID)
		require.Equal(t, "completed", status)
	})

	s.Run("second upload for the same order conflicts", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		url := "/api/admin/orders/" + order.OrderID.String() + "/complete"
		headers := map[string]string{
			"Content-Type":  "application/pdf",
			"Authorization": "Bearer " + adminToken,
		}
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, pdf, headers)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, pdf, headers)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("non-PDF payload is rejected", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost,
			"/api/admin/orders/"+order.OrderID.String()+"/complete",
			[]byte("just text"), map[string]string{
				"Content-Type":  "application/pdf",
				"Authorization": "Bearer " + adminToken,
			})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestReschedule - admin moves a scheduled order
// =============================================================================

func (s *PaymentSuite) TestReschedule() {
	s.Run("scheduled order moves to the new window", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		newDate := time.Now().AddDate(0, 0, 15).Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/orders/"+order.OrderID.String()+"/reschedule",
			request.RescheduleOrderRequest{SlotDate: newDate, StartHour: 14}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		var slotDate time.Time
		var startHour int
		err := s.DB.QueryRow(context.Background(),
			"SELECT slot_date, start_hour FROM booking_slots WHERE order_id = $1 AND is_selected",
			order.OrderID).Scan(&slotDate, &startHour)
		require.NoError(t, err)
		require.Equal(t, newDate, slotDate.Format("2006-01-02"))
		require.Equal(t, 14, startHour)
		require.Equal(t, 1, s.scheduleLockCount(t, order.OrderID))
	})

	s.Run("reschedule into a full day conflicts and parks the order", func() {
		t := s.T()
		token := s.jwt.UserToken(t, uuid.New(), "payer@example.com")
		adminToken := s.jwt.AdminToken(t, uuid.New(), "ops@example.com")
		order := s.createOrder(t, booking.ServiceMaintenance, token)
		s.postWebhook(t, order.OrderNumber, order.TotalAmount)

		newDate := time.Now().AddDate(0, 0, 15)
		dbtest.SetDayCapacity(t, s.DB, newDate, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/orders/"+order.OrderID.String()+"/reschedule",
			request.RescheduleOrderRequest{SlotDate: newDate.Format("2006-01-02"), StartHour: 14}, adminToken)
		require.Equal(t, http.StatusConflict, w.Code)

		status, _ := s.orderState(t, order.OrderID)
		require.Equal(t, "pending_reschedule", status)
	})
}
