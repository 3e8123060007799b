package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Input validation happens before any database access, so these requests can
// run against the bare handlers.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/units", CreateUnit)
	r.POST("/api/bookings", CreateBooking)
	r.PATCH("/api/bookings/:id/status", UpdateBookingStatus)
	r.POST("/api/payments", CreatePayment)
	r.POST("/api/leads", CreateLead)
	messageController := MessageController{}
	r.POST("/api/messages/mass", messageController.SendMassMessage)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUnit_RejectsBadPayload(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"wrong enum", `{"type":"gigantic","size":"5x5","price":50,"location":"Floor 1, Block A"}`},
		{"missing price", `{"type":"small","size":"5x5","location":"Floor 1, Block A"}`},
		{"non-integer price", `{"type":"small","size":"5x5","price":"fifty","location":"Floor 1, Block A"}`},
		{"empty body", `{}`},
	}

	for _, tc := range cases {
		w := doJSON(r, http.MethodPost, "/api/units", tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
		assert.Contains(t, w.Body.String(), "Invalid unit data", tc.name)
	}
}

func TestCreateBooking_RejectsBadPayload(t *testing.T) {
	r := newTestRouter()

	cases := []string{
		`{}`,
		`{"unitId":1}`,
		`{"unitId":1,"customerId":7,"startDate":"01/01/2025"}`,
		`{"unitId":1,"customerId":7,"startDate":"2025-01-01","status":"paused"}`,
	}

	for _, body := range cases {
		w := doJSON(r, http.MethodPost, "/api/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestUpdateBookingStatus_RejectsBadStatus(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPatch, "/api/bookings/1/status", `{"status":"paused"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")

	w = doJSON(r, http.MethodPatch, "/api/bookings/abc/status", `{"status":"active"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePayment_RejectsBadPayload(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/payments", `{"bookingId":1,"amount":100,"status":"charged"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/payments", `{"bookingId":1,"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLead_RejectsBadPayload(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/leads", `{"name":"Jo","email":"not-an-email","phone":"+15551234567"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/leads", `{"name":"Jo","email":"jo@example.com","phone":"+15551234567","status":"stale"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMassMessage_RejectsEmptyMessage(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/messages/mass", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
