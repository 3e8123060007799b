package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"storemate-backend/config"
	"storemate-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The booking handlers are exercised against an in-memory database so the
// conditional unit claim and the occupancy transitions run for real.
func setupBookingDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Unit{}, &models.Customer{}, &models.Booking{}))
	config.DB = db
	return db
}

func newBookingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", CreateBooking)
	r.PATCH("/api/bookings/:id/status", UpdateBookingStatus)
	return r
}

func seedUnitAndCustomer(t *testing.T, db *gorm.DB) (models.Unit, models.Customer) {
	t.Helper()
	unit := models.Unit{Type: "small", Size: "5x5", Price: 50, Location: "Floor 1, Block A"}
	require.NoError(t, db.Create(&unit).Error)
	customer := models.Customer{Name: "Ann Lee", Email: "ann@example.com", Phone: "+15551234567"}
	require.NoError(t, db.Create(&customer).Error)
	return unit, customer
}

func bookingBody(unitID, customerID uint) string {
	return fmt.Sprintf(`{"unitId":%d,"customerId":%d,"startDate":"2026-08-01"}`, unitID, customerID)
}

func TestCreateBooking_ClaimsUnit(t *testing.T) {
	db := setupBookingDB(t)
	r := newBookingRouter()
	unit, customer := seedUnitAndCustomer(t, db)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(unit.ID, customer.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var claimed models.Unit
	require.NoError(t, db.First(&claimed, unit.ID).Error)
	assert.True(t, claimed.IsOccupied)
	require.NotNil(t, claimed.CustomerID)
	assert.Equal(t, customer.ID, *claimed.CustomerID)

	var booking models.Booking
	require.NoError(t, db.First(&booking).Error)
	assert.Equal(t, models.BookingStatusActive, booking.Status)
	assert.Equal(t, float64(unit.Price), booking.MonthlyRate)
	assert.Equal(t, "2026-08-01", booking.NextBillDate)
}

func TestCreateBooking_OccupiedUnitRejectedWithoutRow(t *testing.T) {
	db := setupBookingDB(t)
	r := newBookingRouter()
	unit, customer := seedUnitAndCustomer(t, db)

	other := models.Customer{Name: "Bo Kim", Email: "bo@example.com", Phone: "+15557654321"}
	require.NoError(t, db.Create(&other).Error)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(unit.ID, customer.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/bookings", bookingBody(unit.ID, other.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unit is already occupied")

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The unit still belongs to the first booking's customer.
	var claimed models.Unit
	require.NoError(t, db.First(&claimed, unit.ID).Error)
	require.NotNil(t, claimed.CustomerID)
	assert.Equal(t, customer.ID, *claimed.CustomerID)
}

func TestCreateBooking_ConditionalClaimLoses(t *testing.T) {
	db := setupBookingDB(t)
	unit, customer := seedUnitAndCustomer(t, db)

	// A stale read can pass the vacancy pre-check after another request has
	// taken the unit; the claim itself must still refuse.
	require.NoError(t, db.Model(&models.Unit{}).
		Where("id = ?", unit.ID).
		Update("is_occupied", true).Error)

	claim := db.Model(&models.Unit{}).
		Where("id = ? AND is_occupied = ?", unit.ID, false).
		Updates(map[string]interface{}{"is_occupied": true, "customer_id": customer.ID})
	require.NoError(t, claim.Error)
	assert.Equal(t, int64(0), claim.RowsAffected)
}

func TestCreateBooking_UnknownUnitOrCustomer(t *testing.T) {
	db := setupBookingDB(t)
	r := newBookingRouter()
	unit, customer := seedUnitAndCustomer(t, db)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(unit.ID+99, customer.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Unit not found")

	w = doJSON(r, http.MethodPost, "/api/bookings", bookingBody(unit.ID, customer.ID+99))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Customer not found")

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var untouched models.Unit
	require.NoError(t, db.First(&untouched, unit.ID).Error)
	assert.False(t, untouched.IsOccupied)
}

func TestUpdateBookingStatus_ReleasesUnit(t *testing.T) {
	for _, status := range []string{models.BookingStatusCompleted, models.BookingStatusCancelled} {
		db := setupBookingDB(t)
		r := newBookingRouter()
		unit, customer := seedUnitAndCustomer(t, db)

		w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(unit.ID, customer.ID))
		require.Equal(t, http.StatusCreated, w.Code)

		var booking models.Booking
		require.NoError(t, db.First(&booking).Error)

		w = doJSON(r, http.MethodPatch,
			fmt.Sprintf("/api/bookings/%d/status", booking.ID),
			fmt.Sprintf(`{"status":%q}`, status))
		require.Equal(t, http.StatusOK, w.Code, status)

		var released models.Unit
		require.NoError(t, db.First(&released, unit.ID).Error)
		assert.False(t, released.IsOccupied, status)
		assert.Nil(t, released.CustomerID, status)
	}
}

func TestCreateBooking_ReleasedUnitCanBeRebooked(t *testing.T) {
	db := setupBookingDB(t)
	r := newBookingRouter()
	unit, customer := seedUnitAndCustomer(t, db)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(unit.ID, customer.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, db.First(&booking).Error)

	w = doJSON(r, http.MethodPatch,
		fmt.Sprintf("/api/bookings/%d/status", booking.ID),
		`{"status":"completed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/bookings", bookingBody(unit.ID, customer.ID))
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
