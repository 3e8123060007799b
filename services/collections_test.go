package services

import (
	"testing"
	"time"

	"storemate-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var collectionsNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func pendingPayment(id, bookingID uint, amount int, createdAt time.Time) models.Payment {
	return models.Payment{
		ID:        id,
		BookingID: bookingID,
		Amount:    amount,
		Status:    models.PaymentStatusPending,
		CreatedAt: createdAt,
	}
}

func TestBuildCollections_BalanceAndOldestPayment(t *testing.T) {
	customers := []models.Customer{{ID: 7, Name: "Ann Lee", Email: "ann@example.com", Phone: "+15550001"}}
	bookings := []models.Booking{{ID: 3, UnitID: 1, CustomerID: 7, StartDate: "2026-01-01", Status: models.BookingStatusActive}}
	payments := []models.Payment{
		pendingPayment(1, 3, 100, collectionsNow.AddDate(0, 0, -10)),
		pendingPayment(2, 3, 250, collectionsNow.AddDate(0, 0, -40)),
	}

	accounts := BuildCollections(payments, customers, bookings, collectionsNow, CollectionsFilter{})

	require.Len(t, accounts, 1)
	assert.Equal(t, 350, accounts[0].Balance)
	assert.Equal(t, uint(2), accounts[0].OldestPayment.ID)
	assert.Equal(t, 40, accounts[0].DaysOverdue)
	assert.Equal(t, "Urgent Collection", accounts[0].Status)
}

func TestBuildCollections_StatusLabels(t *testing.T) {
	cases := []struct {
		daysAgo int
		label   string
	}{
		{5, "Follow Up"},
		{30, "Follow Up"},
		{31, "Urgent Collection"},
		{60, "Urgent Collection"},
		{61, "Legal Action Required"},
	}

	for _, tc := range cases {
		customers := []models.Customer{{ID: 1, Name: "Bo"}}
		bookings := []models.Booking{{ID: 1, CustomerID: 1, StartDate: "2026-01-01", Status: models.BookingStatusActive}}
		payments := []models.Payment{pendingPayment(1, 1, 100, collectionsNow.AddDate(0, 0, -tc.daysAgo))}

		accounts := BuildCollections(payments, customers, bookings, collectionsNow, CollectionsFilter{})
		require.Len(t, accounts, 1)
		assert.Equal(t, tc.label, accounts[0].Status, "days=%d", tc.daysAgo)
	}
}

func TestBuildCollections_OrphanedPaymentSilentlyDropped(t *testing.T) {
	customers := []models.Customer{{ID: 7, Name: "Ann"}}
	bookings := []models.Booking{{ID: 3, CustomerID: 7, StartDate: "2026-01-01", Status: models.BookingStatusActive}}
	payments := []models.Payment{
		pendingPayment(1, 3, 100, collectionsNow.AddDate(0, 0, -5)),
		pendingPayment(2, 99, 500, collectionsNow.AddDate(0, 0, -90)), // no such booking
	}

	accounts := BuildCollections(payments, customers, bookings, collectionsNow, CollectionsFilter{})

	require.Len(t, accounts, 1)
	assert.Equal(t, 100, accounts[0].Balance)
}

func TestBuildCollections_NonPendingExcluded(t *testing.T) {
	customers := []models.Customer{{ID: 1, Name: "Cy"}}
	bookings := []models.Booking{{ID: 1, CustomerID: 1, StartDate: "2026-01-01", Status: models.BookingStatusActive}}
	payments := []models.Payment{
		{ID: 1, BookingID: 1, Amount: 100, Status: models.PaymentStatusCompleted, CreatedAt: collectionsNow.AddDate(0, 0, -50)},
		{ID: 2, BookingID: 1, Amount: 100, Status: models.PaymentStatusRefunded, CreatedAt: collectionsNow.AddDate(0, 0, -50)},
	}

	accounts := BuildCollections(payments, customers, bookings, collectionsNow, CollectionsFilter{})
	assert.Empty(t, accounts)
}

func TestBuildCollections_FiltersAreConjunctive(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Match Both", Email: "a@x.com", Phone: "1"},
		{ID: 2, Name: "Wrong Balance", Email: "b@x.com", Phone: "2"},
	}
	bookings := []models.Booking{
		{ID: 1, CustomerID: 1, StartDate: "2026-01-01", Status: models.BookingStatusActive},
		{ID: 2, CustomerID: 2, StartDate: "2026-01-01", Status: models.BookingStatusActive},
	}
	payments := []models.Payment{
		pendingPayment(1, 1, 1200, collectionsNow.AddDate(0, 0, -45)),
		pendingPayment(2, 2, 400, collectionsNow.AddDate(0, 0, -45)),
	}

	filter := CollectionsFilter{DaysOverdue: "31-60", Balance: "1000+"}
	accounts := BuildCollections(payments, customers, bookings, collectionsNow, filter)

	require.Len(t, accounts, 1)
	assert.Equal(t, uint(1), accounts[0].Customer.ID)
}

func TestBuildCollections_SearchFilter(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Dana Fox", Email: "dana@example.com", Phone: "+15550001"},
		{ID: 2, Name: "Eli Gray", Email: "eli@example.com", Phone: "+15550002"},
	}
	bookings := []models.Booking{
		{ID: 1, CustomerID: 1, StartDate: "2026-01-01", Status: models.BookingStatusActive},
		{ID: 2, CustomerID: 2, StartDate: "2026-01-01", Status: models.BookingStatusActive},
	}
	payments := []models.Payment{
		pendingPayment(1, 1, 100, collectionsNow.AddDate(0, 0, -10)),
		pendingPayment(2, 2, 100, collectionsNow.AddDate(0, 0, -10)),
	}

	accounts := BuildCollections(payments, customers, bookings, collectionsNow, CollectionsFilter{Search: "DANA"})
	require.Len(t, accounts, 1)
	assert.Equal(t, "Dana Fox", accounts[0].Customer.Name)

	accounts = BuildCollections(payments, customers, bookings, collectionsNow, CollectionsFilter{Search: "5550002"})
	require.Len(t, accounts, 1)
	assert.Equal(t, "Eli Gray", accounts[0].Customer.Name)
}

func TestBuildCollections_SortedByDaysOverdueDescending(t *testing.T) {
	customers := []models.Customer{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	bookings := []models.Booking{
		{ID: 1, CustomerID: 1, StartDate: "2026-01-01", Status: models.BookingStatusActive},
		{ID: 2, CustomerID: 2, StartDate: "2026-01-01", Status: models.BookingStatusActive},
		{ID: 3, CustomerID: 3, StartDate: "2026-01-01", Status: models.BookingStatusActive},
	}
	payments := []models.Payment{
		pendingPayment(1, 1, 100, collectionsNow.AddDate(0, 0, -10)),
		pendingPayment(2, 2, 100, collectionsNow.AddDate(0, 0, -70)),
		pendingPayment(3, 3, 100, collectionsNow.AddDate(0, 0, -40)),
	}

	accounts := BuildCollections(payments, customers, bookings, collectionsNow, CollectionsFilter{})

	require.Len(t, accounts, 3)
	assert.Equal(t, 70, accounts[0].DaysOverdue)
	assert.Equal(t, 40, accounts[1].DaysOverdue)
	assert.Equal(t, 10, accounts[2].DaysOverdue)
}

func TestDaysOverdue_FutureDatedPaymentGoesNegative(t *testing.T) {
	created := collectionsNow.Add(36 * time.Hour)
	assert.Equal(t, -2, DaysOverdue(created, collectionsNow))

	// Negative values still land in the 0-30 bucket.
	customers := []models.Customer{{ID: 1, Name: "Future"}}
	bookings := []models.Booking{{ID: 1, CustomerID: 1, StartDate: "2026-01-01", Status: models.BookingStatusActive}}
	payments := []models.Payment{pendingPayment(1, 1, 100, created)}

	accounts := BuildCollections(payments, customers, bookings, collectionsNow, CollectionsFilter{DaysOverdue: "0-30"})
	require.Len(t, accounts, 1)
	assert.Equal(t, -2, accounts[0].DaysOverdue)
	assert.Equal(t, "Follow Up", accounts[0].Status)
}

func TestBuildCollections_EmptyInputs(t *testing.T) {
	accounts := BuildCollections(nil, nil, nil, collectionsNow, CollectionsFilter{})
	assert.Empty(t, accounts)
}
