package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"storemate-backend/models"
)

// CollectionsAccount is one row of the collections work queue: a customer,
// their outstanding pending balance, and how long the oldest pending payment
// has been sitting.
type CollectionsAccount struct {
	Customer      models.Customer `json:"customer"`
	Balance       int             `json:"balance"`
	OldestPayment models.Payment  `json:"oldestPayment"`
	DaysOverdue   int             `json:"daysOverdue"`
	Status        string          `json:"status"`
}

// CollectionsFilter holds the optional work-queue filters. Empty or "all"
// values match everything; set filters combine with AND.
type CollectionsFilter struct {
	Search      string // case-insensitive substring over name/email/phone
	DaysOverdue string // "0-30", "31-60", "60+"
	Balance     string // "0-500", "501-1000", "1000+"
}

// BuildCollections derives the per-customer overdue summary from the full
// payment/customer/booking sets. It recomputes from scratch on every call;
// the collections are small and already in memory.
//
// A pending payment whose booking id resolves to nothing is dropped from all
// balances rather than treated as an error.
func BuildCollections(payments []models.Payment, customers []models.Customer, bookings []models.Booking, now time.Time, filter CollectionsFilter) []CollectionsAccount {
	bookingByID := make(map[uint]models.Booking, len(bookings))
	for _, b := range bookings {
		bookingByID[b.ID] = b
	}
	customerByID := make(map[uint]models.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}

	balances := make(map[uint]int)
	oldest := make(map[uint]models.Payment)
	for _, p := range payments {
		if p.Status != models.PaymentStatusPending {
			continue
		}
		booking, ok := bookingByID[p.BookingID]
		if !ok {
			continue // orphaned payment, excluded
		}
		customerID := booking.CustomerID
		if _, ok := customerByID[customerID]; !ok {
			continue
		}
		balances[customerID] += p.Amount
		if cur, ok := oldest[customerID]; !ok || p.CreatedAt.Before(cur.CreatedAt) {
			oldest[customerID] = p
		}
	}

	accounts := make([]CollectionsAccount, 0, len(balances))
	for customerID, balance := range balances {
		payment := oldest[customerID]
		days := DaysOverdue(payment.CreatedAt, now)
		account := CollectionsAccount{
			Customer:      customerByID[customerID],
			Balance:       balance,
			OldestPayment: payment,
			DaysOverdue:   days,
			Status:        collectionsStatus(days),
		}
		if !matchesFilter(account, filter) {
			continue
		}
		accounts = append(accounts, account)
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].DaysOverdue > accounts[j].DaysOverdue
	})
	return accounts
}

// DaysOverdue is the floored whole-day gap between a payment's creation time
// and now. Not clamped: a future-dated payment yields a negative value, which
// still sorts and falls into the 0-30 bucket.
func DaysOverdue(createdAt, now time.Time) int {
	return int(math.Floor(now.Sub(createdAt).Hours() / 24))
}

func collectionsStatus(daysOverdue int) string {
	switch {
	case daysOverdue > 60:
		return "Legal Action Required"
	case daysOverdue > 30:
		return "Urgent Collection"
	default:
		return "Follow Up"
	}
}

func matchesFilter(a CollectionsAccount, f CollectionsFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(a.Customer.Name + " " + a.Customer.Email + " " + a.Customer.Phone)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	switch f.DaysOverdue {
	case "", "all":
	case "0-30":
		if a.DaysOverdue > 30 {
			return false
		}
	case "31-60":
		if a.DaysOverdue <= 30 || a.DaysOverdue > 60 {
			return false
		}
	case "60+":
		if a.DaysOverdue <= 60 {
			return false
		}
	}

	switch f.Balance {
	case "", "all":
	case "0-500":
		if a.Balance > 500 {
			return false
		}
	case "501-1000":
		if a.Balance <= 500 || a.Balance > 1000 {
			return false
		}
	case "1000+":
		if a.Balance <= 1000 {
			return false
		}
	}

	return true
}
