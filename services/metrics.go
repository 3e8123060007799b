package services

import (
	"time"

	"storemate-backend/models"
)

// FacilityMetrics is the rollup snapshot the manager console polls. Computed
// fresh from the entity sets on every request; nothing is persisted.
type FacilityMetrics struct {
	FacilityID       uint      `json:"facilityId"`
	FacilityName     string    `json:"facilityName"`
	FacilityCode     string    `json:"facilityCode"`
	TotalUnits       int       `json:"totalUnits"`
	AvailableUnits   int       `json:"availableUnits"`
	OccupiedUnits    int       `json:"occupiedUnits"`
	TotalRevenue     int       `json:"totalRevenue"`
	PendingPayments  int       `json:"pendingPayments"`
	OverduePayments  int       `json:"overduePayments"`
	TotalCustomers   int       `json:"totalCustomers"`
	ActiveCustomers  int       `json:"activeCustomers"`
	OverdueCustomers int       `json:"overdueCustomers"`
	TotalBookings    int       `json:"totalBookings"`
	ActiveBookings   int       `json:"activeBookings"`
	TotalLeads       int       `json:"totalLeads"`
	ConvertedLeads   int       `json:"convertedLeads"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

func BuildFacilityMetrics(facilityID uint, name, code string,
	units []models.Unit, customers []models.Customer, bookings []models.Booking,
	payments []models.Payment, leads []models.Lead, now time.Time) FacilityMetrics {

	m := FacilityMetrics{
		FacilityID:     facilityID,
		FacilityName:   name,
		FacilityCode:   code,
		TotalUnits:     len(units),
		TotalCustomers: len(customers),
		TotalBookings:  len(bookings),
		TotalLeads:     len(leads),
		LastUpdated:    now,
	}

	for _, u := range units {
		if u.IsOccupied {
			m.OccupiedUnits++
		} else {
			m.AvailableUnits++
		}
	}
	for _, c := range customers {
		if c.AccountStatus == "enabled" {
			m.ActiveCustomers++
		}
	}
	for _, b := range bookings {
		if b.Status == models.BookingStatusActive {
			m.ActiveBookings++
		}
	}
	for _, l := range leads {
		if l.Status == models.LeadStatusConverted {
			m.ConvertedLeads++
		}
	}
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusCompleted:
			m.TotalRevenue += p.Amount
		case models.PaymentStatusPending:
			m.PendingPayments += p.Amount
			if DaysOverdue(p.CreatedAt, now) > 0 {
				m.OverduePayments += p.Amount
			}
		}
	}

	// Overdue customers come from the same derivation as the collections queue.
	m.OverdueCustomers = len(BuildCollections(payments, customers, bookings, now, CollectionsFilter{}))

	return m
}
