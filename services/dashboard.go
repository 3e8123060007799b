package services

import (
	"time"

	"storemate-backend/models"
	"storemate-backend/utils"
)

type RevenuePoint struct {
	Month   string `json:"month"` // e.g. "Jan 2026"
	Revenue int    `json:"revenue"`
}

type OccupancyPoint struct {
	Month string  `json:"month"`
	Rate  float64 `json:"rate"` // 0..1
}

type DueBuckets struct {
	DueToday  int `json:"dueToday"`
	Due1To7   int `json:"due1To7"`
	Due8To14  int `json:"due8To14"`
	Due15To30 int `json:"due15To30"`
}

// MonthlyRevenue sums completed payments per calendar month for two months
// back, one month back, and the current month, in that order.
func MonthlyRevenue(payments []models.Payment, now time.Time) []RevenuePoint {
	anchor := firstOfMonth(now)
	points := make([]RevenuePoint, 0, 3)
	for offset := 2; offset >= 0; offset-- {
		target := anchor.AddDate(0, -offset, 0)
		total := 0
		for _, p := range payments {
			if p.Status != models.PaymentStatusCompleted {
				continue
			}
			if p.CreatedAt.Month() == target.Month() && p.CreatedAt.Year() == target.Year() {
				total += p.Amount
			}
		}
		points = append(points, RevenuePoint{
			Month:   target.Format("Jan 2006"),
			Revenue: total,
		})
	}
	return points
}

// firstOfMonth pins month arithmetic to a safe day. Shifting from the 29th,
// 30th or 31st directly would normalize into the wrong month.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// RevenueChange is the month-over-month delta in percent. A zero previous
// month yields 0 by convention, never an error or infinity.
func RevenueChange(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// OccupancyHistory samples the occupancy rate once per month over the
// trailing 12 months, oldest first. A unit counts as occupied at a sample
// date when some booking interval [startDate, endDate-or-now] contains it.
func OccupancyHistory(units []models.Unit, bookings []models.Booking, now time.Time) []OccupancyPoint {
	anchor := firstOfMonth(now)
	points := make([]OccupancyPoint, 0, 12)
	for offset := 11; offset >= 0; offset-- {
		at := anchor.AddDate(0, -offset, 0)
		points = append(points, OccupancyPoint{
			Month: at.Format("Jan 2006"),
			Rate:  OccupancyRate(units, bookings, at, now),
		})
	}
	return points
}

// OccupancyRate is the fraction of units occupied at the given date.
// Zero units yields 0.
func OccupancyRate(units []models.Unit, bookings []models.Booking, at, now time.Time) float64 {
	if len(units) == 0 {
		return 0
	}
	occupied := 0
	for _, u := range units {
		for _, b := range bookings {
			if b.UnitID != u.ID {
				continue
			}
			start, ok := utils.ParseDate(b.StartDate)
			if !ok || at.Before(start) {
				continue
			}
			end := now
			if b.EndDate != nil {
				if parsed, ok := utils.ParseDate(*b.EndDate); ok {
					end = parsed
				}
			}
			if !at.After(end) {
				occupied++
				break
			}
		}
	}
	return float64(occupied) / float64(len(units))
}

// PaymentDueBuckets partitions pending payments coming due within 30 days.
// The creation date stands in for a due date; there is no separate due-date
// field on payments. Already-overdue payments belong to collections, not
// here.
func PaymentDueBuckets(payments []models.Payment, now time.Time) DueBuckets {
	var buckets DueBuckets
	for _, p := range payments {
		if p.Status != models.PaymentStatusPending {
			continue
		}
		days := utils.DaysBetween(now, p.CreatedAt)
		switch {
		case days == 0:
			buckets.DueToday++
		case days >= 1 && days <= 7:
			buckets.Due1To7++
		case days >= 8 && days <= 14:
			buckets.Due8To14++
		case days >= 15 && days <= 30:
			buckets.Due15To30++
		}
	}
	return buckets
}
