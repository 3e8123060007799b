package models

const (
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking ties a customer to a unit over a time interval. Dates are stored
// as "YYYY-MM-DD" strings, matching the wire format the dashboard sends.
type Booking struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	UnitID          uint     `gorm:"index;not null" json:"unitId"`
	CustomerID      uint     `gorm:"index;not null" json:"customerId"`
	StartDate       string   `gorm:"not null" json:"startDate"`
	EndDate         *string  `json:"endDate"`
	Status          string   `gorm:"type:varchar(20);not null" json:"status"`
	MonthlyRate     float64  `gorm:"type:decimal(10,2);not null" json:"monthlyRate"`
	NextBillDate    string   `gorm:"not null" json:"nextBillDate"`
	InsuranceAmount *float64 `gorm:"type:decimal(10,2)" json:"insuranceAmount"`
}
