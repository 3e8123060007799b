package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     uint      `gorm:"index;not null" json:"bookingId"`
	Amount        int       `gorm:"not null" json:"amount"`
	Status        string    `gorm:"type:varchar(20);not null" json:"status"`
	TransactionID *string   `json:"transactionId"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}
