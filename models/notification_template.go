package models

import "time"

// Template triggers recognized by the scheduler and the UI filters.
const (
	TriggerPaymentLate = "payment_late"
	TriggerPaymentDue  = "payment_due"
	TriggerLienWarning = "lien_warning"
	TriggerLienFiled   = "lien_filed"
	TriggerCustom      = "custom"
)

type NotificationTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"` // email or sms
	Subject   *string   `json:"subject"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Trigger   string    `gorm:"type:varchar(20);not null" json:"trigger"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}
