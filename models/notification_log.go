package models

import "time"

type NotificationLog struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TemplateID   uint       `gorm:"index;not null" json:"templateId"`
	CustomerID   uint       `gorm:"index;not null" json:"customerId"`
	Status       string     `gorm:"type:varchar(20);not null" json:"status"` // sent, failed
	SentAt       *time.Time `json:"sentAt"`
	ErrorMessage *string    `json:"errorMessage"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}
