package models

import "time"

// Lead statuses; converted and lost are terminal.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

type Lead struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"not null" json:"email"`
	Phone            string    `gorm:"not null" json:"phone"`
	Status           string    `gorm:"type:varchar(20);not null" json:"status"`
	Notes            *string   `json:"notes"`
	UnitTypeInterest *string   `json:"unitTypeInterest"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}
