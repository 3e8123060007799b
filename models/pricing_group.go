package models

type PricingGroup struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description"`
	Multiplier  float64 `gorm:"type:decimal(4,2);not null" json:"multiplier"`
}
