package models

// UnitTypes lists the rentable unit categories, smallest first.
var UnitTypes = []string{"small", "medium", "large", "extra-large"}

type Unit struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Type           string `gorm:"type:varchar(20);not null" json:"type"`
	Size           string `gorm:"not null" json:"size"`
	Price          int    `gorm:"not null" json:"price"` // monthly, whole dollars
	IsOccupied     bool   `gorm:"not null;default:false" json:"isOccupied"`
	Location       string `gorm:"not null" json:"location"`
	PricingGroupID *uint  `gorm:"index" json:"pricingGroupId"`
	CustomerID     *uint  `gorm:"index" json:"customerId"`
}
