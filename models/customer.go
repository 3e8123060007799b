package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Customer struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Email   string  `gorm:"not null" json:"email"`
	Phone   string  `gorm:"not null" json:"phone"`
	Address *string `json:"address"`

	// Gate access code, stored as entered so managers can read it back.
	AccessCode *string `json:"accessCode"`

	AccountStatus          string `gorm:"type:varchar(20);not null;default:'enabled'" json:"accountStatus"`
	RecurringBillingStatus string `gorm:"type:varchar(20);not null;default:'not_activated'" json:"recurringBillingStatus"`

	AutopayEnabled bool  `gorm:"not null;default:false" json:"autopayEnabled"`
	AutopayMethod  JSONB `gorm:"type:jsonb" json:"autopayMethod"`
	AutopayDay     *int  `json:"autopayDay"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// Custom JSONB type for the autopay payment-method descriptor
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
