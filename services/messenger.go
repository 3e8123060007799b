// services/messenger.go
package services

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"storemate-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// Messenger sends SMS to tenants via Twilio and records every attempt as a
// notification log row.
type Messenger struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewMessenger(db *gorm.DB) *Messenger {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &Messenger{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// RenderTemplate substitutes the placeholders a manager may use in a
// notification template body.
func RenderTemplate(content string, customer models.Customer, amountDue, daysOverdue int) string {
	message := strings.ReplaceAll(content, "[CustomerName]", customer.Name)
	message = strings.ReplaceAll(message, "[AmountDue]", "$"+strconv.Itoa(amountDue))
	message = strings.ReplaceAll(message, "[DaysOverdue]", strconv.Itoa(daysOverdue))
	return message
}

// SendToCustomer delivers one SMS and logs the outcome. templateID may be 0
// for ad-hoc manager messages.
func (m *Messenger) SendToCustomer(customer models.Customer, body string, templateID uint) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetBody(body)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, sendErr := m.client.Api.CreateMessage(params)

	status := "sent"
	var errorMsg *string
	if sendErr != nil {
		log.Printf("Failed to send message to %s: %v", customer.Phone, sendErr)
		status = "failed"
		msg := sendErr.Error()
		errorMsg = &msg
	} else if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", customer.Phone, *resp.Sid)
	}

	now := time.Now()
	entry := models.NotificationLog{
		TemplateID:   templateID,
		CustomerID:   customer.ID,
		Status:       status,
		SentAt:       &now,
		ErrorMessage: errorMsg,
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log notification for customer %d: %v", customer.ID, err)
	}

	return sendErr
}

// MassMessage sends the body to every enabled customer and reports how many
// sends succeeded and failed.
func (m *Messenger) MassMessage(body string) (sent, failed int, err error) {
	var customers []models.Customer
	if err := m.db.Where("account_status = ?", "enabled").Find(&customers).Error; err != nil {
		return 0, 0, err
	}

	for _, customer := range customers {
		if sendErr := m.SendToCustomer(customer, body, 0); sendErr != nil {
			failed++
		} else {
			sent++
		}
	}
	return sent, failed, nil
}

// SelectMessage sends the body to the listed tenants only. Unknown ids are
// skipped and counted as failures.
func (m *Messenger) SelectMessage(body string, tenantIDs []uint) (sent, failed int, err error) {
	var customers []models.Customer
	if err := m.db.Where("id IN ?", tenantIDs).Find(&customers).Error; err != nil {
		return 0, 0, err
	}

	found := make(map[uint]bool, len(customers))
	for _, customer := range customers {
		found[customer.ID] = true
		if sendErr := m.SendToCustomer(customer, body, 0); sendErr != nil {
			failed++
		} else {
			sent++
		}
	}
	for _, id := range tenantIDs {
		if !found[id] {
			failed++
		}
	}
	return sent, failed, nil
}
