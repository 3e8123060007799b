// services/reminder_service.go
package services

import (
	"log"
	"time"

	"storemate-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderService drives the daily payment-late reminder run.
type ReminderService struct {
	db        *gorm.DB
	messenger *Messenger
}

func NewReminderService(db *gorm.DB, messenger *Messenger) *ReminderService {
	return &ReminderService{db: db, messenger: messenger}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendOverdueReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendOverdueReminders texts every tenant on the collections queue using the
// active payment_late SMS template. Missing template means nothing to send.
func (s *ReminderService) SendOverdueReminders() {
	log.Println("Starting overdue reminder processing...")

	var template models.NotificationTemplate
	if err := s.db.Where(`"trigger" = ? AND type = ? AND is_active = true`, models.TriggerPaymentLate, "sms").
		First(&template).Error; err != nil {
		log.Printf("No active payment_late template: %v", err)
		return
	}

	var payments []models.Payment
	var customers []models.Customer
	var bookings []models.Booking
	if err := s.db.Find(&payments).Error; err != nil {
		log.Printf("Failed to fetch payments: %v", err)
		return
	}
	if err := s.db.Find(&customers).Error; err != nil {
		log.Printf("Failed to fetch customers: %v", err)
		return
	}
	if err := s.db.Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch bookings: %v", err)
		return
	}

	accounts := BuildCollections(payments, customers, bookings, time.Now(), CollectionsFilter{})
	for _, account := range accounts {
		message := RenderTemplate(template.Content, account.Customer, account.Balance, account.DaysOverdue)
		s.messenger.SendToCustomer(account.Customer, message, template.ID)
	}

	log.Printf("Overdue reminder processing completed, %d accounts", len(accounts))
}
