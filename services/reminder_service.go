// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cleanplan-backend/models"
	"cleanplan-backend/storage"
	"cleanplan-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ReminderService sends each user a morning digest of the cleanings scheduled
// for that day.
type ReminderService struct {
	store   *storage.Storage
	client  *twilio.RestClient
	enabled bool
}

func NewReminderService(store *storage.Storage) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		store:   store,
		enabled: accountSid != "" && authToken != "",
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	if !s.enabled {
		utils.InfoLogger.Info("Twilio not configured, reminder scheduler disabled")
		return
	}

	c := cron.New()

	// Run every day at 7 AM
	c.AddFunc("0 7 * * *", s.SendDailyReminders)

	c.Start()
	utils.InfoLogger.Info("Cleaning reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	utils.InfoLogger.Info("Starting daily reminder processing...")

	users, err := s.store.ListUsers()
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to fetch users: %v", err)
		return
	}

	for i := range users {
		s.ProcessUserReminders(&users[i])
	}

	utils.InfoLogger.Info("Daily reminder processing completed")
}

func (s *ReminderService) ProcessUserReminders(user *models.User) {
	if user.Phone == "" {
		return
	}

	now := time.Now()
	apartments, err := s.store.ListApartmentsByDate(user.ID, now.Year(), now.Month(), now.Day())
	if err != nil {
		utils.ErrorLogger.Errorf("User %s: failed to fetch today's apartments: %v", user.ID, err)
		return
	}
	if len(apartments) == 0 {
		return
	}

	message := buildDigest(apartments)

	// Use WhatsApp for E.164 numbers, plain SMS otherwise
	channel := "sms"
	to := user.Phone
	if strings.HasPrefix(user.Phone, "+") {
		to = "whatsapp:" + user.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		utils.ErrorLogger.Errorf("Failed to send reminder to %s: %v", user.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		utils.InfoLogger.Infof("Reminder sent to %s, SID: %s", user.Phone, *resp.Sid)
	} else {
		utils.InfoLogger.Infof("Reminder sent to %s, but no SID returned", user.Phone)
	}

	for _, apartment := range apartments {
		reminderLog := models.ReminderLog{
			UserID:       user.ID,
			ApartmentID:  apartment.ID,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       time.Now(),
		}
		if err := s.store.CreateReminderLog(&reminderLog); err != nil {
			utils.ErrorLogger.Errorf("Failed to log reminder for apartment %s: %v", apartment.ID, err)
		}
	}
}

func buildDigest(apartments []models.Apartment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cleanings scheduled today (%d):", len(apartments))
	for _, apartment := range apartments {
		b.WriteString("\n- ")
		b.WriteString(apartment.Name)
		if apartment.StartTime != nil {
			b.WriteString(" at ")
			b.WriteString(*apartment.StartTime)
		}
	}
	return b.String()
}
