package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/timezone"
)

// Service manda recordatorios por SMS/WhatsApp a los clientes con turno
// para el día siguiente. Corre todos los días a las 9.
type Service struct {
	db     *gorm.DB
	cfg    *config.Config
	client *twilio.RestClient
	cron   *cron.Cron
}

func New(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:  db,
		cfg: cfg,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
	}
}

func (s *Service) Start() {
	if s.cfg.TwilioAccountSID == "" || s.cfg.TwilioFrom == "" {
		log.Println("reminders disabled: twilio not configured")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", s.SendTomorrowReminders); err != nil {
		log.Printf("failed to schedule reminders: %v", err)
		return
	}
	c.Start()
	s.cron = c

	log.Println("Reminder scheduler started")
}

func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Service) SendTomorrowReminders() {
	loc := timezone.Location(s.cfg.Timezone)
	now := time.Now().In(loc)

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	end := start.Add(24 * time.Hour)

	var aps []models.Appointment
	if err := s.db.
		Preload("Client").
		Preload("Treatment").
		Where(
			"status IN ? AND start_time >= ? AND start_time < ?",
			[]string{string(schedule.StatusReserved), string(schedule.StatusConfirmed)},
			start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}

	sent := 0
	for _, ap := range aps {
		if ap.Client.Phone == "" {
			continue
		}

		body := fmt.Sprintf(
			"Hola %s! Te recordamos tu turno de %s mañana a las %s (box %d).",
			ap.Client.FullName,
			ap.Treatment.Name,
			ap.StartTime.In(loc).Format("15:04"),
			ap.Box,
		)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(ap.Client.Phone)
		params.SetFrom(s.cfg.TwilioFrom)
		params.SetBody(body)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			log.Printf("reminder to %s failed: %v", ap.Client.Phone, err)
			continue
		}
		sent++
	}

	log.Printf("reminders sent: %d/%d", sent, len(aps))
}
