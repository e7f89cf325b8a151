package appointment

import (
	"context"
	"time"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/audit"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/cache"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/timezone"
)

type CreateAppointmentInput struct {
	ClientID       uint
	TreatmentID    uint
	SubTreatmentID uint

	Date string
	Time string
	Box  int

	Price       *float64
	Deposit     float64
	Notes       string
	MultiClient bool
}

type CreateAppointment struct {
	repo  schedule.Repository
	cache *cache.Cache
	audit Auditor
	cfg   *config.Config
}

func NewCreateAppointment(
	repo schedule.Repository,
	c *cache.Cache,
	auditor Auditor,
	cfg *config.Config,
) *CreateAppointment {
	return &CreateAppointment{repo: repo, cache: c, audit: auditor, cfg: cfg}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	userID uint,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(uc.cfg.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if in.Box < 1 || in.Box > uc.cfg.BoxCount {
		return nil, httperr.ErrBusiness("invalid_box")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if _, err := uc.repo.GetTreatment(ctx, in.TreatmentID); err != nil {
		return nil, httperr.ErrBusiness("treatment_not_found")
	}

	sub, err := uc.repo.GetSubTreatment(ctx, in.SubTreatmentID)
	if err != nil || sub.TreatmentID != in.TreatmentID {
		return nil, httperr.ErrBusiness("sub_treatment_not_found")
	}

	durationMin := sub.DurationMin
	if durationMin <= 0 {
		durationMin = int(schedule.DefaultBusyDuration / time.Minute)
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	rows, err := uc.repo.ListWindows(ctx, in.TreatmentID, start)
	if err != nil {
		return nil, err
	}

	win := schedule.CoveringWindow(anchorWindows(start, rows), in.Box, start, end)
	if win == nil {
		return nil, httperr.ErrBusiness("fuera_de_disponibilidad")
	}

	// Un solapamiento en el mismo box sólo se admite en turnos
	// multi-cliente, hasta el cupo de la ventana.
	capacity := 1
	if in.MultiClient && win.MaxClients > 1 {
		capacity = win.MaxClients
	}

	price := sub.Price
	if in.Price != nil {
		price = *in.Price
	}

	ap := &models.Appointment{
		ClientID:       client.ID,
		TreatmentID:    in.TreatmentID,
		SubTreatmentID: sub.ID,
		StartTime:      start,
		EndTime:        end,
		Box:            in.Box,
		Status:         string(schedule.InitialStatus()),
		Price:          price,
		Deposit:        in.Deposit,
		Notes:          in.Notes,
		MultiClient:    in.MultiClient,
	}

	if err := uc.repo.CreateAppointment(ctx, ap, capacity); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.InvalidateDate(ctx, in.TreatmentID, in.Date)

	return ap, nil
}
