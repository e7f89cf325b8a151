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

// UpdateAppointmentInput cubre tanto el modal de edición como el
// reagendado por drag-and-drop (fecha/hora/box nuevos).
type UpdateAppointmentInput struct {
	SubTreatmentID uint

	Date string
	Time string
	Box  int

	Price       *float64
	Deposit     float64
	Notes       string
	MultiClient bool
}

type UpdateAppointment struct {
	repo  schedule.Repository
	cache *cache.Cache
	audit Auditor
	cfg   *config.Config
}

func NewUpdateAppointment(
	repo schedule.Repository,
	c *cache.Cache,
	auditor Auditor,
	cfg *config.Config,
) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, cache: c, audit: auditor, cfg: cfg}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	cur := schedule.Status(ap.Status)
	if cur == schedule.StatusCancelled || cur == schedule.StatusCompleted {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	oldDate := ap.StartTime.Format(dateLayout)

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

	sub, err := uc.repo.GetSubTreatment(ctx, in.SubTreatmentID)
	if err != nil || sub.TreatmentID != ap.TreatmentID {
		return nil, httperr.ErrBusiness("sub_treatment_not_found")
	}

	durationMin := sub.DurationMin
	if durationMin <= 0 {
		durationMin = int(schedule.DefaultBusyDuration / time.Minute)
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	rows, err := uc.repo.ListWindows(ctx, ap.TreatmentID, start)
	if err != nil {
		return nil, err
	}

	win := schedule.CoveringWindow(anchorWindows(start, rows), in.Box, start, end)
	if win == nil {
		return nil, httperr.ErrBusiness("fuera_de_disponibilidad")
	}

	capacity := 1
	if in.MultiClient && win.MaxClients > 1 {
		capacity = win.MaxClients
	}

	ap.SubTreatmentID = sub.ID
	ap.StartTime = start
	ap.EndTime = end
	ap.Box = in.Box
	ap.Deposit = in.Deposit
	ap.Notes = in.Notes
	ap.MultiClient = in.MultiClient

	ap.Price = sub.Price
	if in.Price != nil {
		ap.Price = *in.Price
	}

	if err := uc.repo.RescheduleAppointment(ctx, ap, capacity); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.InvalidateDate(ctx, ap.TreatmentID, oldDate)
	uc.cache.InvalidateDate(ctx, ap.TreatmentID, in.Date)

	return ap, nil
}
