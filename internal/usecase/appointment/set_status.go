package appointment

import (
	"context"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/audit"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/cache"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/timezone"
)

type SetAppointmentStatus struct {
	repo  schedule.Repository
	cache *cache.Cache
	audit Auditor
	cfg   *config.Config
}

func NewSetAppointmentStatus(
	repo schedule.Repository,
	c *cache.Cache,
	auditor Auditor,
	cfg *config.Config,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{repo: repo, cache: c, audit: auditor, cfg: cfg}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	next schedule.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := schedule.CanTransition(schedule.Status(ap.Status), next); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.cfg.Timezone)
	ap.Status = string(next)

	switch next {
	case schedule.StatusCancelled:
		ap.CancelledAt = &now
	case schedule.StatusCompleted:
		ap.CompletedAt = &now
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_" + string(next),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Cancelar libera el slot, así que hay que invalidar la fecha.
	if next == schedule.StatusCancelled {
		uc.cache.InvalidateDate(ctx, ap.TreatmentID, ap.StartTime.Format(dateLayout))
	}

	return ap, nil
}
