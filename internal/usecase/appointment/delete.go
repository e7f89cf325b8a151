package appointment

import (
	"context"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/audit"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/cache"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
)

// Borrado físico, sólo vía acción explícita del back office.
type DeleteAppointment struct {
	repo  schedule.Repository
	cache *cache.Cache
	audit Auditor
}

func NewDeleteAppointment(
	repo schedule.Repository,
	c *cache.Cache,
	auditor Auditor,
) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, cache: c, audit: auditor}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.InvalidateDate(ctx, ap.TreatmentID, ap.StartTime.Format(dateLayout))

	return nil
}
