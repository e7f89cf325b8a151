package appointment

import (
	"context"
	"time"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/cache"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
)

type GetAvailability struct {
	repo  schedule.Repository
	cache *cache.Cache
	cfg   *config.Config
}

func NewGetAvailability(
	repo schedule.Repository,
	c *cache.Cache,
	cfg *config.Config,
) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c, cfg: cfg}
}

// Execute resuelve los slots libres (horario, box) para un tratamiento,
// fecha y duración. Sin ventanas para la fecha devuelve lista vacía:
// es un estado visible para el usuario, no un error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	treatmentID uint,
	date time.Time,
	durationMin int,
) ([]schedule.Slot, error) {

	if _, err := uc.repo.GetTreatment(ctx, treatmentID); err != nil {
		return nil, httperr.ErrBusiness("treatment_not_found")
	}

	dateStr := date.Format(dateLayout)
	if slots, ok := uc.cache.GetAvailability(ctx, treatmentID, dateStr, durationMin); ok {
		return slots, nil
	}

	rows, err := uc.repo.ListWindows(ctx, treatmentID, date)
	if err != nil {
		return nil, err
	}

	windows := anchorWindows(date, rows)

	dayStart, dayEnd := dayRange(date)
	aps, err := uc.repo.ListAppointmentsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	grid := schedule.Grid{
		Open:  schedule.AnchorHM(date, uc.cfg.BusinessOpen),
		Close: schedule.AnchorHM(date, uc.cfg.BusinessClose),
		Step:  time.Duration(uc.cfg.SlotStepMinutes) * time.Minute,
		Boxes: uc.cfg.BoxCount,
	}

	slots := schedule.Resolve(
		grid,
		time.Duration(durationMin)*time.Minute,
		windows,
		busyFromAppointments(aps),
	)

	uc.cache.SetAvailability(ctx, treatmentID, dateStr, durationMin, slots)

	return slots, nil
}
