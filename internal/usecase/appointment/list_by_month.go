package appointment

import (
	"context"
	"time"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/dto"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo schedule.Repository
	cfg  *config.Config
}

func NewListAppointmentsByMonth(
	repo schedule.Repository,
	cfg *config.Config,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo, cfg: cfg}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.cfg.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}
