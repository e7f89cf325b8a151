package appointment

import (
	"time"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/audit"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/dto"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

// Auditor desacopla los use cases del dispatcher concreto.
type Auditor interface {
	Dispatch(ev audit.Event)
}

const dateLayout = "2006-01-02"

// anchorWindows proyecta las ventanas persistidas (HH:MM) sobre la fecha
// consultada, en la location de esa fecha.
func anchorWindows(date time.Time, rows []models.AvailabilityWindow) []schedule.Window {
	out := make([]schedule.Window, 0, len(rows))
	for _, w := range rows {
		out = append(out, schedule.Window{
			Start:      schedule.AnchorHM(date, w.StartTime),
			End:        schedule.AnchorHM(date, w.EndTime),
			Boxes:      w.BoxList(),
			MaxClients: w.MaxClients,
		})
	}
	return out
}

func dayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

func toListDTO(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			StartTime:        ap.StartTime,
			EndTime:          ap.EndTime,
			Box:              ap.Box,
			Status:           ap.Status,
			ClientName:       ap.Client.FullName,
			TreatmentName:    ap.Treatment.Name,
			SubTreatmentName: ap.SubTreatment.Name,
			Price:            ap.Price,
			Deposit:          ap.Deposit,
		})
	}
	return out
}

func busyFromAppointments(aps []models.Appointment) []schedule.Busy {
	busy := make([]schedule.Busy, 0, len(aps))
	for _, ap := range aps {
		if ap.Status == string(schedule.StatusCancelled) {
			continue
		}
		busy = append(busy, schedule.Busy{
			Box:   ap.Box,
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}
	return busy
}
