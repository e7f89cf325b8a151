package schedule

import (
	"context"
	"time"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetTreatment(
		ctx context.Context,
		id uint,
	) (*models.Treatment, error)

	GetSubTreatment(
		ctx context.Context,
		id uint,
	) (*models.SubTreatment, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Disponibilidad --------
	ListWindows(
		ctx context.Context,
		treatmentID uint,
		date time.Time,
	) ([]models.AvailabilityWindow, error)

	ListAppointmentsForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Turnos --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// CreateAppointment serializa el check-and-reserve: cuenta los turnos
	// solapados del box bajo lock y recién ahí inserta. capacity es la
	// cantidad de clientes simultáneos que admite el slot.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		capacity int,
	) error

	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
		capacity int,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
