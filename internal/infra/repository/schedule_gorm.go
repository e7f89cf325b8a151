package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *ScheduleGormRepository) GetTreatment(
	ctx context.Context,
	id uint,
) (*models.Treatment, error) {

	var t models.Treatment
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ScheduleGormRepository) GetSubTreatment(
	ctx context.Context,
	id uint,
) (*models.SubTreatment, error) {

	var st models.SubTreatment
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Disponibilidad
// --------------------------------------------------

func (r *ScheduleGormRepository) ListWindows(
	ctx context.Context,
	treatmentID uint,
	date time.Time,
) ([]models.AvailabilityWindow, error) {

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where(
			"treatment_id = ? AND start_date <= ? AND end_date >= ?",
			treatmentID, day, day,
		).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("box", "start_time", "end_time", "status").
		Where(
			"status <> 'cancelled' AND start_time >= ? AND start_time < ?",
			dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Turnos
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// CreateAppointment encierra el check-and-reserve en una transacción:
// los turnos solapados del box se leen con FOR UPDATE, así dos sesiones
// reservando el mismo slot no pueden insertarse las dos.
func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	capacity int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		overlapping, err := lockOverlapping(tx, ap, 0)
		if err != nil {
			return err
		}

		if len(overlapping) >= capacity {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(ap).Error
	})
}

func (r *ScheduleGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
	capacity int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		overlapping, err := lockOverlapping(tx, ap, ap.ID)
		if err != nil {
			return err
		}

		if len(overlapping) >= capacity {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Save(ap).Error
	})
}

func lockOverlapping(tx *gorm.DB, ap *models.Appointment, excludeID uint) ([]models.Appointment, error) {
	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"box = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			ap.Box, ap.EndTime, ap.StartTime,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var overlapping []models.Appointment
	if err := q.Find(&overlapping).Error; err != nil {
		return nil, err
	}
	return overlapping, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Treatment").
		Preload("SubTreatment").
		Where(
			"start_time >= ? AND start_time < ?",
			start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
