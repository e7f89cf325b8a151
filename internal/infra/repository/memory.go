package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

// MemoryScheduleRepository implementa schedule.Repository en memoria.
// Se usa en tests y reproduce la misma semántica de conflicto que la
// versión gorm (box + intervalos semiabiertos + capacidad).
type MemoryScheduleRepository struct {
	mu     sync.Mutex
	nextID uint

	treatments    map[uint]models.Treatment
	subTreatments map[uint]models.SubTreatment
	clients       map[uint]models.Client
	windows       map[uint]models.AvailabilityWindow
	appointments  map[uint]models.Appointment
}

func NewMemoryScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{
		treatments:    make(map[uint]models.Treatment),
		subTreatments: make(map[uint]models.SubTreatment),
		clients:       make(map[uint]models.Client),
		windows:       make(map[uint]models.AvailabilityWindow),
		appointments:  make(map[uint]models.Appointment),
	}
}

func (r *MemoryScheduleRepository) id() uint {
	r.nextID++
	return r.nextID
}

// -------- Seed helpers --------

func (r *MemoryScheduleRepository) AddTreatment(t models.Treatment) models.Treatment {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == 0 {
		t.ID = r.id()
	}
	r.treatments[t.ID] = t
	return t
}

func (r *MemoryScheduleRepository) AddSubTreatment(st models.SubTreatment) models.SubTreatment {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st.ID == 0 {
		st.ID = r.id()
	}
	r.subTreatments[st.ID] = st
	return st
}

func (r *MemoryScheduleRepository) AddClient(c models.Client) models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.id()
	}
	r.clients[c.ID] = c
	return c
}

func (r *MemoryScheduleRepository) AddWindow(w models.AvailabilityWindow) models.AvailabilityWindow {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == 0 {
		w.ID = r.id()
	}
	if w.MaxClients <= 0 {
		w.MaxClients = 1
	}
	r.windows[w.ID] = w
	return w
}

func (r *MemoryScheduleRepository) AddAppointment(ap models.Appointment) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == 0 {
		ap.ID = r.id()
	}
	if ap.Status == "" {
		ap.Status = string(schedule.StatusReserved)
	}
	r.appointments[ap.ID] = ap
	return ap
}

// -------- schedule.Repository --------

func (r *MemoryScheduleRepository) GetTreatment(_ context.Context, id uint) (*models.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.treatments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *MemoryScheduleRepository) GetSubTreatment(_ context.Context, id uint) (*models.SubTreatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.subTreatments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &st, nil
}

func (r *MemoryScheduleRepository) GetClient(_ context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *MemoryScheduleRepository) ListWindows(
	_ context.Context,
	treatmentID uint,
	date time.Time,
) ([]models.AvailabilityWindow, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	out := make([]models.AvailabilityWindow, 0)
	for _, w := range r.windows {
		if w.TreatmentID != treatmentID {
			continue
		}
		if day.Before(w.StartDate) || day.After(w.EndDate) {
			continue
		}
		out = append(out, w)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *MemoryScheduleRepository) ListAppointmentsForDay(
	_ context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.Status == string(schedule.StatusCancelled) {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *MemoryScheduleRepository) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (r *MemoryScheduleRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
	capacity int,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.countOverlapping(ap, 0) >= capacity {
		return httperr.ErrBusiness("time_conflict")
	}

	ap.ID = r.id()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryScheduleRepository) RescheduleAppointment(
	_ context.Context,
	ap *models.Appointment,
	capacity int,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	if r.countOverlapping(ap, ap.ID) >= capacity {
		return httperr.ErrBusiness("time_conflict")
	}

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryScheduleRepository) countOverlapping(ap *models.Appointment, excludeID uint) int {
	count := 0
	for _, other := range r.appointments {
		if other.ID == excludeID || other.Box != ap.Box {
			continue
		}
		if other.Status == string(schedule.StatusCancelled) {
			continue
		}
		if other.StartTime.Before(ap.EndTime) && ap.StartTime.Before(other.EndTime) {
			count++
		}
	}
	return count
}

func (r *MemoryScheduleRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryScheduleRepository) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.appointments, id)
	return nil
}

func (r *MemoryScheduleRepository) ListAppointmentsForPeriod(
	_ context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		ap.Client = r.clients[ap.ClientID]
		ap.Treatment = r.treatments[ap.TreatmentID]
		ap.SubTreatment = r.subTreatments[ap.SubTreatmentID]
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// Compile-time check
var _ schedule.Repository = (*MemoryScheduleRepository)(nil)
