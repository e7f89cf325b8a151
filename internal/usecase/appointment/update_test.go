package appointment

import (
	"context"
	"testing"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
)

func TestUpdateAppointment_Reschedule(t *testing.T) {
	f := newFixture(t)
	seed := seedAppointment(t, f)
	uc := NewUpdateAppointment(f.repo, f.cache, nopAuditor{}, f.cfg)

	ap, err := uc.Execute(context.Background(), 1, seed.ID, UpdateAppointmentInput{
		SubTreatmentID: f.sub.ID,
		Date:           "2026-03-13",
		Time:           "10:30",
		Box:            2,
	})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	if ap.Box != 2 {
		t.Fatalf("expected box 2, got %d", ap.Box)
	}
	if got := ap.StartTime.Format("2006-01-02 15:04"); got != "2026-03-13 10:30" {
		t.Fatalf("unexpected start time %s", got)
	}
}

func TestUpdateAppointment_RevalidatesWindowAndConflict(t *testing.T) {
	f := newFixture(t)
	seed := seedAppointment(t, f)
	uc := NewUpdateAppointment(f.repo, f.cache, nopAuditor{}, f.cfg)

	_, err := uc.Execute(context.Background(), 1, seed.ID, UpdateAppointmentInput{
		SubTreatmentID: f.sub.ID,
		Date:           "2026-03-12",
		Time:           "20:00",
		Box:            1,
	})
	if !httperr.IsBusiness(err, "fuera_de_disponibilidad") {
		t.Fatalf("expected fuera_de_disponibilidad, got %v", err)
	}

	// Otro turno ocupa 10:00-11:00 en box 2.
	create := NewCreateAppointment(f.repo, f.cache, nopAuditor{}, f.cfg)
	if _, err := create.Execute(context.Background(), 1, CreateAppointmentInput{
		ClientID:       f.client.ID,
		TreatmentID:    f.treat.ID,
		SubTreatmentID: f.sub.ID,
		Date:           "2026-03-12",
		Time:           "10:00",
		Box:            2,
	}); err != nil {
		t.Fatalf("seed second appointment: %v", err)
	}

	_, err = uc.Execute(context.Background(), 1, seed.ID, UpdateAppointmentInput{
		SubTreatmentID: f.sub.ID,
		Date:           "2026-03-12",
		Time:           "10:30",
		Box:            2,
	})
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
}

func TestUpdateAppointment_MoveWithinSameSlotDoesNotSelfConflict(t *testing.T) {
	f := newFixture(t)
	seed := seedAppointment(t, f)
	uc := NewUpdateAppointment(f.repo, f.cache, nopAuditor{}, f.cfg)

	// Correr media hora dentro del propio rango no debe chocar consigo mismo.
	if _, err := uc.Execute(context.Background(), 1, seed.ID, UpdateAppointmentInput{
		SubTreatmentID: f.sub.ID,
		Date:           "2026-03-12",
		Time:           "09:30",
		Box:            1,
	}); err != nil {
		t.Fatalf("self-overlapping reschedule should succeed: %v", err)
	}
}

func TestUpdateAppointment_RejectsTerminalStates(t *testing.T) {
	f := newFixture(t)
	seed := seedAppointment(t, f)

	status := NewSetAppointmentStatus(f.repo, f.cache, nopAuditor{}, f.cfg)
	if _, err := status.Execute(context.Background(), 1, seed.ID, schedule.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	uc := NewUpdateAppointment(f.repo, f.cache, nopAuditor{}, f.cfg)
	_, err := uc.Execute(context.Background(), 1, seed.ID, UpdateAppointmentInput{
		SubTreatmentID: f.sub.ID,
		Date:           "2026-03-13",
		Time:           "09:00",
		Box:            1,
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
