package appointment

import (
	"context"
	"testing"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

func seedAppointment(t *testing.T, f *fixture) models.Appointment {
	t.Helper()

	uc := NewCreateAppointment(f.repo, f.cache, nopAuditor{}, f.cfg)
	ap, err := uc.Execute(context.Background(), 1, CreateAppointmentInput{
		ClientID:       f.client.ID,
		TreatmentID:    f.treat.ID,
		SubTreatmentID: f.sub.ID,
		Date:           "2026-03-12",
		Time:           "09:00",
		Box:            1,
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return *ap
}

func TestSetStatus_ConfirmAndComplete(t *testing.T) {
	f := newFixture(t)
	seed := seedAppointment(t, f)
	uc := NewSetAppointmentStatus(f.repo, f.cache, nopAuditor{}, f.cfg)

	ap, err := uc.Execute(context.Background(), 1, seed.ID, schedule.StatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if ap.Status != string(schedule.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", ap.Status)
	}

	ap, err = uc.Execute(context.Background(), 1, seed.ID, schedule.StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ap.CompletedAt == nil {
		t.Fatalf("expected completed_at timestamp")
	}
}

func TestSetStatus_TerminalIsImmutable(t *testing.T) {
	f := newFixture(t)
	seed := seedAppointment(t, f)
	uc := NewSetAppointmentStatus(f.repo, f.cache, nopAuditor{}, f.cfg)

	if _, err := uc.Execute(context.Background(), 1, seed.ID, schedule.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	for _, next := range []schedule.Status{schedule.StatusReserved, schedule.StatusConfirmed, schedule.StatusCompleted} {
		_, err := uc.Execute(context.Background(), 1, seed.ID, next)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("cancelled -> %s: expected invalid_state, got %v", next, err)
		}
	}
}

func TestSetStatus_CancelFreesSlot(t *testing.T) {
	f := newFixture(t)
	seed := seedAppointment(t, f)

	create := NewCreateAppointment(f.repo, f.cache, nopAuditor{}, f.cfg)
	status := NewSetAppointmentStatus(f.repo, f.cache, nopAuditor{}, f.cfg)

	in := CreateAppointmentInput{
		ClientID:       f.client.ID,
		TreatmentID:    f.treat.ID,
		SubTreatmentID: f.sub.ID,
		Date:           "2026-03-12",
		Time:           "09:00",
		Box:            1,
	}

	if _, err := create.Execute(context.Background(), 1, in); !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("slot should be taken, got %v", err)
	}

	if _, err := status.Execute(context.Background(), 1, seed.ID, schedule.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := create.Execute(context.Background(), 1, in); err != nil {
		t.Fatalf("slot should be free after cancellation: %v", err)
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	f := newFixture(t)
	uc := NewSetAppointmentStatus(f.repo, f.cache, nopAuditor{}, f.cfg)

	_, err := uc.Execute(context.Background(), 1, 404, schedule.StatusConfirmed)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}
