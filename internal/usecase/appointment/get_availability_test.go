package appointment

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
)

func TestGetAvailability_ExcludesBookedSlots(t *testing.T) {
	f := newFixture(t)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	seedAppointment(t, f) // 09:00-10:00 box 1

	uc := NewGetAvailability(f.repo, f.cache, f.cfg)
	slots, err := uc.Execute(context.Background(), f.treat.ID, date, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		if s.Box == 1 && s.Start < "10:00" {
			t.Fatalf("slot %s box %d overlaps the booked appointment", s.Start, s.Box)
		}
	}

	// Box 2 sigue ofreciendo 09:00 a pesar del turno en box 1.
	found := false
	for _, s := range slots {
		if s.Box == 2 && s.Start == "09:00" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 09:00 on box 2 to stay available")
	}
}

func TestGetAvailability_NoWindowsReturnsEmpty(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, f.cache, f.cfg)

	date := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	slots, err := uc.Execute(context.Background(), f.treat.ID, date, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", slots)
	}
}

func TestGetAvailability_TreatmentNotFound(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, f.cache, f.cfg)

	_, err := uc.Execute(context.Background(), 999, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), 60)
	if !httperr.IsBusiness(err, "treatment_not_found") {
		t.Fatalf("expected treatment_not_found, got %v", err)
	}
}

func TestGetAvailability_Idempotent(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, f.cache, f.cfg)

	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	first, err := uc.Execute(context.Background(), f.treat.ID, date, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), f.treat.ID, date, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolution is not idempotent: %v vs %v", first, second)
	}
}
