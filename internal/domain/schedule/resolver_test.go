package schedule

import (
	"reflect"
	"testing"
	"time"
)

func day(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", "2024-06-10")
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func grid(d time.Time) Grid {
	return Grid{
		Open:  AnchorHM(d, "08:00"),
		Close: AnchorHM(d, "21:00"),
		Step:  30 * time.Minute,
		Boxes: 8,
	}
}

func window(d time.Time, start, end string, boxes ...int) Window {
	return Window{
		Start:      AnchorHM(d, start),
		End:        AnchorHM(d, end),
		Boxes:      boxes,
		MaxClients: 1,
	}
}

func TestResolve_MorningScenario(t *testing.T) {
	d := day(t)

	windows := []Window{window(d, "09:00", "12:00", 1)}
	busy := []Busy{{Box: 1, Start: AnchorHM(d, "09:30"), End: AnchorHM(d, "10:00")}}

	slots := Resolve(grid(d), 30*time.Minute, windows, busy)

	want := []Slot{
		{Start: "09:00", End: "09:30", Box: 1},
		{Start: "10:00", End: "10:30", Box: 1},
		{Start: "10:30", End: "11:00", Box: 1},
		{Start: "11:00", End: "11:30", Box: 1},
		{Start: "11:30", End: "12:00", Box: 1},
	}

	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("got %v, want %v", slots, want)
	}
}

func TestResolve_NoWindowsReturnsEmpty(t *testing.T) {
	d := day(t)

	slots := Resolve(grid(d), 30*time.Minute, nil, nil)
	if slots == nil || len(slots) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", slots)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	d := day(t)

	windows := []Window{window(d, "09:00", "12:00", 1, 2)}
	busy := []Busy{
		{Box: 1, Start: AnchorHM(d, "09:00"), End: AnchorHM(d, "10:00")},
		{Box: 2, Start: AnchorHM(d, "11:00"), End: AnchorHM(d, "11:30")},
	}

	first := Resolve(grid(d), 30*time.Minute, windows, busy)
	second := Resolve(grid(d), 30*time.Minute, windows, busy)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolver is not deterministic: %v vs %v", first, second)
	}
}

func TestResolve_SlotsNeverOverlapBusy(t *testing.T) {
	d := day(t)

	windows := []Window{window(d, "08:00", "21:00", 1, 2, 3)}
	busy := []Busy{
		{Box: 1, Start: AnchorHM(d, "10:00"), End: AnchorHM(d, "11:15")},
		{Box: 2, Start: AnchorHM(d, "08:00"), End: AnchorHM(d, "09:00")},
		{Box: 3, Start: AnchorHM(d, "20:00"), End: AnchorHM(d, "21:00")},
	}

	duration := 45 * time.Minute
	slots := Resolve(grid(d), duration, windows, busy)

	for _, s := range slots {
		start := AnchorHM(d, s.Start)
		end := start.Add(duration)
		for _, b := range busy {
			if b.Box != s.Box {
				continue
			}
			if Overlaps(start, end, b.Start, b.End) {
				t.Fatalf("slot %v overlaps busy %v", s, b)
			}
		}
	}
}

func TestResolve_SlotsAlwaysInsideEligibleWindow(t *testing.T) {
	d := day(t)

	windows := []Window{
		window(d, "09:00", "12:00", 1),
		window(d, "14:00", "18:00", 2, 3),
	}

	duration := 30 * time.Minute
	slots := Resolve(grid(d), duration, windows, nil)

	if len(slots) == 0 {
		t.Fatalf("expected slots")
	}

	for _, s := range slots {
		start := AnchorHM(d, s.Start)
		end := start.Add(duration)
		if CoveringWindow(windows, s.Box, start, end) == nil {
			t.Fatalf("slot %v not covered by any window", s)
		}
	}
}

// Tocarse en el borde no es conflicto: [a0,a1) vs [b0,b1).
func TestResolve_HalfOpenBoundaries(t *testing.T) {
	d := day(t)

	windows := []Window{window(d, "09:00", "12:00", 1)}
	busy := []Busy{{Box: 1, Start: AnchorHM(d, "10:00"), End: AnchorHM(d, "10:30")}}

	slots := Resolve(grid(d), 30*time.Minute, windows, busy)

	has := func(start string) bool {
		for _, s := range slots {
			if s.Start == start && s.Box == 1 {
				return true
			}
		}
		return false
	}

	if !has("09:30") {
		t.Fatalf("slot ending exactly at busy start must be offered")
	}
	if !has("10:30") {
		t.Fatalf("slot starting exactly at busy end must be offered")
	}
	if has("10:00") {
		t.Fatalf("busy slot must not be offered")
	}
}

func TestResolve_NoEndOfWindowOverrun(t *testing.T) {
	d := day(t)

	windows := []Window{window(d, "09:00", "10:00", 1)}

	g := grid(d)
	g.Step = 15 * time.Minute

	slots := Resolve(g, 45*time.Minute, windows, nil)

	want := []Slot{
		{Start: "09:00", End: "09:45", Box: 1},
		{Start: "09:15", End: "10:00", Box: 1},
	}

	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("got %v, want %v", slots, want)
	}
}

func TestResolve_UnknownBusyDurationDefaultsTo30(t *testing.T) {
	d := day(t)

	windows := []Window{window(d, "09:00", "12:00", 1)}
	// End == Start: duración desconocida
	busy := []Busy{{Box: 1, Start: AnchorHM(d, "09:00"), End: AnchorHM(d, "09:00")}}

	slots := Resolve(grid(d), 30*time.Minute, windows, busy)

	for _, s := range slots {
		if s.Start == "09:00" {
			t.Fatalf("slot at 09:00 should be blocked by default busy duration")
		}
	}

	found := false
	for _, s := range slots {
		if s.Start == "09:30" {
			found = true
		}
	}
	if !found {
		t.Fatalf("slot at 09:30 should be free")
	}
}

func TestResolve_OrderedByTimeThenBox(t *testing.T) {
	d := day(t)

	windows := []Window{window(d, "09:00", "10:00", 1, 2)}
	slots := Resolve(grid(d), 30*time.Minute, windows, nil)

	want := []Slot{
		{Start: "09:00", End: "09:30", Box: 1},
		{Start: "09:00", End: "09:30", Box: 2},
		{Start: "09:30", End: "10:00", Box: 1},
		{Start: "09:30", End: "10:00", Box: 2},
	}

	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("got %v, want %v", slots, want)
	}
}
