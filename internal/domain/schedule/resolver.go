package schedule

import "time"

// Slot es un par (horario, box) ofertable.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Box   int    `json:"box"`
}

// Window es una ventana de disponibilidad ya anclada a la fecha consultada.
type Window struct {
	Start      time.Time
	End        time.Time
	Boxes      []int
	MaxClients int
}

// Busy es un intervalo ocupado por un turno existente en un box.
type Busy struct {
	Box   int
	Start time.Time
	End   time.Time
}

// Grid define la grilla de candidatos: horario comercial, paso y
// cantidad de boxes del local.
type Grid struct {
	Open  time.Time
	Close time.Time
	Step  time.Duration
	Boxes int
}

// Si un turno viejo quedó sin duración conocida, ocupa 30 minutos.
const DefaultBusyDuration = 30 * time.Minute

// Overlaps aplica semántica de intervalos semiabiertos [a0,a1) vs [b0,b1):
// tocarse en el borde no es conflicto.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// AnchorHM ancla una hora "HH:MM" al día de date, en su misma location.
func AnchorHM(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// Resolve calcula los slots libres para una duración dada, contra las
// ventanas del tratamiento que cubren la fecha y los turnos ya tomados
// del día (todos los boxes). El resultado queda ordenado por horario y
// después por box, y es determinístico para entradas iguales.
//
// Un slot se oferta si alguna ventana cubre [start, start+dur) completo
// (el sobregiro del fin de ventana NO se permite), habilita el box, y
// ningún turno del mismo box lo solapa.
func Resolve(grid Grid, duration time.Duration, windows []Window, busy []Busy) []Slot {
	slots := make([]Slot, 0)

	if duration <= 0 || len(windows) == 0 {
		return slots
	}

	busyByBox := make(map[int][]Busy, len(busy))
	for _, b := range busy {
		busyByBox[b.Box] = append(busyByBox[b.Box], b)
	}

	for cur := grid.Open; !cur.Add(duration).After(grid.Close); cur = cur.Add(grid.Step) {
		slotEnd := cur.Add(duration)

		for box := 1; box <= grid.Boxes; box++ {
			if !windowCovers(windows, box, cur, slotEnd) {
				continue
			}

			conflict := false
			for _, b := range busyByBox[box] {
				bEnd := b.End
				if !bEnd.After(b.Start) {
					bEnd = b.Start.Add(DefaultBusyDuration)
				}
				if Overlaps(cur, slotEnd, b.Start, bEnd) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, Slot{
					Start: cur.Format("15:04"),
					End:   slotEnd.Format("15:04"),
					Box:   box,
				})
			}
		}
	}

	return slots
}

// CoveringWindow devuelve la ventana que cubre el rango completo para el
// box, o nil si ninguna lo hace.
func CoveringWindow(windows []Window, box int, start, end time.Time) *Window {
	for i := range windows {
		w := &windows[i]
		if start.Before(w.Start) || end.After(w.End) {
			continue
		}
		for _, b := range w.Boxes {
			if b == box {
				return w
			}
		}
	}
	return nil
}

func windowCovers(windows []Window, box int, start, end time.Time) bool {
	return CoveringWindow(windows, box, start, end) != nil
}
