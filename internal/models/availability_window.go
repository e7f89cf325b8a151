package models

import (
	"strconv"
	"strings"
	"time"
)

// Ventana de disponibilidad de un tratamiento: rango de fechas inclusive,
// franja horaria HH:MM y boxes habilitados. Borrarla no toca los turnos
// ya creados dentro de la ventana.
type AvailabilityWindow struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	TreatmentID uint `json:"treatment_id"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Boxes      string `gorm:"size:50" json:"boxes"`
	MaxClients int    `gorm:"default:1" json:"max_clients"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoxList parsea el campo Boxes ("1,3,4"). Entradas inválidas se ignoran.
func (w *AvailabilityWindow) BoxList() []int {
	parts := strings.Split(w.Boxes, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}
