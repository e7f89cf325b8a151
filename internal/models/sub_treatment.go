package models

import "time"

// Variante facturable de un tratamiento: duración + precio.
type SubTreatment struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	TreatmentID uint `json:"treatment_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
