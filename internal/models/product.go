package models

import "time"

// Inventario independiente de los turnos: no se descuenta stock
// al completar una cita.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Brand       string  `gorm:"size:100" json:"brand"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Cost        float64 `json:"cost"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	PhotoURL    string  `gorm:"size:255" json:"photo_url"`
	Description string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
