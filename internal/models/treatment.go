package models

import "time"

type Treatment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Box         int    `json:"box"`
	Description string `gorm:"size:255" json:"description"`
	PhotoURL    string `gorm:"size:255" json:"photo_url"`

	SubTreatments []SubTreatment `json:"sub_treatments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
