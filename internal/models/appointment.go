package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	TreatmentID uint      `json:"treatment_id"`
	Treatment   Treatment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"treatment"`

	SubTreatmentID uint         `json:"sub_treatment_id"`
	SubTreatment   SubTreatment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sub_treatment"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Box       int       `json:"box"`

	Status string `gorm:"size:20;default:'reserved'" json:"status"`

	Price   float64 `json:"price"`
	Deposit float64 `json:"deposit"`

	Notes       string `gorm:"size:255" json:"notes"`
	MultiClient bool   `json:"multi_client"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
