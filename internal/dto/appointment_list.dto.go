package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Box              int       `json:"box"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	TreatmentName    string    `json:"treatment_name"`
	SubTreatmentName string    `json:"sub_treatment_name"`
	Price            float64   `json:"price"`
	Deposit          float64   `json:"deposit"`
}
