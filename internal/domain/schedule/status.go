package schedule

import "github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusReserved
}

// CanTransition valida el cambio de estado de un turno.
// cancelled y completed son terminales.
func CanTransition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	switch from {
	case StatusReserved:
		if to == StatusConfirmed || to == StatusCancelled || to == StatusCompleted {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCancelled || to == StatusCompleted {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_state")
}
