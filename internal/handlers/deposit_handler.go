package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httpresp"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/payments"
)

// Genera el link de pago de la seña de un turno.
type DepositHandler struct {
	db *gorm.DB
	mp *payments.Client
}

func NewDepositHandler(db *gorm.DB, mp *payments.Client) *DepositHandler {
	return &DepositHandler{db: db, mp: mp}
}

func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	if !h.mp.Enabled() {
		httperr.Internal(c, "payments_not_configured", "Pagos no configurados.")
		return
	}

	var ap models.Appointment
	if err := h.db.Preload("Treatment").First(&ap, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Turno no encontrado.")
		return
	}

	if ap.Status == string(schedule.StatusCancelled) {
		httperr.BadRequest(c, "invalid_state", "El turno está cancelado.")
		return
	}

	if ap.Deposit <= 0 {
		httperr.BadRequest(c, "no_deposit", "El turno no tiene seña.")
		return
	}

	title := fmt.Sprintf(
		"Seña %s - %s",
		ap.Treatment.Name,
		ap.StartTime.Format("2006-01-02 15:04"),
	)

	pref, err := h.mp.CreateDepositPreference(c.Request.Context(), &ap, title)
	if err != nil {
		httperr.Internal(c, "failed_to_create_preference", "No se pudo generar el link de pago.")
		return
	}

	httpresp.OK(c, pref)
}
