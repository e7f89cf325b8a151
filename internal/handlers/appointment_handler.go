package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/domain/schedule"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httpresp"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/middleware"
	ucAppointment "github.com/SUPERMITA777/reset-fire-sub001/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	cfg *config.Config

	create       *ucAppointment.CreateAppointment
	update       *ucAppointment.UpdateAppointment
	setStatus    *ucAppointment.SetAppointmentStatus
	remove       *ucAppointment.DeleteAppointment
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth
	availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	cfg *config.Config,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	setStatus *ucAppointment.SetAppointmentStatus,
	remove *ucAppointment.DeleteAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	availability *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		cfg:          cfg,
		create:       create,
		update:       update,
		setStatus:    setStatus,
		remove:       remove,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       uint     `json:"client_id" binding:"required"`
	TreatmentID    uint     `json:"treatment_id" binding:"required"`
	SubTreatmentID uint     `json:"sub_treatment_id" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	Time           string   `json:"time" binding:"required"`
	Box            int      `json:"box" binding:"required"`
	Price          *float64 `json:"price"`
	Deposit        float64  `json:"deposit"`
	Notes          string   `json:"notes"`
	MultiClient    bool     `json:"multi_client"`
}

type UpdateAppointmentRequest struct {
	SubTreatmentID uint     `json:"sub_treatment_id" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	Time           string   `json:"time" binding:"required"`
	Box            int      `json:"box" binding:"required"`
	Price          *float64 `json:"price"`
	Deposit        float64  `json:"deposit"`
	Notes          string   `json:"notes"`
	MultiClient    bool     `json:"multi_client"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

var businessMessages = map[string]string{
	"invalid_date_or_time":    "Fecha u hora inválida.",
	"invalid_box":             "Box inválido.",
	"invalid_status":          "Estado inválido.",
	"invalid_state":           "El turno no admite ese cambio de estado.",
	"client_not_found":        "Cliente no encontrado.",
	"treatment_not_found":     "Tratamiento no encontrado.",
	"sub_treatment_not_found": "Sub-tratamiento no encontrado.",
	"appointment_not_found":   "Turno no encontrado.",
	"fuera_de_disponibilidad": "El horario está fuera de la disponibilidad del tratamiento.",
	"time_conflict":           "Conflicto de horario.",
}

func respondAppointmentError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		msg, ok := businessMessages[be.Code]
		if !ok {
			msg = "Operación inválida."
		}

		switch be.Code {
		case "client_not_found", "treatment_not_found",
			"sub_treatment_not_found", "appointment_not_found":
			httperr.NotFound(c, be.Code, msg)
		default:
			httperr.BadRequest(c, be.Code, msg)
		}
		return
	}

	if httperr.IsExclusionConflict(err) {
		httperr.BadRequest(c, "time_conflict", businessMessages["time_conflict"])
		return
	}

	httperr.Internal(c, "internal_error", "Error interno.")
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), userID, ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		TreatmentID:    req.TreatmentID,
		SubTreatmentID: req.SubTreatmentID,
		Date:           req.Date,
		Time:           req.Time,
		Box:            req.Box,
		Price:          req.Price,
		Deposit:        req.Deposit,
		Notes:          req.Notes,
		MultiClient:    req.MultiClient,
	})
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// UPDATE (edición / drag-and-drop)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), userID, uint(id), ucAppointment.UpdateAppointmentInput{
		SubTreatmentID: req.SubTreatmentID,
		Date:           req.Date,
		Time:           req.Time,
		Box:            req.Box,
		Price:          req.Price,
		Deposit:        req.Deposit,
		Notes:          req.Notes,
		MultiClient:    req.MultiClient,
	})
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// ESTADO
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), userID, uint(id), schedule.Status(req.Status))
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Turno eliminado."})
}

// ======================================================
// LIST (por fecha o por mes)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	if dateStr := c.Query("fecha"); dateStr != "" {
		date, err := parseDate(h.cfg, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}

		out, err := h.listByDate.Execute(c.Request.Context(), date)
		if err != nil {
			respondAppointmentError(c, err)
			return
		}

		httpresp.List(c, out)
		return
	}

	yearStr := c.Query("anio")
	monthStr := c.Query("mes")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_date", "Falta fecha (o año y mes).")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// DISPONIBILIDAD
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("fecha")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseDate(h.cfg, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	treatmentID, err := strconv.ParseUint(c.Query("tratamiento_id"), 10, 64)
	if err != nil || treatmentID == 0 {
		httperr.BadRequest(c, "invalid_treatment", "Tratamiento obligatorio.")
		return
	}

	duration, err := strconv.Atoi(c.Query("duracion"))
	if err != nil || duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duración inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(treatmentID), date, duration)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.List(c, slots)
}
