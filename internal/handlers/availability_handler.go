package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/cache"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httpresp"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

// ABM de ventanas de disponibilidad. Borrar o achicar una ventana no
// toca los turnos ya tomados adentro: quedan como están.
type AvailabilityHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	cache *cache.Cache
}

func NewAvailabilityHandler(db *gorm.DB, cfg *config.Config, c *cache.Cache) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, cfg: cfg, cache: c}
}

type AvailabilityWindowRequest struct {
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	Boxes      string `json:"boxes" binding:"required"`
	MaxClients int    `json:"max_clients"`
}

func (h *AvailabilityHandler) validate(req *AvailabilityWindowRequest) (start, end time.Time, code string) {
	start, err := parseDate(h.cfg, req.StartDate)
	if err != nil {
		return start, end, "invalid_date"
	}

	end, err = parseDate(h.cfg, req.EndDate)
	if err != nil || end.Before(start) {
		return start, end, "invalid_date"
	}

	st, err1 := time.Parse("15:04", req.StartTime)
	et, err2 := time.Parse("15:04", req.EndTime)
	if err1 != nil || err2 != nil || !et.After(st) {
		return start, end, "invalid_time_range"
	}

	w := models.AvailabilityWindow{Boxes: req.Boxes}
	boxes := w.BoxList()
	if len(boxes) == 0 {
		return start, end, "invalid_boxes"
	}
	for _, b := range boxes {
		if b < 1 || b > h.cfg.BoxCount {
			return start, end, "invalid_boxes"
		}
	}

	return start, end, ""
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	var t models.Treatment
	if err := h.db.First(&t, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("treatment_id = ?", t.ID).
		Order("start_date ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_windows", "No se pudo listar la disponibilidad.")
		return
	}

	httpresp.List(c, windows)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var t models.Treatment
	if err := h.db.First(&t, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	var req AvailabilityWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, end, code := h.validate(&req)
	if code != "" {
		httperr.BadRequest(c, code, "Ventana de disponibilidad inválida.")
		return
	}

	maxClients := req.MaxClients
	if maxClients <= 0 {
		maxClients = 1
	}

	w := models.AvailabilityWindow{
		TreatmentID: t.ID,
		StartDate:   start,
		EndDate:     end,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Boxes:       req.Boxes,
		MaxClients:  maxClients,
	}

	if err := h.db.Create(&w).Error; err != nil {
		httperr.Internal(c, "failed_to_create_window", "No se pudo crear la disponibilidad.")
		return
	}

	h.cache.InvalidateTreatment(c.Request.Context(), t.ID)

	c.JSON(201, w)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	var w models.AvailabilityWindow
	if err := h.db.First(&w, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "window_not_found", "Disponibilidad no encontrada.")
		return
	}

	var req AvailabilityWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, end, code := h.validate(&req)
	if code != "" {
		httperr.BadRequest(c, code, "Ventana de disponibilidad inválida.")
		return
	}

	w.StartDate = start
	w.EndDate = end
	w.StartTime = req.StartTime
	w.EndTime = req.EndTime
	w.Boxes = req.Boxes
	if req.MaxClients > 0 {
		w.MaxClients = req.MaxClients
	}

	if err := h.db.Save(&w).Error; err != nil {
		httperr.Internal(c, "failed_to_update_window", "No se pudo actualizar la disponibilidad.")
		return
	}

	h.cache.InvalidateTreatment(c.Request.Context(), w.TreatmentID)

	httpresp.OK(c, w)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	var w models.AvailabilityWindow
	if err := h.db.First(&w, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "window_not_found", "Disponibilidad no encontrada.")
		return
	}

	if err := h.db.Delete(&w).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_window", "No se pudo eliminar la disponibilidad.")
		return
	}

	h.cache.InvalidateTreatment(c.Request.Context(), w.TreatmentID)

	httpresp.OK(c, gin.H{"message": "Disponibilidad eliminada."})
}
