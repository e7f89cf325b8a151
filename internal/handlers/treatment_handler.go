package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httpresp"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

type TreatmentHandler struct {
	db *gorm.DB
}

func NewTreatmentHandler(db *gorm.DB) *TreatmentHandler {
	return &TreatmentHandler{db: db}
}

type TreatmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Box         int    `json:"box"`
	Description string `json:"description"`
}

type SubTreatmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// --------------------------------------------------
// Tratamientos
// --------------------------------------------------

func (h *TreatmentHandler) List(c *gin.Context) {
	var treatments []models.Treatment
	if err := h.db.Preload("SubTreatments").Order("name ASC").Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "No se pudieron listar los tratamientos.")
		return
	}

	httpresp.List(c, treatments)
}

func (h *TreatmentHandler) Get(c *gin.Context) {
	var t models.Treatment
	if err := h.db.Preload("SubTreatments").First(&t, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	httpresp.OK(c, t)
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	var req TreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	t := models.Treatment{
		Name:        req.Name,
		Box:         req.Box,
		Description: req.Description,
	}

	if err := h.db.Create(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_create_treatment", "No se pudo crear el tratamiento.")
		return
	}

	c.JSON(201, t)
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	var t models.Treatment
	if err := h.db.First(&t, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	var req TreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	t.Name = req.Name
	t.Box = req.Box
	t.Description = req.Description

	if err := h.db.Save(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_update_treatment", "No se pudo actualizar el tratamiento.")
		return
	}

	httpresp.OK(c, t)
}

func (h *TreatmentHandler) Delete(c *gin.Context) {
	var t models.Treatment
	if err := h.db.First(&t, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	if err := h.db.Delete(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_treatment", "No se pudo eliminar el tratamiento.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Tratamiento eliminado."})
}

// --------------------------------------------------
// Sub-tratamientos
// --------------------------------------------------

func (h *TreatmentHandler) ListSubTreatments(c *gin.Context) {
	var t models.Treatment
	if err := h.db.First(&t, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	var subs []models.SubTreatment
	if err := h.db.Where("treatment_id = ?", t.ID).Order("name ASC").Find(&subs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sub_treatments", "No se pudieron listar los sub-tratamientos.")
		return
	}

	httpresp.List(c, subs)
}

func (h *TreatmentHandler) CreateSubTreatment(c *gin.Context) {
	var t models.Treatment
	if err := h.db.First(&t, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	var req SubTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	sub := models.SubTreatment{
		TreatmentID: t.ID,
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}

	if err := h.db.Create(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_create_sub_treatment", "No se pudo crear el sub-tratamiento.")
		return
	}

	c.JSON(201, sub)
}

func (h *TreatmentHandler) UpdateSubTreatment(c *gin.Context) {
	var sub models.SubTreatment
	if err := h.db.First(&sub, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "sub_treatment_not_found", "Sub-tratamiento no encontrado.")
		return
	}

	var req SubTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	sub.Name = req.Name
	sub.DurationMin = req.DurationMin
	sub.Price = req.Price

	if err := h.db.Save(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_update_sub_treatment", "No se pudo actualizar el sub-tratamiento.")
		return
	}

	httpresp.OK(c, sub)
}

func (h *TreatmentHandler) DeleteSubTreatment(c *gin.Context) {
	var sub models.SubTreatment
	if err := h.db.First(&sub, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "sub_treatment_not_found", "Sub-tratamiento no encontrado.")
		return
	}

	if err := h.db.Delete(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_sub_treatment", "No se pudo eliminar el sub-tratamiento.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Sub-tratamiento eliminado."})
}
