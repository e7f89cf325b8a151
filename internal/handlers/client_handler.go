package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httpresp"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientRequest struct {
	FullName string `json:"full_name" binding:"required"`
	DNI      string `json:"dni" binding:"required"`
	Phone    string `json:"phone"`
}

// List busca por nombre o DNI con ?q=.
func (h *ClientHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Client{}).Order("full_name ASC")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("full_name ILIKE ? OR dni LIKE ?", like, like)
	}

	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "No se pudieron listar los clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validators.IsDNIValid(req.DNI) {
		httperr.BadRequest(c, "invalid_dni", "DNI inválido.")
		return
	}

	if req.Phone != "" && !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Teléfono inválido.")
		return
	}

	client := models.Client{
		FullName: req.FullName,
		DNI:      strings.TrimSpace(req.DNI),
		Phone:    req.Phone,
	}

	if err := h.db.Create(&client).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "dni_already_exists", "Ya existe un cliente con ese DNI.")
			return
		}
		httperr.Internal(c, "failed_to_create_client", "No se pudo crear el cliente.")
		return
	}

	c.JSON(201, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validators.IsDNIValid(req.DNI) {
		httperr.BadRequest(c, "invalid_dni", "DNI inválido.")
		return
	}

	if req.Phone != "" && !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Teléfono inválido.")
		return
	}

	client.FullName = req.FullName
	client.DNI = strings.TrimSpace(req.DNI)
	client.Phone = req.Phone

	if err := h.db.Save(&client).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "dni_already_exists", "Ya existe un cliente con ese DNI.")
			return
		}
		httperr.Internal(c, "failed_to_update_client", "No se pudo actualizar el cliente.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "No se pudo eliminar el cliente.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Cliente eliminado."})
}
