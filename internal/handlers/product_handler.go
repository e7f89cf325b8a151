package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httpresp"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

type ProductRequest struct {
	Brand       string  `json:"brand"`
	Name        string  `json:"name" binding:"required"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Description string  `json:"description"`
}

func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Product{}).Order("brand ASC, name ASC")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR brand ILIKE ?", like, like)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "No se pudieron listar los productos.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	var p models.Product
	if err := h.db.First(&p, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producto no encontrado.")
		return
	}

	httpresp.OK(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	p := models.Product{
		Brand:       req.Brand,
		Name:        req.Name,
		Cost:        req.Cost,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	}

	if err := h.db.Create(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "No se pudo crear el producto.")
		return
	}

	c.JSON(201, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var p models.Product
	if err := h.db.First(&p, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producto no encontrado.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	p.Brand = req.Brand
	p.Name = req.Name
	p.Cost = req.Cost
	p.Price = req.Price
	p.Stock = req.Stock
	p.Description = req.Description

	if err := h.db.Save(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "No se pudo actualizar el producto.")
		return
	}

	httpresp.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	var p models.Product
	if err := h.db.First(&p, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producto no encontrado.")
		return
	}

	if err := h.db.Delete(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_product", "No se pudo eliminar el producto.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Producto eliminado."})
}
