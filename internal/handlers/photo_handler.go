package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/httperr"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/httpresp"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/storage"
)

const maxPhotoBytes = 10 << 20

type PhotoHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewPhotoHandler(db *gorm.DB, images *storage.ImageStore) *PhotoHandler {
	return &PhotoHandler{db: db, images: images}
}

func (h *PhotoHandler) upload(c *gin.Context, prefix string) (string, bool) {
	if !h.images.Enabled() {
		httperr.Internal(c, "storage_not_configured", "Almacenamiento de imágenes no configurado.")
		return "", false
	}

	file, err := c.FormFile("foto")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Falta el archivo 'foto'.")
		return "", false
	}

	if file.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "La imagen supera los 10MB.")
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "No se pudo leer la imagen.")
		return "", false
	}
	defer src.Close()

	url, err := h.images.Upload(c.Request.Context(), prefix, src)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "No se pudo subir la imagen.")
		return "", false
	}

	return url, true
}

func (h *PhotoHandler) UploadTreatmentPhoto(c *gin.Context) {
	var t models.Treatment
	if err := h.db.First(&t, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamiento no encontrado.")
		return
	}

	url, ok := h.upload(c, "tratamientos")
	if !ok {
		return
	}

	t.PhotoURL = url
	if err := h.db.Save(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_save_photo", "No se pudo guardar la imagen.")
		return
	}

	httpresp.OK(c, t)
}

func (h *PhotoHandler) UploadProductPhoto(c *gin.Context) {
	var p models.Product
	if err := h.db.First(&p, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Producto no encontrado.")
		return
	}

	url, ok := h.upload(c, "productos")
	if !ok {
		return
	}

	p.PhotoURL = url
	if err := h.db.Save(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_save_photo", "No se pudo guardar la imagen.")
		return
	}

	httpresp.OK(c, p)
}
