package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// limite do corpo do upload (5 MB)
const maxLogoUploadBytes = 5 << 20

type MediaHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewMediaHandler(db *gorm.DB, uploader *media.Uploader) *MediaHandler {
	return &MediaHandler{
		db:       db,
		uploader: uploader,
	}
}

func (h *MediaHandler) UploadLogo(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'logo'.")
		return
	}
	defer file.Close()

	if header.Size > maxLogoUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo acima de 5 MB.")
		return
	}

	url, err := h.uploader.UploadLogo(c.Request.Context(), salonID, file)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Envie uma imagem JPEG ou PNG válida.")
			return
		}
		httperr.Internal(c, "upload_failed", "Erro ao enviar o logo.")
		return
	}

	salon.LogoURL = url
	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Erro ao gravar a URL do logo.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
