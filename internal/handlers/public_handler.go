package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

////////////////////////////////////////////////////////
// SALONS (DESCOBERTA)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListSalons(c *gin.Context) {
	repo := infraRepo.NewBookingGormRepository(h.db)
	uc := booking.NewListSalons(repo)

	salons, err := uc.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Erro ao listar salões.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

////////////////////////////////////////////////////////
// STAFF
////////////////////////////////////////////////////////

func (h *PublicHandler) ListStaff(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var staff []models.Staff
	if err := h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("name ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon": salon,
		"staff": staff,
	})
}

////////////////////////////////////////////////////////
// TREATMENTS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListTreatments(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("salon_id = ? AND active = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var treatments []models.Treatment
	if err := q.Order("id ASC").Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":      salon,
		"treatments": treatments,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	staffIDStr := c.Query("staff_id")
	treatmentIDStr := c.Query("treatment_id")

	if dateStr == "" || staffIDStr == "" || treatmentIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, profissional e serviço obrigatórios.")
		return
	}

	staffID, err := strconv.ParseUint(staffIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Profissional inválido.")
		return
	}

	treatmentID, err := strconv.ParseUint(treatmentIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_treatment_id", "Serviço inválido.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	repo := infraRepo.NewBookingGormRepository(h.db)
	uc := booking.NewGetAvailability(repo)

	slots, err := uc.Execute(
		c.Request.Context(),
		booking.AvailabilityInput{
			SalonID:     salon.ID,
			StaffID:     uint(staffID),
			TreatmentID: uint(treatmentID),
			Date:        date,
			Now:         timezone.NowIn(salon.Timezone),
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "treatment_not_found") {
			httperr.BadRequest(c, "treatment_not_found", "Serviço inválido.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
