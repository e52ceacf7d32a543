package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type ScheduleDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Open      bool   `json:"open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var rows []models.SalonSchedule
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// valida tudo antes de tocar no banco
	for _, d := range req.Days {
		day := schedule.DaySchedule{
			Open:      d.Open,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
		}
		if err := day.Validate(); err != nil {
			httperr.BadRequest(c, "invalid_schedule", "Horário de funcionamento inválido.")
			return
		}
	}

	if err := h.db.Where("salon_id = ?", salonID).Delete(&models.SalonSchedule{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_schedule", "Erro ao limpar horários.")
		return
	}

	var toCreate []models.SalonSchedule
	for _, d := range req.Days {
		toCreate = append(toCreate, models.SalonSchedule{
			SalonID:   salonID,
			Weekday:   d.Weekday,
			Open:      d.Open,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar horários.")
			return
		}
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	writeAudit(h.db, salonID, &userID, "schedule_updated", "salon_schedule", nil, gin.H{
		"days": len(toCreate),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
