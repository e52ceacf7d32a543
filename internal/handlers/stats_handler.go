package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER — números do painel
// ======================================================

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	now := nowInSalon(&salon)

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	weekStart := dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	// --------------------------------------------------
	// Agendamentos de hoje
	// --------------------------------------------------

	var todayCount int64
	if err := h.db.
		Model(&models.Appointment{}).
		Where(
			"salon_id = ? AND status IN ('scheduled', 'confirmed') AND start_time >= ? AND start_time < ?",
			salonID, dayStart, dayEnd,
		).
		Count(&todayCount).Error; err != nil {

		httperr.Internal(c, "stats_failed", "Erro ao calcular estatísticas.")
		return
	}

	// --------------------------------------------------
	// Receita da semana (serviços concluídos)
	// --------------------------------------------------

	var weekRevenue float64
	if err := h.db.
		Model(&models.Appointment{}).
		Select("COALESCE(SUM(treatments.price), 0)").
		Joins("JOIN treatments ON treatments.id = appointments.treatment_id").
		Where(
			"appointments.salon_id = ? AND appointments.status = 'completed' AND appointments.start_time >= ? AND appointments.start_time < ?",
			salonID, weekStart, weekEnd,
		).
		Scan(&weekRevenue).Error; err != nil {

		httperr.Internal(c, "stats_failed", "Erro ao calcular estatísticas.")
		return
	}

	// --------------------------------------------------
	// Próximos agendamentos
	// --------------------------------------------------

	var upcoming []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Treatment").
		Preload("Staff").
		Where(
			"salon_id = ? AND status IN ('scheduled', 'confirmed') AND start_time >= ?",
			salonID, now,
		).
		Order("start_time ASC").
		Limit(5).
		Find(&upcoming).Error; err != nil {

		httperr.Internal(c, "stats_failed", "Erro ao calcular estatísticas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today_count":  todayCount,
		"week_revenue": weekRevenue,
		"upcoming":     dto.FromAppointments(upcoming),
	})
}
