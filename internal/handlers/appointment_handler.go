package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER — agenda do painel
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	logger := audit.New(db)

	return &AppointmentHandler{
		db:    db,
		repo:  infraRepo.NewBookingGormRepository(db),
		audit: audit.NewDispatcher(logger),
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	uc := appointment.NewListAppointmentsByDate(h.repo)

	list, err := uc.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         dateStr,
		"appointments": list,
	})
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	uc := appointment.NewListAppointmentsByMonth(h.repo)

	list, err := uc.Execute(c.Request.Context(), salonID, year, time.Month(month))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}

// ======================================================
// MUDANÇAS DE ESTADO
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel")
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, "complete")
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm")
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, "no_show")
}

func (h *AppointmentHandler) transition(c *gin.Context, action string) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var ap *models.Appointment

	switch action {
	case "cancel":
		ap, err = appointment.NewCancelAppointment(h.repo, h.audit).
			Execute(c.Request.Context(), salonID, userID, uint(id))
	case "complete":
		ap, err = appointment.NewCompleteAppointment(h.repo, h.audit).
			Execute(c.Request.Context(), salonID, userID, uint(id))
	case "confirm":
		ap, err = appointment.NewConfirmAppointment(h.repo, h.audit).
			Execute(c.Request.Context(), salonID, userID, uint(id))
	case "no_show":
		ap, err = appointment.NewMarkNoShow(h.repo, h.audit).
			Execute(c.Request.Context(), salonID, userID, uint(id))
	}

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de estado inválida.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
