package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER — visões de agenda (dia / semana)
// ======================================================

type CalendarHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewCalendarHandler(db *gorm.DB) *CalendarHandler {
	return &CalendarHandler{
		db:   db,
		repo: infraRepo.NewBookingGormRepository(db),
	}
}

func (h *CalendarHandler) Day(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = nowInSalon(&salon).Format("2006-01-02")
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slotHeight := 0
	if v := c.Query("slot_height"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			slotHeight = n
		}
	}

	day, err := h.daySchedule(c, salonID, int(date.Weekday()))
	if err != nil {
		return
	}

	entries, err := h.entriesBetween(c, &salon, date, date.AddDate(0, 0, 1))
	if err != nil {
		return
	}

	grid := calendar.BuildDayGrid(date, day, entries, slotHeight)

	c.JSON(http.StatusOK, grid)
}

func (h *CalendarHandler) Week(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	anchorStr := c.Query("anchor")
	if anchorStr == "" {
		anchorStr = nowInSalon(&salon).Format("2006-01-02")
	}

	anchor, err := parseDateInSalon(&salon, anchorStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	rows, err := h.repo.ListSchedule(c.Request.Context(), salonID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return
	}

	var hours schedule.OpeningHours
	for _, row := range rows {
		if row.Weekday >= 0 && row.Weekday < 7 {
			hours[row.Weekday] = schedule.DaySchedule{
				Open:      row.Open,
				OpenTime:  row.OpenTime,
				CloseTime: row.CloseTime,
			}
		}
	}

	start := calendar.WeekStart(anchor)

	entries, err := h.entriesBetween(c, &salon, start, start.AddDate(0, 0, 7))
	if err != nil {
		return
	}

	grid := calendar.BuildWeekGrid(anchor, hours, entries)

	c.JSON(http.StatusOK, grid)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (h *CalendarHandler) daySchedule(
	c *gin.Context,
	salonID uint,
	weekday int,
) (schedule.DaySchedule, error) {

	row, err := h.repo.GetDaySchedule(c.Request.Context(), salonID, weekday)
	if err != nil {
		// sem expediente cadastrado conta como fechado
		if err == gorm.ErrRecordNotFound {
			return schedule.DaySchedule{}, nil
		}
		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return schedule.DaySchedule{}, err
	}

	return schedule.DaySchedule{
		Open:      row.Open,
		OpenTime:  row.OpenTime,
		CloseTime: row.CloseTime,
	}, nil
}

func (h *CalendarHandler) entriesBetween(
	c *gin.Context,
	salon *models.Salon,
	start time.Time,
	end time.Time,
) ([]calendar.Entry, error) {

	aps, err := h.repo.ListAppointmentsForPeriod(c.Request.Context(), salon.ID, start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return nil, err
	}

	loc := locationFromSalon(salon)

	entries := make([]calendar.Entry, 0, len(aps))
	for _, ap := range aps {
		localStart := ap.StartTime.In(loc)

		entries = append(entries, calendar.Entry{
			ID:            ap.ID,
			CustomerName:  ap.Customer.Name,
			StaffName:     ap.Staff.Name,
			TreatmentName: ap.Treatment.Name,
			Date:          localStart.Format("2006-01-02"),
			StartTime:     localStart.Format("15:04"),
			DurationMin:   int(ap.EndTime.Sub(ap.StartTime).Minutes()),
			Status:        ap.Status,
		})
	}

	return entries, nil
}
