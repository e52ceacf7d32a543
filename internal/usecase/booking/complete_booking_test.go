package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func completeRepo() *stubRepo {
	return &stubRepo{
		salon: &models.Salon{
			ID:                1,
			Slug:              "studio-glow",
			Timezone:          "America/Sao_Paulo",
			MinAdvanceMinutes: 120,
		},
		staff: &models.Staff{ID: 10, SalonID: 1, Name: "Bianca", Active: true},
		treatment: &models.Treatment{
			ID: 20, SalonID: 1, Name: "Corte", DurationMin: 60, Active: true,
		},
		schedule: map[int]*models.SalonSchedule{
			1: {SalonID: 1, Weekday: 1, Open: true, OpenTime: "09:00", CloseTime: "18:00"},
		},
	}
}

func draftFor(date, clock string) domain.Draft {
	return domain.Draft{
		SalonID:       1,
		StaffID:       10,
		TreatmentID:   20,
		Date:          date,
		Time:          clock,
		CustomerName:  "Maria Souza",
		CustomerEmail: "maria@example.com",
		CustomerPhone: "11988887777",
		DepositPaid:   true,
	}
}

func newCompleteBooking(repo *stubRepo) *CompleteBooking {
	return NewCompleteBooking(repo, audit.NewDispatcher(audit.New(nil)))
}

func TestCompleteBookingHappyPath(t *testing.T) {
	repo := completeRepo()
	uc := newCompleteBooking(repo)

	// segunda-feira, bem no futuro para passar a antecedência mínima
	ap, err := uc.Execute(context.Background(), draftFor("2030-06-03", "10:00"))
	require.NoError(t, err)
	require.NotNil(t, ap)

	loc := saoPaulo(t)
	assert.Equal(t, time.Date(2030, 6, 3, 10, 0, 0, 0, loc), ap.StartTime.In(loc))
	assert.Equal(t, time.Date(2030, 6, 3, 11, 0, 0, 0, loc), ap.EndTime.In(loc))
	assert.Equal(t, "scheduled", ap.Status)
	assert.True(t, ap.DepositPaid)

	require.NotNil(t, repo.created)
	assert.Equal(t, repo.customer.ID, repo.created.CustomerID)
	assert.Equal(t, "Maria Souza", repo.customer.Name)
}

func TestCompleteBookingLastSlotMayRunPastClose(t *testing.T) {
	repo := completeRepo()
	uc := newCompleteBooking(repo)

	// 17:45 + 60min termina depois das 18:00 e ainda assim é aceito,
	// mesma regra da grade de horários
	ap, err := uc.Execute(context.Background(), draftFor("2030-06-03", "17:45"))
	require.NoError(t, err)

	loc := saoPaulo(t)
	assert.Equal(t, time.Date(2030, 6, 3, 18, 45, 0, 0, loc), ap.EndTime.In(loc))
}

func TestCompleteBookingTooSoon(t *testing.T) {
	repo := completeRepo()
	uc := newCompleteBooking(repo)

	_, err := uc.Execute(context.Background(), draftFor("2020-06-01", "10:00"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
	assert.Nil(t, repo.created)
}

func TestCompleteBookingOutsideOpeningHours(t *testing.T) {
	repo := completeRepo()
	uc := newCompleteBooking(repo)

	// antes da abertura
	_, err := uc.Execute(context.Background(), draftFor("2030-06-03", "08:00"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "outside_opening_hours"))

	// na hora exata do fechamento
	_, err = uc.Execute(context.Background(), draftFor("2030-06-03", "18:00"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "outside_opening_hours"))

	// dia sem expediente cadastrado (domingo)
	_, err = uc.Execute(context.Background(), draftFor("2030-06-02", "10:00"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "outside_opening_hours"))
}

func TestCompleteBookingInactiveStaff(t *testing.T) {
	repo := completeRepo()
	repo.staff.Active = false
	uc := newCompleteBooking(repo)

	_, err := uc.Execute(context.Background(), draftFor("2030-06-03", "10:00"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}

func TestCompleteBookingTimeConflict(t *testing.T) {
	repo := completeRepo()
	repo.conflictErr = httperr.ErrBusiness("time_conflict")
	uc := newCompleteBooking(repo)

	_, err := uc.Execute(context.Background(), draftFor("2030-06-03", "10:00"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Nil(t, repo.created)
}

func TestCompleteBookingInvalidDateTime(t *testing.T) {
	repo := completeRepo()
	uc := newCompleteBooking(repo)

	_, err := uc.Execute(context.Background(), draftFor("03/06/2030", "10:00"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}
