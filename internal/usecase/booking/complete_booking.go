package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domainAppointment "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// USE CASE — conclusão do wizard
// ======================================================

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute transforma o rascunho finalizado em agendamento persistido.
// A prevenção de double-booking acontece aqui, na gravação — a grade
// de horários mostrada ao cliente é apenas uma dica de disponibilidade.
func (uc *CompleteBooking) Execute(
	ctx context.Context,
	draft domain.Draft,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Salão
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, draft.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no fuso do salão
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		draft.Date+" "+draft.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3️⃣ Antecedência mínima
	// --------------------------------------------------
	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4️⃣ Serviço
	// --------------------------------------------------
	treatment, err := uc.repo.GetTreatment(ctx, draft.SalonID, draft.TreatmentID)
	if err != nil || !treatment.Active {
		return nil, httperr.ErrBusiness("treatment_not_found")
	}

	end := start.Add(time.Duration(treatment.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 5️⃣ Profissional
	// --------------------------------------------------
	staff, err := uc.repo.GetStaff(ctx, draft.SalonID, draft.StaffID)
	if err != nil || !staff.Active {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	// --------------------------------------------------
	// 6️⃣ Dentro do expediente
	// --------------------------------------------------
	if err := uc.assertWithinSchedule(ctx, salon.ID, start); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Cliente (get or create)
	// --------------------------------------------------
	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		draft.SalonID,
		draft.CustomerName,
		draft.CustomerPhone,
		draft.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8️⃣ Conflito de horário (write-time, autoritativo)
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		draft.StaffID,
		start,
		end,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 9️⃣ Criação do agendamento
	// --------------------------------------------------
	ap := &models.Appointment{
		SalonID:     draft.SalonID,
		StaffID:     staff.ID,
		CustomerID:  customer.ID,
		TreatmentID: treatment.ID,
		StartTime:   start,
		EndTime:     end,
		Status:      string(domainAppointment.InitialStatus()),
		Notes:       draft.Notes,
		DepositPaid: draft.DepositPaid,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 🔟 Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  draft.SalonID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"deposit_paid": draft.DepositPaid,
		},
	})

	return ap, nil
}

func (uc *CompleteBooking) assertWithinSchedule(
	ctx context.Context,
	salonID uint,
	start time.Time,
) error {

	row, err := uc.repo.GetDaySchedule(ctx, salonID, int(start.Weekday()))
	if err != nil || !row.Open || row.OpenTime == "" || row.CloseTime == "" {
		return httperr.ErrBusiness("outside_opening_hours")
	}

	openMin, err := schedule.ParseClock(row.OpenTime)
	if err != nil {
		return httperr.ErrBusiness("outside_opening_hours")
	}
	closeMin, err := schedule.ParseClock(row.CloseTime)
	if err != nil {
		return httperr.ErrBusiness("outside_opening_hours")
	}

	startMin := schedule.MinutesOfDay(start)

	// mesma política da grade: vale começar até o último slot antes do
	// fechamento, mesmo que o serviço termine depois dele
	if startMin < openMin || startMin >= closeMin {
		return httperr.ErrBusiness("outside_opening_hours")
	}

	return nil
}
