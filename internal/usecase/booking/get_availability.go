package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type AvailabilityInput struct {
	SalonID     uint
	StaffID     uint
	TreatmentID uint
	Date        time.Time // já no fuso do salão
	Now         time.Time
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve a grade de horários do dia para um serviço.
// Dia fechado ou sem expediente cadastrado → lista vazia, sem erro
// (estado vazio na interface, não falha).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]schedule.TimeSlot, error) {

	treatment, err := uc.repo.GetTreatment(ctx, in.SalonID, in.TreatmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("treatment_not_found")
	}

	weekday := int(in.Date.Weekday())

	// sem expediente cadastrado é dia fechado; qualquer outra falha
	// de leitura sobe como erro, não como agenda vazia
	row, err := uc.repo.GetDaySchedule(ctx, in.SalonID, weekday)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []schedule.TimeSlot{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !row.Open {
		return []schedule.TimeSlot{}, nil
	}

	day := schedule.DaySchedule{
		Open:      row.Open,
		OpenTime:  row.OpenTime,
		CloseTime: row.CloseTime,
	}

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.StaffID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.BookedInterval, 0, len(appointments))
	for _, ap := range appointments {
		booked = append(booked, schedule.IntervalFromTimes(
			ap.StartTime.In(loc),
			ap.EndTime.In(loc),
		))
	}

	return schedule.GenerateSlots(
		in.Date,
		day,
		treatment.DurationMin,
		booked,
		in.Now,
	), nil
}
