package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// stubRepo implementa o Repository em memória para os testes dos
// use cases. Campos não configurados devolvem registro inexistente.
type stubRepo struct {
	salon     *models.Salon
	staff     *models.Staff
	treatment *models.Treatment

	salons      []models.Salon
	searchQuery string
	searchErr   error

	schedule    map[int]*models.SalonSchedule
	scheduleErr error

	dayAppointments []models.Appointment

	customer    *models.Customer
	conflictErr error
	createErr   error

	created *models.Appointment
}

func (s *stubRepo) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	if s.salon == nil || s.salon.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.salon, nil
}

func (s *stubRepo) GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	if s.salon == nil || s.salon.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return s.salon, nil
}

func (s *stubRepo) SearchSalons(ctx context.Context, query string) ([]models.Salon, error) {
	s.searchQuery = query
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.salons, nil
}

func (s *stubRepo) ListStaff(ctx context.Context, salonID uint) ([]models.Staff, error) {
	if s.staff == nil {
		return nil, nil
	}
	return []models.Staff{*s.staff}, nil
}

func (s *stubRepo) GetStaff(ctx context.Context, salonID, staffID uint) (*models.Staff, error) {
	if s.staff == nil || s.staff.ID != staffID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.staff, nil
}

func (s *stubRepo) ListTreatments(ctx context.Context, salonID uint) ([]models.Treatment, error) {
	if s.treatment == nil {
		return nil, nil
	}
	return []models.Treatment{*s.treatment}, nil
}

func (s *stubRepo) GetTreatment(ctx context.Context, salonID, treatmentID uint) (*models.Treatment, error) {
	if s.treatment == nil || s.treatment.ID != treatmentID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.treatment, nil
}

func (s *stubRepo) GetDaySchedule(ctx context.Context, salonID uint, weekday int) (*models.SalonSchedule, error) {
	if s.scheduleErr != nil {
		return nil, s.scheduleErr
	}
	row, ok := s.schedule[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubRepo) ListSchedule(ctx context.Context, salonID uint) ([]models.SalonSchedule, error) {
	var rows []models.SalonSchedule
	for _, row := range s.schedule {
		rows = append(rows, *row)
	}
	return rows, nil
}

func (s *stubRepo) GetOrCreateCustomer(ctx context.Context, salonID uint, name, phone, email string) (*models.Customer, error) {
	if s.customer != nil {
		return s.customer, nil
	}
	s.customer = &models.Customer{
		ID:      77,
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}
	return s.customer, nil
}

func (s *stubRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if s.createErr != nil {
		return s.createErr
	}
	ap.ID = 101
	s.created = ap
	return nil
}

func (s *stubRepo) AssertNoTimeConflict(ctx context.Context, staffID uint, start, end time.Time) error {
	return s.conflictErr
}

func (s *stubRepo) GetAppointmentForSalon(ctx context.Context, appointmentID, salonID uint) (*models.Appointment, error) {
	if s.created == nil || s.created.ID != appointmentID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.created, nil
}

func (s *stubRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.created = ap
	return nil
}

func (s *stubRepo) ListAppointmentsForDay(ctx context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	return s.dayAppointments, nil
}

func (s *stubRepo) ListAppointmentsForPeriod(ctx context.Context, salonID uint, start, end time.Time) ([]models.Appointment, error) {
	return s.dayAppointments, nil
}
