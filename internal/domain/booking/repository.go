package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository é o provedor de dados e o destino de gravação do fluxo
// de agendamento. A serialização de reservas concorrentes acontece
// aqui (AssertNoTimeConflict), nunca no wizard.
type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	SearchSalons(
		ctx context.Context,
		query string,
	) ([]models.Salon, error)

	// -------- Staff --------
	ListStaff(
		ctx context.Context,
		salonID uint,
	) ([]models.Staff, error)

	GetStaff(
		ctx context.Context,
		salonID uint,
		staffID uint,
	) (*models.Staff, error)

	// -------- Treatment --------
	ListTreatments(
		ctx context.Context,
		salonID uint,
	) ([]models.Treatment, error)

	GetTreatment(
		ctx context.Context,
		salonID uint,
		treatmentID uint,
	) (*models.Treatment, error)

	// -------- Opening hours --------
	GetDaySchedule(
		ctx context.Context,
		salonID uint,
		weekday int,
	) (*models.SalonSchedule, error)

	ListSchedule(
		ctx context.Context,
		salonID uint,
	) ([]models.SalonSchedule, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForSalon(
		ctx context.Context,
		appointmentID uint,
		salonID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability / agenda --------
	ListAppointmentsForDay(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
