package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	DepositPaid   bool      `json:"deposit_paid"`
	CustomerName  string    `json:"customer_name"`
	TreatmentName string    `json:"treatment_name"`
	StaffName     string    `json:"staff_name"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:            ap.ID,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		Status:        ap.Status,
		DepositPaid:   ap.DepositPaid,
		CustomerName:  ap.Customer.Name,
		TreatmentName: ap.Treatment.Name,
		StaffName:     ap.Staff.Name,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
