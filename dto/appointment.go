package dto

import (
	"time"

	"sharpcut.app/models"
)

// AppointmentDto is the API-facing shape of an appointment. Display names are
// flattened out of the related entities when those were loaded.
type AppointmentDto struct {
	ID                  uint      `json:"id"`
	StartsAt            time.Time `json:"startsAt"`
	EndsAt              time.Time `json:"endsAt"`
	AppointmentTypeID   uint      `json:"appointmentTypeId"`
	AppointmentStatusID uint      `json:"appointmentStatusId"`
	ClientID            uint      `json:"clientId"`
	BarberID            uint      `json:"barberId"`
	TypeName            string    `json:"typeName,omitempty"`
	StatusName          string    `json:"statusName,omitempty"`
	ClientName          string    `json:"clientName,omitempty"`
	BarberName          string    `json:"barberName,omitempty"`
}

// CalendarSlotDto is the occupancy projection: time range only, no identity
// or status fields.
type CalendarSlotDto struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
}

// MapAppointment flattens a loaded appointment into its transfer object.
func MapAppointment(appt models.Appointment) AppointmentDto {
	return AppointmentDto{
		ID:                  appt.ID,
		StartsAt:            appt.StartsAt,
		EndsAt:              appt.EndsAt,
		AppointmentTypeID:   appt.AppointmentTypeID,
		AppointmentStatusID: appt.AppointmentStatusID,
		ClientID:            appt.ClientID,
		BarberID:            appt.BarberID,
		TypeName:            appt.AppointmentType.Name,
		StatusName:          appt.AppointmentStatus.Name,
		ClientName:          appt.Client.AppUser.FullName(),
		BarberName:          appt.Barber.AppUser.FullName(),
	}
}

// MapAppointments maps a result set, returning an empty (non-nil) slice for
// no rows so the API serializes [] instead of null.
func MapAppointments(appts []models.Appointment) []AppointmentDto {
	dtos := make([]AppointmentDto, 0, len(appts))
	for _, appt := range appts {
		dtos = append(dtos, MapAppointment(appt))
	}
	return dtos
}

// ToModel builds the persistence shape from a transfer object. Server-owned
// fields (timestamps) are left for the persistence layer.
func (d AppointmentDto) ToModel() models.Appointment {
	return models.Appointment{
		BaseModel:           models.BaseModel{ID: d.ID},
		StartsAt:            d.StartsAt,
		EndsAt:              d.EndsAt,
		AppointmentTypeID:   d.AppointmentTypeID,
		AppointmentStatusID: d.AppointmentStatusID,
		ClientID:            d.ClientID,
		BarberID:            d.BarberID,
	}
}
