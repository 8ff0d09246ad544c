package models

import "time"

// Appointment is the only mutable aggregate of the scheduling subsystem.
// Everything it references (type, status, client, barber) is owned elsewhere.
type Appointment struct {
	BaseModel
	StartsAt            time.Time `gorm:"index;not null" json:"startsAt"`
	EndsAt              time.Time `gorm:"not null" json:"endsAt"`
	AppointmentTypeID   uint      `gorm:"index;not null" json:"appointmentTypeId"`
	AppointmentStatusID uint      `gorm:"index;not null" json:"appointmentStatusId"`
	ClientID            uint      `gorm:"index;not null" json:"clientId"`
	BarberID            uint      `gorm:"index;not null" json:"barberId"`

	AppointmentType   AppointmentType   `gorm:"foreignKey:AppointmentTypeID" json:"appointmentType"`
	AppointmentStatus AppointmentStatus `gorm:"foreignKey:AppointmentStatusID" json:"appointmentStatus"`
	Client            Client            `gorm:"foreignKey:ClientID" json:"client"`
	Barber            Barber            `gorm:"foreignKey:BarberID" json:"barber"`
}
