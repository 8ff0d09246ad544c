package models

// AppointmentType describes the service category of a booking (cut, shave...).
type AppointmentType struct {
	BaseModel
	Name            string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	DurationMinutes int     `gorm:"type:integer;not null;default:30" json:"durationMinutes"`
	Price           float64 `gorm:"type:numeric(12,2);default:0.00" json:"price"`
}
