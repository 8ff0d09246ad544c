package models

// AppointmentStatus is a read-only lookup row; transitions resolve it by name.
type AppointmentStatus struct {
	BaseModel
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

const (
	StatusNameScheduled = "Scheduled"
	StatusNameCompleted = "Completed"
	StatusNameCanceled  = "Canceled"
)
