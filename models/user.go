package models

// AppUser is the shared identity record behind clients and barbers.
type AppUser struct {
	BaseModel
	FirstName    string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string `gorm:"type:varchar(100);not null" json:"lastName"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber  string `gorm:"type:varchar(30)" json:"phoneNumber"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// FullName joins the name parts for notifications and transfer objects.
func (u AppUser) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
