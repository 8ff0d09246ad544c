package models

// Barber wraps an AppUser identity on the providing side.
type Barber struct {
	BaseModel
	AppUserID uint    `gorm:"uniqueIndex;not null" json:"appUserId"`
	AppUser   AppUser `gorm:"foreignKey:AppUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appUser"`
}
