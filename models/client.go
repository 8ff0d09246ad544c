package models

// Client wraps an AppUser identity on the booking side.
type Client struct {
	BaseModel
	AppUserID uint    `gorm:"uniqueIndex;not null" json:"appUserId"`
	AppUser   AppUser `gorm:"foreignKey:AppUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appUser"`
}
