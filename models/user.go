package models

import "time"

type RoleType string

const (
	RoleAdmin    RoleType = "admin"
	RoleSeller   RoleType = "seller"
	RoleCustomer RoleType = "customer"
)

type User struct {
	UserID    uint   `gorm:"primaryKey;autoIncrement" json:"userId"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`

	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`

	Role      *Role     `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Role is one-per-user. Admins additionally carry User.IsAdmin for token claims.
type Role struct {
	RoleID   uint     `gorm:"primaryKey;autoIncrement" json:"roleId"`
	UserID   uint     `gorm:"uniqueIndex;not null" json:"userId"`
	RoleType RoleType `gorm:"type:VARCHAR(20);not null" json:"roleType"`
}
