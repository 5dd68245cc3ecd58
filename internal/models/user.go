package models

import "gorm.io/gorm"

// User roles. A single identity record carries a role tag instead of
// per-role tables.
const (
	RoleAdmin   = "A"
	RoleSeller  = "V"
	RoleShopper = "C"
)

// User represents an account of the store: shopper, seller, or admin.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(150)" validate:"required,min=3,max=150"`
	FirstName  string `json:"first_name" gorm:"type:varchar(150)" validate:"required,max=150"`
	LastName   string `json:"last_name" gorm:"type:varchar(150)" validate:"required,max=150"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone      string `json:"phone" gorm:"type:varchar(20)" validate:"required,max=20"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=8"`
	Role       string `json:"role" gorm:"type:varchar(1);default:C" validate:"omitempty,oneof=A V C"`
	Active     bool   `json:"active" gorm:"default:true"`
	gorm.Model        // CreatedAt, UpdatedAt, DeletedAt
}
