package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Email     string         `gorm:"unique;not null" json:"email" example:"john.doe@example.com"`
	Password  string         `json:"-"`
	IsActive  bool           `gorm:"default:true" json:"is_active" example:"true"`
	Role      Role           `gorm:"type:varchar(20);default:'free';index" json:"role" example:"free"`
}

// IsPrivileged reports whether the user may regenerate plans and edit them.
func (u *User) IsPrivileged() bool {
	return u.Role == RolePremium || u.Role == RoleAdmin
}
