package models

import (
	"time"
)

type Subscription struct {
	ID        uint       `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID    uint       `gorm:"unique;not null" json:"user_id" example:"1"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Tier      Role       `gorm:"type:varchar(20);default:'free'" json:"tier" example:"premium"`
	StartDate time.Time  `json:"start_date" example:"2023-01-01T00:00:00Z"`
	EndDate   *time.Time `gorm:"index" json:"end_date,omitempty" example:"2023-01-31T00:00:00Z"`
	IsActive  bool       `gorm:"default:true" json:"is_active" example:"true"`
}

// IsActivePremium reports whether the subscription currently grants premium.
func (s *Subscription) IsActivePremium() bool {
	return s.IsActive && s.Tier == RolePremium
}
