package model

import (
	"time"

	"gorm.io/gorm"
)

// Member represents a roster member entity.
// Matches the members table schema. A member's name is fixed at creation;
// only the is_active flag changes afterwards.
type Member struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                                      json:"id"`
	TeamID    string    `gorm:"column:team_id;type:varchar(36);not null;index:idx_members_team_id"         json:"team_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                                     json:"name"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null;default:true"                        json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                  json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                  json:"-"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "members"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (m *Member) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}
