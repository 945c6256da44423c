package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	ID            string    `gorm:"primaryKey;column:id;type:varchar(36)"                      json:"id"`
	Name          string    `gorm:"column:name;type:varchar(255);not null"                     json:"name"`
	Slug          string    `gorm:"column:slug;type:varchar(255);not null;uniqueIndex"         json:"slug"`
	PlayersNeeded int       `gorm:"column:players_needed;type:integer;not null"                json:"players_needed"`
	AccessCode    string    `gorm:"column:access_code;type:varchar(16);not null"               json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"  json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
