package model

import (
	"time"

	"gorm.io/gorm"
)

// Match represents a scheduled match entity.
// Matches the matches table schema. Date is always stored in canonical ISO
// form (yyyy-mm-dd); OriginalDate holds the pre-change date once the match
// has been moved, for display purposes.
type Match struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(36)"                                   json:"id"`
	TeamID       string    `gorm:"column:team_id;type:varchar(36);not null;index:idx_matches_team_id"      json:"team_id"`
	Opponent     string    `gorm:"column:opponent;type:varchar(255);not null"                              json:"opponent"`
	Date         string    `gorm:"column:date;type:varchar(10);not null"                                   json:"date"`
	Time         string    `gorm:"column:time;type:varchar(5)"                                             json:"time"`
	IsHome       bool      `gorm:"column:is_home;type:boolean;not null;default:true"                       json:"is_home"`
	Venue        string    `gorm:"column:venue;type:varchar(255)"                                          json:"venue"`
	OriginalDate *string   `gorm:"column:original_date;type:varchar(10)"                                   json:"original_date,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"               json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"               json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (m *Match) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}

// AvailabilityRecord represents one member's availability answer for one
// match. The (match_id, member_id) pair is the primary key, so a new
// submission replaces the prior one.
type AvailabilityRecord struct {
	MatchID      string    `gorm:"primaryKey;column:match_id;type:varchar(36)"                json:"match_id"`
	MemberID     string    `gorm:"primaryKey;column:member_id;type:varchar(36)"               json:"member_id"`
	Availability string    `gorm:"column:availability;type:varchar(16);not null"              json:"availability"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"  json:"-"`
}

// TableName specifies the table name for GORM.
func (AvailabilityRecord) TableName() string {
	return "availability_records"
}

// DatePrediction represents one member's vote for an alternate match date.
// The (match_id, member_id, predicted_date) triple is the primary key, so a
// member's repeated vote for the same date replaces the prior one.
type DatePrediction struct {
	MatchID       string    `gorm:"primaryKey;column:match_id;type:varchar(36)"                json:"match_id"`
	MemberID      string    `gorm:"primaryKey;column:member_id;type:varchar(36)"               json:"member_id"`
	PredictedDate string    `gorm:"primaryKey;column:predicted_date;type:varchar(10)"          json:"predicted_date"`
	Availability  string    `gorm:"column:availability;type:varchar(16);not null"              json:"availability"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"-"`
}

// TableName specifies the table name for GORM.
func (DatePrediction) TableName() string {
	return "date_predictions"
}
