package models

import "time"

const (
	OneOnOneStatusScheduled = "scheduled"
	OneOnOneStatusCompleted = "completed"
	OneOnOneStatusCancelled = "cancelled"
)

// OneOnOne is a scheduled 1:1 meeting. Both the organizer and the
// participant see a reminder for it in their feed.
type OneOnOne struct {
	ID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrganizerID   string `gorm:"type:uuid;not null" json:"organizer_id"`
	ParticipantID string `gorm:"type:uuid;not null" json:"participant_id"`

	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`
	Status      string    `gorm:"not null;default:scheduled" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
