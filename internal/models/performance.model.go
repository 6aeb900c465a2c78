package models

import (
	"crypto/rand"
	"time"

	"gorm.io/gorm"
)

type PerformanceStatus string

const (
	PerformanceStatusUpcoming  PerformanceStatus = "futuro"
	PerformanceStatusSuspended PerformanceStatus = "suspendida"
	PerformanceStatusRunning   PerformanceStatus = "representandose"
	PerformanceStatusCompleted PerformanceStatus = "representada"
)

const (
	PerformanceUIDLength = 12
	MaxUIDLength         = 32
	MaxLocationLength    = 255
	MaxCommentLength     = 500

	uidCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type Performance struct {
	BaseModel
	PlayID      int        `gorm:"not null;index"             json:"playId"`
	UID         string     `gorm:"column:uid;type:varchar(32);not null" json:"uid"`
	ScheduledAt time.Time  `gorm:"type:timestamp;not null"    json:"scheduledAt"`
	Location    string     `gorm:"type:varchar(255);not null" json:"location"`
	Comment     *string    `gorm:"type:varchar(500)"          json:"comment"`
	StartedAt   *time.Time `gorm:"type:timestamp"             json:"startedAt"`
	EndedAt     *time.Time `gorm:"type:timestamp"             json:"endedAt"`

	// Derived from the three timestamps at read time, never persisted.
	Status *PerformanceStatus `gorm:"-" json:"status"`
}

func (p *Performance) BeforeCreate(tx *gorm.DB) error {
	if p.UID == "" {
		uid, err := GeneratePerformanceUID()
		if err != nil {
			return err
		}
		p.UID = uid
	}
	return nil
}

// GeneratePerformanceUID returns a 12 character uppercase alphanumeric token.
// There is no retry on collision; the partial unique index on active
// performances is the authority and a collision surfaces as a storage error.
func GeneratePerformanceUID() (string, error) {
	bytes := make([]byte, PerformanceUIDLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i, b := range bytes {
		bytes[i] = uidCharset[int(b)%len(uidCharset)]
	}

	return string(bytes), nil
}

// DeriveStatus computes the display status relative to now.
//
//	futuro          scheduled in the future, not started, not ended
//	suspendida      scheduled in the past, started and ended at the same instant
//	representandose scheduled in the past, started, not ended
//	representada    scheduled in the past, started and ended
//
// Any other combination has no status.
func (p *Performance) DeriveStatus(now time.Time) *PerformanceStatus {
	if p.ScheduledAt.IsZero() {
		return nil
	}

	future := p.ScheduledAt.After(now)
	past := p.ScheduledAt.Before(now)

	if future && p.StartedAt == nil && p.EndedAt == nil {
		return statusPtr(PerformanceStatusUpcoming)
	}

	if past && p.StartedAt != nil && p.EndedAt != nil && p.StartedAt.Equal(*p.EndedAt) {
		return statusPtr(PerformanceStatusSuspended)
	}

	if past && p.StartedAt != nil && p.EndedAt == nil {
		return statusPtr(PerformanceStatusRunning)
	}

	if past && p.StartedAt != nil && p.EndedAt != nil {
		return statusPtr(PerformanceStatusCompleted)
	}

	return nil
}

// RefreshStatus recomputes Status against the current instant.
func (p *Performance) RefreshStatus() {
	p.Status = p.DeriveStatus(time.Now())
}

func statusPtr(s PerformanceStatus) *PerformanceStatus {
	return &s
}
