package models

import "time"

// PendingSubmission stages one wizard session across an authentication
// round-trip. A slot holds at most one snapshot; saving again overwrites it.
type PendingSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Slot      string    `gorm:"uniqueIndex;not null" json:"slot"`
	Snapshot  []byte    `gorm:"not null" json:"snapshot"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}
