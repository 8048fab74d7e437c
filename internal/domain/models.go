// Package domain defines the persistence model for contact form submissions.
// The type is mapped with GORM and forms the core data layer of the contact
// intake backend.
package domain

import (
	"time"
)

// Contact represents a single consultation request submitted through the
// public contact form. Records are write-once: they are created on a
// successful validated submission and are never updated or deleted.
//
// Fields:
//   - ID: numeric primary key. In the persistent server the database assigns
//     it (AUTOINCREMENT); the stateless deployment derives it from the clock
//     instead (see repo.TimestampIDs).
//   - Name / Email / Phone / Service: required, never empty for a persisted
//     row. Email always matches the submission validation pattern.
//   - Message: optional free text; empty string when the submitter left it blank.
//   - CreatedAt: set at persistence time, never client-supplied.
type Contact struct {
	ID        int64     `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null;index"`
	Phone     string    `json:"phone"      gorm:"type:varchar(64);not null"`
	Service   string    `json:"service"    gorm:"type:varchar(128);not null"`
	Message   string    `json:"message"    gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }
