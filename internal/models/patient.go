package models

import (
	"errors"
	"time"
)

// Patient status values. The client defaults to StatusRegular; the server
// stores whatever string it is given (kept from the original behavior).
const (
	StatusRegular = "Regular"
	StatusPWD     = "PWD"
	StatusSenior  = "Senior"
)

// ErrPatientNotFound is returned when an internal key addresses no record.
var ErrPatientNotFound = errors.New("patient not found")

// Patient represents a single patient record. ID is the storage-assigned
// internal key used for update/delete addressing; PatientID is the generated
// human-readable identifier and never changes after creation.
type Patient struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	PatientID    string    `gorm:"uniqueIndex;not null;size:20" json:"patientId"`
	FirstName    string    `gorm:"not null;size:100" json:"firstName"`
	LastName     string    `gorm:"not null;size:100" json:"lastName"`
	DOB          Date      `gorm:"column:dob;type:date;not null" json:"dob"`
	Gender       string    `gorm:"not null;size:20" json:"gender"`
	Age          int       `gorm:"not null" json:"age"`
	Condition    string    `gorm:"not null;size:255" json:"condition"`
	DateAdmitted Date      `gorm:"type:date;not null" json:"dateAdmitted"`
	Address      string    `gorm:"not null;size:255" json:"address"`
	Status       string    `gorm:"not null;size:20" json:"status"`
	Email        string    `gorm:"not null;size:255" json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

// FullName returns the display name used for search matching.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
