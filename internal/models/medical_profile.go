package models

import "gorm.io/gorm"

// MedicalProfile holds the emergency medical record a user fills in.
// At most one row per user, enforced by the unique index on UserID.
type MedicalProfile struct {
	gorm.Model

	UserID                uint `gorm:"uniqueIndex;not null"`
	FullName              string
	BloodType             string
	Allergies             string
	EmergencyContactName  string
	EmergencyContactPhone string
	MedicalConditions     string
	VitalMedications      string
}
