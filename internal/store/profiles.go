package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/medvault-dev/medvault/internal/models"
	"gorm.io/gorm"
)

// ProfileFields carries every column a save request can set. Upsert writes all
// of them, so fields missing from a request reset to the empty string.
type ProfileFields struct {
	FullName              string
	BloodType             string
	Allergies             string
	EmergencyContactName  string
	EmergencyContactPhone string
	MedicalConditions     string
	VitalMedications      string
}

type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Upsert overwrites the user's profile, inserting a row on first save.
func (s *ProfileStore) Upsert(ctx context.Context, userID uint, fields ProfileFields) (*models.MedicalProfile, error) {
	var profile models.MedicalProfile

	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error

	switch {
	case err == nil:
		profile.FullName = fields.FullName
		profile.BloodType = fields.BloodType
		profile.Allergies = fields.Allergies
		profile.EmergencyContactName = fields.EmergencyContactName
		profile.EmergencyContactPhone = fields.EmergencyContactPhone
		profile.MedicalConditions = fields.MedicalConditions
		profile.VitalMedications = fields.VitalMedications

		if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
			return nil, fmt.Errorf("updating profile: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.MedicalProfile{
			UserID:                userID,
			FullName:              fields.FullName,
			BloodType:             fields.BloodType,
			Allergies:             fields.Allergies,
			EmergencyContactName:  fields.EmergencyContactName,
			EmergencyContactPhone: fields.EmergencyContactPhone,
			MedicalConditions:     fields.MedicalConditions,
			VitalMedications:      fields.VitalMedications,
		}

		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("creating profile: %w", err)
		}
	default:
		return nil, fmt.Errorf("checking existing profile: %w", err)
	}

	return &profile, nil
}

func (s *ProfileStore) Get(ctx context.Context, userID uint) (*models.MedicalProfile, error) {
	var profile models.MedicalProfile

	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	return &profile, nil
}

// InsertLegacy writes the reduced field set the old device endpoint accepts.
// It never checks for an existing row, so a repeated save for the same user
// hits the unique index on user_id and returns the raw database error. The
// old clients depend on this endpoint shape, so the behavior is kept as-is.
func (s *ProfileStore) InsertLegacy(ctx context.Context, userID uint, bloodType, allergies, emergencyPhone, medications string) error {
	profile := models.MedicalProfile{
		UserID:                userID,
		BloodType:             bloodType,
		Allergies:             allergies,
		EmergencyContactPhone: emergencyPhone,
		VitalMedications:      medications,
	}

	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return fmt.Errorf("inserting device data: %w", err)
	}

	return nil
}
