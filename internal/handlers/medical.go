package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medvault-dev/medvault/internal/store"
	"github.com/medvault-dev/medvault/internal/utils"
)

type SaveMedicalDataRequest struct {
	FullName              string `form:"full_name" json:"full_name"`
	BloodType             string `form:"blood_type" json:"blood_type"`
	Allergies             string `form:"allergies" json:"allergies"`
	EmergencyContactName  string `form:"emergency_contact_name" json:"emergency_contact_name"`
	EmergencyContactPhone string `form:"emergency_contact_phone" json:"emergency_contact_phone"`
	MedicalConditions     string `form:"medical_conditions" json:"medical_conditions"`
	VitalMedications      string `form:"vital_medications" json:"vital_medications"`
}

type SaveMedicalDataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MedicalDataResponse struct {
	FullName              string    `json:"full_name"`
	BloodType             string    `json:"blood_type"`
	Allergies             string    `json:"allergies"`
	EmergencyContactName  string    `json:"emergency_contact_name"`
	EmergencyContactPhone string    `json:"emergency_contact_phone"`
	MedicalConditions     string    `json:"medical_conditions"`
	VitalMedications      string    `json:"vital_medications"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// SaveDeviceDataRequest is the reduced field set the pre-profile clients send.
type SaveDeviceDataRequest struct {
	BloodType        string `form:"blood_type" json:"blood_type"`
	Allergies        string `form:"allergies" json:"allergies"`
	EmergencyContact string `form:"emergency_contact" json:"emergency_contact"`
	Medications      string `form:"medications" json:"medications"`
}

type DeviceDataResponse struct {
	ID                    uint      `json:"id"`
	UserID                uint      `json:"user_id"`
	FullName              string    `json:"full_name"`
	BloodType             string    `json:"blood_type"`
	Allergies             string    `json:"allergies"`
	EmergencyContactName  string    `json:"emergency_contact_name"`
	EmergencyContactPhone string    `json:"emergency_contact_phone"`
	MedicalConditions     string    `json:"medical_conditions"`
	VitalMedications      string    `json:"vital_medications"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (h *Handler) SaveMedicalData(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var req SaveMedicalDataRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fields := store.ProfileFields{
		FullName:              req.FullName,
		BloodType:             req.BloodType,
		Allergies:             req.Allergies,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		MedicalConditions:     req.MedicalConditions,
		VitalMedications:      req.VitalMedications,
	}

	if _, err := h.profiles.Upsert(ctx.Request.Context(), userID, fields); err != nil {
		log.Printf("Failed to save medical data: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving data"})
		return
	}

	ctx.JSON(http.StatusOK, SaveMedicalDataResponse{
		Success: true,
		Message: "Data saved successfully",
	})
}

func (h *Handler) GetMedicalData(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	profile, err := h.profiles.Get(ctx.Request.Context(), userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusOK, nil)
			return
		}
		log.Printf("Failed to fetch medical data: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving data"})
		return
	}

	ctx.JSON(http.StatusOK, MedicalDataResponse{
		FullName:              profile.FullName,
		BloodType:             profile.BloodType,
		Allergies:             profile.Allergies,
		EmergencyContactName:  profile.EmergencyContactName,
		EmergencyContactPhone: profile.EmergencyContactPhone,
		MedicalConditions:     profile.MedicalConditions,
		VitalMedications:      profile.VitalMedications,
		CreatedAt:             profile.CreatedAt,
		UpdatedAt:             profile.UpdatedAt,
	})
}

// SaveDeviceData is the legacy save route. Unlike SaveMedicalData it inserts
// blindly, so a second save for the same user fails against the unique index
// instead of updating the existing row.
func (h *Handler) SaveDeviceData(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var req SaveDeviceDataRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Invalid request")
		return
	}

	err = h.profiles.InsertLegacy(ctx.Request.Context(), userID, req.BloodType, req.Allergies, req.EmergencyContact, req.Medications)

	if err != nil {
		log.Printf("Failed to save device data: %v", err)
		ctx.String(http.StatusInternalServerError, "Error saving data")
		return
	}

	ctx.String(http.StatusOK, "Data saved successfully")
}

func (h *Handler) GetDeviceData(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	profile, err := h.profiles.Get(ctx.Request.Context(), userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusOK, gin.H{})
			return
		}
		log.Printf("Failed to fetch device data: %v", err)
		ctx.String(http.StatusInternalServerError, "Error retrieving data")
		return
	}

	ctx.JSON(http.StatusOK, DeviceDataResponse{
		ID:                    profile.ID,
		UserID:                profile.UserID,
		FullName:              profile.FullName,
		BloodType:             profile.BloodType,
		Allergies:             profile.Allergies,
		EmergencyContactName:  profile.EmergencyContactName,
		EmergencyContactPhone: profile.EmergencyContactPhone,
		MedicalConditions:     profile.MedicalConditions,
		VitalMedications:      profile.VitalMedications,
		CreatedAt:             profile.CreatedAt,
		UpdatedAt:             profile.UpdatedAt,
	})
}
