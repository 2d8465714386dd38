package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
)

var ErrOwnerNotFound = errors.New("owner does not exist")

type MedicationInput struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage"`
	Schedule  string `json:"schedule"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
}

type MedicationService struct {
	db *gorm.DB
}

func NewMedicationService(db *gorm.DB) *MedicationService {
	return &MedicationService{db: db}
}

func (s *MedicationService) Create(ownerID uint, input MedicationInput) (*models.Medication, error) {
	if err := ownerExists(s.db, ownerID); err != nil {
		return nil, err
	}

	med := models.Medication{
		Name:     input.Name,
		Dosage:   input.Dosage,
		Schedule: input.Schedule,
		OwnerID:  ownerID,
	}
	if input.StartDate != "" {
		if d, err := time.Parse("2006-01-02", input.StartDate); err == nil {
			med.StartDate = d
		}
	}
	if err := s.db.Create(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

func (s *MedicationService) List(ownerID uint) ([]models.Medication, error) {
	var meds []models.Medication
	err := s.db.
		Where("owner_id = ?", ownerID).
		Order("name").
		Find(&meds).Error
	return meds, err
}

// Update edits a medication in place. A row that no longer exists (or belongs
// to someone else) reports gorm.ErrRecordNotFound so the caller can answer
// 404 instead of crashing.
func (s *MedicationService) Update(ownerID, id uint, input MedicationInput) (*models.Medication, error) {
	var med models.Medication
	err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&med).Error
	if err != nil {
		return nil, err
	}

	med.Name = input.Name
	med.Dosage = input.Dosage
	med.Schedule = input.Schedule
	if input.StartDate != "" {
		if d, err := time.Parse("2006-01-02", input.StartDate); err == nil {
			med.StartDate = d
		}
	}
	if err := s.db.Save(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

// Delete removes a medication. Deleting a row another session already removed
// is a benign no-op.
func (s *MedicationService) Delete(ownerID, id uint) error {
	return s.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Medication{}).Error
}

func ownerExists(db *gorm.DB, ownerID uint) error {
	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", ownerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrOwnerNotFound
	}
	return nil
}
