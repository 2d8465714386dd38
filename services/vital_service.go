package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
)

var ErrInvalidVitalType = errors.New("unknown vital type")

type VitalInput struct {
	VitalType  string   `json:"vital_type" binding:"required"`
	Value1     float64  `json:"value1" binding:"required"`
	Value2     *float64 `json:"value2"`
	Unit       string   `json:"unit"`
	RecordDate string   `json:"record_date"` // YYYY-MM-DD, defaults to now
}

type VitalService struct {
	db *gorm.DB
}

func NewVitalService(db *gorm.DB) *VitalService {
	return &VitalService{db: db}
}

func (s *VitalService) Create(ownerID uint, input VitalInput) (*models.HealthVital, error) {
	if !models.ValidVitalType(input.VitalType) {
		return nil, ErrInvalidVitalType
	}
	if err := ownerExists(s.db, ownerID); err != nil {
		return nil, err
	}

	vital := models.HealthVital{
		VitalType: input.VitalType,
		Value1:    input.Value1,
		Unit:      input.Unit,
		OwnerID:   ownerID,
	}
	// second component only makes sense for blood pressure readings
	if input.VitalType == models.VitalBloodPressure {
		vital.Value2 = input.Value2
	}
	if input.RecordDate != "" {
		if d, err := time.Parse("2006-01-02", input.RecordDate); err == nil {
			vital.RecordDate = d
		}
	}
	if err := s.db.Create(&vital).Error; err != nil {
		return nil, err
	}
	return &vital, nil
}

// List returns the owner's readings oldest first, optionally filtered to one
// vital type, ready for trend charting.
func (s *VitalService) List(ownerID uint, vitalType string) ([]models.HealthVital, error) {
	q := s.db.Where("owner_id = ?", ownerID)
	if vitalType != "" {
		q = q.Where("vital_type = ?", vitalType)
	}
	var vitals []models.HealthVital
	err := q.Order("record_date asc").Find(&vitals).Error
	return vitals, err
}

func (s *VitalService) Delete(ownerID, id uint) error {
	return s.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.HealthVital{}).Error
}
