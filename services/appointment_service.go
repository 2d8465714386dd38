package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
)

type AppointmentInput struct {
	DoctorName          string    `json:"doctor_name"`
	Specialty           string    `json:"specialty"`
	AppointmentDatetime time.Time `json:"appointment_datetime" binding:"required"`
	Location            string    `json:"location"`
	Notes               string    `json:"notes"`
}

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) Create(ownerID uint, input AppointmentInput) (*models.Appointment, error) {
	if err := ownerExists(s.db, ownerID); err != nil {
		return nil, err
	}

	appt := models.Appointment{
		DoctorName:          input.DoctorName,
		Specialty:           input.Specialty,
		AppointmentDatetime: input.AppointmentDatetime,
		Location:            input.Location,
		Notes:               input.Notes,
		OwnerID:             ownerID,
	}
	if err := s.db.Create(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s *AppointmentService) List(ownerID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.
		Where("owner_id = ?", ownerID).
		Order("appointment_datetime desc").
		Find(&appts).Error
	return appts, err
}

// Upcoming returns the next week of appointments, soonest first. Used by the
// dashboard view.
func (s *AppointmentService) Upcoming(ownerID uint, now time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.
		Where("owner_id = ?", ownerID).
		Where("appointment_datetime BETWEEN ? AND ?", now, now.Add(7*24*time.Hour)).
		Order("appointment_datetime asc").
		Find(&appts).Error
	return appts, err
}

func (s *AppointmentService) Update(ownerID, id uint, input AppointmentInput) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&appt).Error
	if err != nil {
		return nil, err
	}

	appt.DoctorName = input.DoctorName
	appt.Specialty = input.Specialty
	appt.AppointmentDatetime = input.AppointmentDatetime
	appt.Location = input.Location
	appt.Notes = input.Notes
	if err := s.db.Save(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s *AppointmentService) Delete(ownerID, id uint) error {
	return s.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Appointment{}).Error
}
