package models

import "time"

type Appointment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	DoctorName          string    `gorm:"index" json:"doctor_name"`
	Specialty           string    `json:"specialty"`
	AppointmentDatetime time.Time `gorm:"not null" json:"appointment_datetime"`
	Location            string    `json:"location"`
	Notes               string    `gorm:"type:text" json:"notes"`
	OwnerID             uint      `gorm:"not null" json:"owner_id"`
}
