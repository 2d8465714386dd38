package models

import "time"

// Vital type vocabulary. Value2 is only used for two-component readings
// (systolic/diastolic).
const (
	VitalBloodPressure = "Blood Pressure"
	VitalBloodSugar    = "Blood Sugar"
	VitalWeight        = "Weight"
	VitalHeartRate     = "Heart Rate"
)

func ValidVitalType(t string) bool {
	switch t {
	case VitalBloodPressure, VitalBloodSugar, VitalWeight, VitalHeartRate:
		return true
	}
	return false
}

type HealthVital struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	VitalType  string    `gorm:"index;not null" json:"vital_type"`
	Value1     float64   `gorm:"not null" json:"value1"`
	Value2     *float64  `json:"value2,omitempty"`
	Unit       string    `json:"unit"`
	RecordDate time.Time `gorm:"not null;autoCreateTime" json:"record_date"`
	OwnerID    uint      `gorm:"not null" json:"owner_id"`
}
