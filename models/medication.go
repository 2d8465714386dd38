package models

import "time"

type Medication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;not null" json:"name"`
	Dosage    string    `json:"dosage"`
	Schedule  string    `json:"schedule"` // free text, e.g. "With breakfast, 08:00 and 20:00"
	StartDate time.Time `json:"start_date"`
	OwnerID   uint      `gorm:"not null" json:"owner_id"`
}
