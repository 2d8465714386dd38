package models

import "time"

// Document is the metadata row for a blob held in object storage. StorageKey
// is the only link between the two; deleting one without the other orphans
// data.
type Document struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OriginalFilename string    `gorm:"not null" json:"original_filename"`
	StorageKey       string    `gorm:"uniqueIndex;not null" json:"storage_key"`
	Description      string    `json:"description"`
	UploadDate       time.Time `gorm:"autoCreateTime" json:"upload_date"`
	OwnerID          uint      `gorm:"not null" json:"owner_id"`
}
