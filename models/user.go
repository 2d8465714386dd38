package models

// User is the internal identity record. The username comes from the external
// authenticator; this row is the join key for everything the user owns.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
}
