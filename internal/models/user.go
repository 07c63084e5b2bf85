package models

// User is the identity anchor. Every other entity is scoped to a user
// through its normalized (lower-case) email, not a numeric key.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}
