package models

// Colleague links a person to a project. The table is part of the
// schema for the frontend's project sharing screen; no API routes write
// it yet.
type Colleague struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"index" json:"project_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Meeting is keyed by the colleague's email, not the colleague row.
type Meeting struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ColleagueEmail string `gorm:"index;not null" json:"colleague_email"`
	Date           string `json:"date"`
	Description    string `json:"description"`
}
