package models

// Idea is a quick capture note with a category.
type Idea struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserEmail   string `gorm:"index;not null" json:"user_email"`
	Title       string `gorm:"not null" json:"title"`
	Content     string `json:"content"`
	Category    string `gorm:"default:general" json:"category"`
	CreatedDate string `json:"created_date"`
}

type Note struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserEmail   string `gorm:"index;not null" json:"user_email"`
	Title       string `gorm:"not null" json:"title"`
	Content     string `json:"content"`
	CreatedDate string `json:"created_date"`
}

type FutureWork struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserEmail   string `gorm:"index;not null" json:"user_email"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Priority    string `gorm:"default:medium" json:"priority"`
	Timeline    string `json:"timeline"`
	CreatedDate string `json:"created_date"`
}

type Deadline struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserEmail   string `gorm:"index;not null" json:"user_email"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `gorm:"default:medium" json:"priority"`
	Status      string `gorm:"default:pending" json:"status"`
	CreatedDate string `json:"created_date"`
}
