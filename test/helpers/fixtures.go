package helpers

import (
	"fmt"
	"testing"
	"time"

	"scholar_backend/internal/auth"
	"scholar_backend/internal/models"

	"gorm.io/gorm"
)

// UniqueEmail returns an address no other parallel test will use.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateUser inserts a user directly, hashing the raw password the
// same way registration does.
func CreateUser(t *testing.T, tx *gorm.DB, name, email, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        auth.NormalizeEmail(email),
		PasswordHash: hash,
	}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateDeadline inserts a deadline row with explicit dates so
// ordering tests control the sort keys.
func CreateDeadline(t *testing.T, tx *gorm.DB, email, title, dueDate string) *models.Deadline {
	t.Helper()

	deadline := &models.Deadline{
		UserEmail:   email,
		Title:       title,
		DueDate:     dueDate,
		Priority:    "medium",
		Status:      "pending",
		CreatedDate: models.Stamp(),
	}
	if err := tx.Create(deadline).Error; err != nil {
		t.Fatalf("failed to create test deadline: %v", err)
	}
	return deadline
}
