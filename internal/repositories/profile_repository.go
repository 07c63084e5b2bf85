package repositories

import (
	"errors"

	"scholar_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByEmail(db *gorm.DB, userEmail string) (*models.Profile, error)
	Upsert(db *gorm.DB, profile *models.Profile) (*models.Profile, error)
	Delete(db *gorm.DB, userEmail string) (int64, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// FindByEmail returns nil (not an error) when no profile exists.
func (r *ProfileRepositoryImpl) FindByEmail(db *gorm.DB, userEmail string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("user_email = ?", userEmail).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert is a single INSERT ... ON CONFLICT (user_email) DO UPDATE, so
// the one-profile-per-user invariant holds even when two writers race.
// created_date survives from the first insert; modified_date is always
// the incoming value.
func (r *ProfileRepositoryImpl) Upsert(db *gorm.DB, profile *models.Profile) (*models.Profile, error) {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "designation", "department", "institution",
			"office", "phone", "email", "website",
			"degrees", "employment", "courses", "grants", "awards",
			"research_keywords", "skills", "memberships", "outreach",
			"modified_date",
		}),
	}).Create(profile).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the stored row (stable id and the
	// original created_date after an update).
	return r.FindByEmail(db, profile.UserEmail)
}

func (r *ProfileRepositoryImpl) Delete(db *gorm.DB, userEmail string) (int64, error) {
	result := db.Where("user_email = ?", userEmail).Delete(&models.Profile{})
	return result.RowsAffected, result.Error
}
