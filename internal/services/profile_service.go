package services

import (
	"scholar_backend/internal/auth"
	"scholar_backend/internal/models"
	"scholar_backend/internal/repositories"
	"scholar_backend/internal/resume"
	"scholar_backend/internal/services/dto"
	"scholar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	Get(db *gorm.DB, userEmail string) (*dto.ProfileResponse, error)
	Upsert(db *gorm.DB, req *dto.ProfileRequest) (*dto.ProfileResponse, error)
	Delete(db *gorm.DB, userEmail string) (int64, error)
	GenerateResume(db *gorm.DB, userEmail string) (string, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

// Get returns nil when no profile exists; the handler serializes that
// as JSON null.
func (s *ProfileServiceImpl) Get(db *gorm.DB, userEmail string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByEmail(db, auth.NormalizeEmail(userEmail))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if profile == nil {
		return nil, nil
	}
	return dto.ProfileFromModel(profile), nil
}

// Upsert writes the profile through a single atomic statement keyed on
// user_email. On insert both stamps are set; on update created_date is
// preserved and modified_date refreshed.
func (s *ProfileServiceImpl) Upsert(db *gorm.DB, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	profile := req.ToModel()
	profile.UserEmail = auth.NormalizeEmail(profile.UserEmail)
	if profile.UserEmail == "" {
		return nil, apperrors.MissingField("profile", "userEmail")
	}

	now := models.Stamp()
	if profile.CreatedDate == "" {
		profile.CreatedDate = now
	}
	profile.ModifiedDate = now

	stored, err := s.profileRepo.Upsert(db, profile)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ProfileFromModel(stored), nil
}

func (s *ProfileServiceImpl) Delete(db *gorm.DB, userEmail string) (int64, error) {
	count, err := s.profileRepo.Delete(db, auth.NormalizeEmail(userEmail))
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// GenerateResume renders the HTML resume for the given user, or the
// "profile not found" fallback document when no profile exists. Store
// failures surface as errors; render problems never leak raw detail.
func (s *ProfileServiceImpl) GenerateResume(db *gorm.DB, userEmail string) (string, error) {
	profile, err := s.profileRepo.FindByEmail(db, auth.NormalizeEmail(userEmail))
	if err != nil {
		return "", apperrors.DatabaseError(err)
	}
	if profile == nil {
		return resume.RenderNotFound(userEmail)
	}

	html, err := resume.Render(profile)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return html, nil
}
