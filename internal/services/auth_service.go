package services

import (
	"scholar_backend/internal/auth"
	"scholar_backend/internal/models"
	"scholar_backend/internal/repositories"
	"scholar_backend/internal/services/dto"
	"scholar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register creates a new identity. Email is normalized before storage,
// so duplicate detection is case-insensitive.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	email := auth.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(db, email); err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	return user, nil
}

// Login verifies the password against the stored hash. Unknown email
// and wrong password report the same error so callers cannot enumerate
// accounts.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*models.User, error) {
	email := auth.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
