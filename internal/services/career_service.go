package services

import (
	"scholar_backend/internal/models"
	"scholar_backend/internal/repositories"
	"scholar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CareerService interface {
	ListGoals(db *gorm.DB, userEmail string) ([]models.CareerGoal, error)
	CreateGoal(db *gorm.DB, goal *models.CareerGoal) (*models.CareerGoal, error)
	UpdateGoal(db *gorm.DB, id uint, goal *models.CareerGoal) (int64, error)
	DeleteGoal(db *gorm.DB, id uint) (int64, error)

	ListHistory(db *gorm.DB, goalID uint) ([]models.StageHistory, error)
	AddHistory(db *gorm.DB, entry *models.StageHistory) (*models.StageHistory, error)
	DeleteHistory(db *gorm.DB, goalID, historyID uint) (int64, error)
}

type CareerServiceImpl struct {
	careerRepo repositories.CareerRepository
}

func NewCareerService(careerRepo repositories.CareerRepository) CareerService {
	return &CareerServiceImpl{careerRepo: careerRepo}
}

func (s *CareerServiceImpl) ListGoals(db *gorm.DB, userEmail string) ([]models.CareerGoal, error) {
	goals, err := s.careerRepo.ListByUser(db, userEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return goals, nil
}

func (s *CareerServiceImpl) CreateGoal(db *gorm.DB, goal *models.CareerGoal) (*models.CareerGoal, error) {
	if goal.UserEmail == "" {
		return nil, apperrors.MissingField("career_goal", "user_email")
	}
	if goal.Title == "" {
		return nil, apperrors.MissingField("career_goal", "title")
	}
	if goal.GoalType == "" {
		goal.GoalType = "general"
	}
	if goal.TotalStages == 0 {
		goal.TotalStages = 5
	}
	if goal.CreatedDate == "" {
		goal.CreatedDate = models.Stamp()
	}
	if err := s.careerRepo.Create(db, goal); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return goal, nil
}

func (s *CareerServiceImpl) UpdateGoal(db *gorm.DB, id uint, goal *models.CareerGoal) (int64, error) {
	count, err := s.careerRepo.Update(db, id, goal)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// DeleteGoal removes the goal and its stage history together; no
// orphan history rows survive.
func (s *CareerServiceImpl) DeleteGoal(db *gorm.DB, id uint) (int64, error) {
	count, err := s.careerRepo.DeleteWithHistory(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *CareerServiceImpl) ListHistory(db *gorm.DB, goalID uint) ([]models.StageHistory, error) {
	history, err := s.careerRepo.ListHistory(db, goalID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return history, nil
}

func (s *CareerServiceImpl) AddHistory(db *gorm.DB, entry *models.StageHistory) (*models.StageHistory, error) {
	if entry.GoalID == 0 {
		return nil, apperrors.MissingField("stage_history", "goal_id")
	}
	if entry.UpdatedDate == "" {
		entry.UpdatedDate = models.Stamp()
	}
	if err := s.careerRepo.CreateHistory(db, entry); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return entry, nil
}

func (s *CareerServiceImpl) DeleteHistory(db *gorm.DB, goalID, historyID uint) (int64, error) {
	count, err := s.careerRepo.DeleteHistory(db, goalID, historyID)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}
