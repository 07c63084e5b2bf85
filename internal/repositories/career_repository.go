package repositories

import (
	"scholar_backend/internal/models"

	"gorm.io/gorm"
)

type CareerRepository interface {
	ListByUser(db *gorm.DB, userEmail string) ([]models.CareerGoal, error)
	Create(db *gorm.DB, goal *models.CareerGoal) error
	Update(db *gorm.DB, id uint, goal *models.CareerGoal) (int64, error)
	DeleteWithHistory(db *gorm.DB, id uint) (int64, error)

	ListHistory(db *gorm.DB, goalID uint) ([]models.StageHistory, error)
	CreateHistory(db *gorm.DB, entry *models.StageHistory) error
	DeleteHistory(db *gorm.DB, goalID, historyID uint) (int64, error)
}

type CareerRepositoryImpl struct{}

func NewCareerRepository() CareerRepository {
	return &CareerRepositoryImpl{}
}

func (r *CareerRepositoryImpl) ListByUser(db *gorm.DB, userEmail string) ([]models.CareerGoal, error) {
	goals := []models.CareerGoal{}
	err := db.Where("user_email = ?", userEmail).
		Order("created_date DESC").
		Find(&goals).Error
	return goals, err
}

func (r *CareerRepositoryImpl) Create(db *gorm.DB, goal *models.CareerGoal) error {
	return db.Create(goal).Error
}

func (r *CareerRepositoryImpl) Update(db *gorm.DB, id uint, goal *models.CareerGoal) (int64, error) {
	result := db.Model(&models.CareerGoal{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":             goal.Title,
		"description":       goal.Description,
		"progress":          goal.Progress,
		"goal_type":         goal.GoalType,
		"target_date":       goal.TargetDate,
		"total_stages":      goal.TotalStages,
		"current_stage":     goal.CurrentStage,
		"start_date":        goal.StartDate,
		"stage_description": goal.StageDescription,
	})
	return result.RowsAffected, result.Error
}

// DeleteWithHistory removes the goal's stage history and the goal in a
// single transaction: either both are gone or neither is. This is the
// one authoritative cascade; no schema-level ON DELETE is relied on.
func (r *CareerRepositoryImpl) DeleteWithHistory(db *gorm.DB, id uint) (int64, error) {
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", id).Delete(&models.StageHistory{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CareerGoal{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

// ListHistory orders ascending by stage, newest entry first within a
// stage.
func (r *CareerRepositoryImpl) ListHistory(db *gorm.DB, goalID uint) ([]models.StageHistory, error) {
	history := []models.StageHistory{}
	err := db.Where("goal_id = ?", goalID).
		Order("stage ASC, updated_date DESC").
		Find(&history).Error
	return history, err
}

func (r *CareerRepositoryImpl) CreateHistory(db *gorm.DB, entry *models.StageHistory) error {
	return db.Create(entry).Error
}

func (r *CareerRepositoryImpl) DeleteHistory(db *gorm.DB, goalID, historyID uint) (int64, error) {
	result := db.Where("goal_id = ?", goalID).Delete(&models.StageHistory{}, historyID)
	return result.RowsAffected, result.Error
}
