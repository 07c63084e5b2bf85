package repositories

import (
	"scholar_backend/internal/models"

	"gorm.io/gorm"
)

// The planner repositories cover the four simple owner-scoped entities:
// ideas, notes, future work and deadlines. Lists return empty slices
// when nothing matches; updates and deletes report affected-row counts
// and treat a missing id as a zero count, not an error.

type IdeaRepository interface {
	ListByUser(db *gorm.DB, userEmail string) ([]models.Idea, error)
	Create(db *gorm.DB, idea *models.Idea) error
	Update(db *gorm.DB, id uint, idea *models.Idea) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}

type IdeaRepositoryImpl struct{}

func NewIdeaRepository() IdeaRepository {
	return &IdeaRepositoryImpl{}
}

func (r *IdeaRepositoryImpl) ListByUser(db *gorm.DB, userEmail string) ([]models.Idea, error) {
	ideas := []models.Idea{}
	err := db.Where("user_email = ?", userEmail).
		Order("created_date DESC").
		Find(&ideas).Error
	return ideas, err
}

func (r *IdeaRepositoryImpl) Create(db *gorm.DB, idea *models.Idea) error {
	return db.Create(idea).Error
}

func (r *IdeaRepositoryImpl) Update(db *gorm.DB, id uint, idea *models.Idea) (int64, error) {
	result := db.Model(&models.Idea{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":    idea.Title,
		"content":  idea.Content,
		"category": idea.Category,
	})
	return result.RowsAffected, result.Error
}

func (r *IdeaRepositoryImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Idea{}, id)
	return result.RowsAffected, result.Error
}

type NoteRepository interface {
	ListByUser(db *gorm.DB, userEmail string) ([]models.Note, error)
	Create(db *gorm.DB, note *models.Note) error
	Update(db *gorm.DB, id uint, note *models.Note) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}

type NoteRepositoryImpl struct{}

func NewNoteRepository() NoteRepository {
	return &NoteRepositoryImpl{}
}

func (r *NoteRepositoryImpl) ListByUser(db *gorm.DB, userEmail string) ([]models.Note, error) {
	notes := []models.Note{}
	err := db.Where("user_email = ?", userEmail).
		Order("created_date DESC").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) Create(db *gorm.DB, note *models.Note) error {
	return db.Create(note).Error
}

func (r *NoteRepositoryImpl) Update(db *gorm.DB, id uint, note *models.Note) (int64, error) {
	result := db.Model(&models.Note{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":   note.Title,
		"content": note.Content,
	})
	return result.RowsAffected, result.Error
}

func (r *NoteRepositoryImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Note{}, id)
	return result.RowsAffected, result.Error
}

type FutureWorkRepository interface {
	ListByUser(db *gorm.DB, userEmail string) ([]models.FutureWork, error)
	Create(db *gorm.DB, item *models.FutureWork) error
	Update(db *gorm.DB, id uint, item *models.FutureWork) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}

type FutureWorkRepositoryImpl struct{}

func NewFutureWorkRepository() FutureWorkRepository {
	return &FutureWorkRepositoryImpl{}
}

func (r *FutureWorkRepositoryImpl) ListByUser(db *gorm.DB, userEmail string) ([]models.FutureWork, error) {
	items := []models.FutureWork{}
	err := db.Where("user_email = ?", userEmail).
		Order("created_date DESC").
		Find(&items).Error
	return items, err
}

func (r *FutureWorkRepositoryImpl) Create(db *gorm.DB, item *models.FutureWork) error {
	return db.Create(item).Error
}

func (r *FutureWorkRepositoryImpl) Update(db *gorm.DB, id uint, item *models.FutureWork) (int64, error) {
	result := db.Model(&models.FutureWork{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       item.Title,
		"description": item.Description,
		"priority":    item.Priority,
		"timeline":    item.Timeline,
	})
	return result.RowsAffected, result.Error
}

func (r *FutureWorkRepositoryImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.FutureWork{}, id)
	return result.RowsAffected, result.Error
}

type DeadlineRepository interface {
	ListByUser(db *gorm.DB, userEmail string) ([]models.Deadline, error)
	ListDueBefore(db *gorm.DB, cutoff string) ([]models.Deadline, error)
	Create(db *gorm.DB, deadline *models.Deadline) error
	Update(db *gorm.DB, id uint, deadline *models.Deadline) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}

type DeadlineRepositoryImpl struct{}

func NewDeadlineRepository() DeadlineRepository {
	return &DeadlineRepositoryImpl{}
}

// ListByUser orders by due date: soonest first.
func (r *DeadlineRepositoryImpl) ListByUser(db *gorm.DB, userEmail string) ([]models.Deadline, error) {
	deadlines := []models.Deadline{}
	err := db.Where("user_email = ?", userEmail).
		Order("due_date ASC").
		Find(&deadlines).Error
	return deadlines, err
}

// ListDueBefore returns pending deadlines due before the cutoff. Used by
// the reminder worker.
func (r *DeadlineRepositoryImpl) ListDueBefore(db *gorm.DB, cutoff string) ([]models.Deadline, error) {
	deadlines := []models.Deadline{}
	err := db.Where("status = ? AND due_date != '' AND due_date <= ?", "pending", cutoff).
		Order("due_date ASC").
		Find(&deadlines).Error
	return deadlines, err
}

func (r *DeadlineRepositoryImpl) Create(db *gorm.DB, deadline *models.Deadline) error {
	return db.Create(deadline).Error
}

func (r *DeadlineRepositoryImpl) Update(db *gorm.DB, id uint, deadline *models.Deadline) (int64, error) {
	result := db.Model(&models.Deadline{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       deadline.Title,
		"description": deadline.Description,
		"due_date":    deadline.DueDate,
		"priority":    deadline.Priority,
		"status":      deadline.Status,
	})
	return result.RowsAffected, result.Error
}

func (r *DeadlineRepositoryImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Deadline{}, id)
	return result.RowsAffected, result.Error
}
