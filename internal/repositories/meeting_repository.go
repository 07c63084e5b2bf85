package repositories

import (
	"scholar_backend/internal/models"

	"gorm.io/gorm"
)

type MeetingRepository interface {
	ListByColleague(db *gorm.DB, colleagueEmail string) ([]models.Meeting, error)
	Create(db *gorm.DB, meeting *models.Meeting) error
	Update(db *gorm.DB, id uint, meeting *models.Meeting) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}

type MeetingRepositoryImpl struct{}

func NewMeetingRepository() MeetingRepository {
	return &MeetingRepositoryImpl{}
}

func (r *MeetingRepositoryImpl) ListByColleague(db *gorm.DB, colleagueEmail string) ([]models.Meeting, error) {
	meetings := []models.Meeting{}
	err := db.Where("colleague_email = ?", colleagueEmail).
		Order("date DESC").
		Find(&meetings).Error
	return meetings, err
}

func (r *MeetingRepositoryImpl) Create(db *gorm.DB, meeting *models.Meeting) error {
	return db.Create(meeting).Error
}

func (r *MeetingRepositoryImpl) Update(db *gorm.DB, id uint, meeting *models.Meeting) (int64, error) {
	result := db.Model(&models.Meeting{}).Where("id = ?", id).Updates(map[string]interface{}{
		"colleague_email": meeting.ColleagueEmail,
		"date":            meeting.Date,
		"description":     meeting.Description,
	})
	return result.RowsAffected, result.Error
}

func (r *MeetingRepositoryImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Meeting{}, id)
	return result.RowsAffected, result.Error
}
