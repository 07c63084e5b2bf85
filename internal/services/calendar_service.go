package services

import (
	"scholar_backend/internal/models"
	"scholar_backend/internal/repositories"
	"scholar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CalendarService interface {
	List(db *gorm.DB, userEmail string) ([]models.CalendarEvent, error)
	Create(db *gorm.DB, event *models.CalendarEvent) (*models.CalendarEvent, error)
	Update(db *gorm.DB, id uint, event *models.CalendarEvent) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}

type CalendarServiceImpl struct {
	calendarRepo repositories.CalendarRepository
}

func NewCalendarService(calendarRepo repositories.CalendarRepository) CalendarService {
	return &CalendarServiceImpl{calendarRepo: calendarRepo}
}

func (s *CalendarServiceImpl) List(db *gorm.DB, userEmail string) ([]models.CalendarEvent, error) {
	events, err := s.calendarRepo.ListByUser(db, userEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return events, nil
}

func (s *CalendarServiceImpl) Create(db *gorm.DB, event *models.CalendarEvent) (*models.CalendarEvent, error) {
	if event.UserEmail == "" {
		return nil, apperrors.MissingField("event", "userEmail")
	}
	if event.Title == "" {
		return nil, apperrors.MissingField("event", "title")
	}
	if event.Category == "" {
		event.Category = "Work"
	}
	if event.Reminder == 0 {
		event.Reminder = 15
	}
	if event.Recurrence == "" {
		event.Recurrence = "none"
	}
	if event.ShowAs == "" {
		event.ShowAs = "busy"
	}
	if event.Priority == "" {
		event.Priority = "normal"
	}
	if event.CreatedDate == "" {
		event.CreatedDate = models.Stamp()
	}
	event.ModifiedDate = event.CreatedDate

	if err := s.calendarRepo.Create(db, event); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return event, nil
}

func (s *CalendarServiceImpl) Update(db *gorm.DB, id uint, event *models.CalendarEvent) (int64, error) {
	count, err := s.calendarRepo.Update(db, id, event)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *CalendarServiceImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	count, err := s.calendarRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}
