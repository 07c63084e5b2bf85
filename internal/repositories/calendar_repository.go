package repositories

import (
	"scholar_backend/internal/models"

	"gorm.io/gorm"
)

type CalendarRepository interface {
	ListByUser(db *gorm.DB, userEmail string) ([]models.CalendarEvent, error)
	Create(db *gorm.DB, event *models.CalendarEvent) error
	Update(db *gorm.DB, id uint, event *models.CalendarEvent) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}

type CalendarRepositoryImpl struct{}

func NewCalendarRepository() CalendarRepository {
	return &CalendarRepositoryImpl{}
}

// ListByUser orders by event date, then start time within a day.
func (r *CalendarRepositoryImpl) ListByUser(db *gorm.DB, userEmail string) ([]models.CalendarEvent, error) {
	events := []models.CalendarEvent{}
	err := db.Where("user_email = ?", userEmail).
		Order("event_date ASC, start_time ASC").
		Find(&events).Error
	return events, err
}

func (r *CalendarRepositoryImpl) Create(db *gorm.DB, event *models.CalendarEvent) error {
	return db.Create(event).Error
}

// Update replaces every mutable field and refreshes modified_date.
func (r *CalendarRepositoryImpl) Update(db *gorm.DB, id uint, event *models.CalendarEvent) (int64, error) {
	result := db.Model(&models.CalendarEvent{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":          event.Title,
		"description":    event.Description,
		"event_date":     event.EventDate,
		"start_time":     event.StartTime,
		"end_time":       event.EndTime,
		"location":       event.Location,
		"category":       event.Category,
		"attendees":      event.Attendees,
		"reminder":       event.Reminder,
		"is_all_day":     event.IsAllDay,
		"recurrence":     event.Recurrence,
		"recurrence_end": event.RecurrenceEnd,
		"show_as":        event.ShowAs,
		"priority":       event.Priority,
		"is_online":      event.IsOnline,
		"meeting_link":   event.MeetingLink,
		"attachments":    event.Attachments,
		"repeat_weekly":  event.RepeatWeekly,
		"modified_date":  models.Stamp(),
	})
	return result.RowsAffected, result.Error
}

func (r *CalendarRepositoryImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.CalendarEvent{}, id)
	return result.RowsAffected, result.Error
}
