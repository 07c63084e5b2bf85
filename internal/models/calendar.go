package models

// CalendarEvent mirrors the fields the calendar UI sends. The API uses
// camelCase names here; booleans are native bools and serialize as
// true/false.
type CalendarEvent struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserEmail     string `gorm:"index;not null" json:"userEmail"`
	Title         string `gorm:"not null" json:"title"`
	Description   string `json:"description"`
	EventDate     string `json:"eventDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Location      string `json:"location"`
	Category      string `gorm:"default:Work" json:"category"`
	Attendees     string `json:"attendees"`
	Reminder      int    `gorm:"default:15" json:"reminder"` // minutes before start
	IsAllDay      bool   `gorm:"default:false" json:"isAllDay"`
	Recurrence    string `gorm:"default:none" json:"recurrence"`
	RecurrenceEnd string `json:"recurrenceEnd"`
	ShowAs        string `gorm:"default:busy" json:"showAs"`
	Priority      string `gorm:"default:normal" json:"priority"`
	IsOnline      bool   `gorm:"default:false" json:"isOnline"`
	MeetingLink   string `json:"meetingLink"`
	Attachments   string `json:"attachments"`
	RepeatWeekly  bool   `gorm:"default:false" json:"repeatWeekly"`
	CreatedDate   string `json:"createdDate"`
	ModifiedDate  string `json:"modifiedDate"`
}
