package services

import (
	"scholar_backend/internal/models"
	"scholar_backend/internal/repositories"
	"scholar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PlannerService covers the owner-scoped capture entities: ideas,
// notes, future work and deadlines. Required fields are checked for
// presence only; the remaining fields default per the data model, and
// created_date is stamped server-side when the caller omits it.
type PlannerService interface {
	ListIdeas(db *gorm.DB, userEmail string) ([]models.Idea, error)
	CreateIdea(db *gorm.DB, idea *models.Idea) (*models.Idea, error)
	UpdateIdea(db *gorm.DB, id uint, idea *models.Idea) (int64, error)
	DeleteIdea(db *gorm.DB, id uint) (int64, error)

	ListNotes(db *gorm.DB, userEmail string) ([]models.Note, error)
	CreateNote(db *gorm.DB, note *models.Note) (*models.Note, error)
	UpdateNote(db *gorm.DB, id uint, note *models.Note) (int64, error)
	DeleteNote(db *gorm.DB, id uint) (int64, error)

	ListFutureWork(db *gorm.DB, userEmail string) ([]models.FutureWork, error)
	CreateFutureWork(db *gorm.DB, item *models.FutureWork) (*models.FutureWork, error)
	UpdateFutureWork(db *gorm.DB, id uint, item *models.FutureWork) (int64, error)
	DeleteFutureWork(db *gorm.DB, id uint) (int64, error)

	ListDeadlines(db *gorm.DB, userEmail string) ([]models.Deadline, error)
	CreateDeadline(db *gorm.DB, deadline *models.Deadline) (*models.Deadline, error)
	UpdateDeadline(db *gorm.DB, id uint, deadline *models.Deadline) (int64, error)
	DeleteDeadline(db *gorm.DB, id uint) (int64, error)

	ListMeetings(db *gorm.DB, colleagueEmail string) ([]models.Meeting, error)
	CreateMeeting(db *gorm.DB, meeting *models.Meeting) (*models.Meeting, error)
	UpdateMeeting(db *gorm.DB, id uint, meeting *models.Meeting) (int64, error)
	DeleteMeeting(db *gorm.DB, id uint) (int64, error)
}

type PlannerServiceImpl struct {
	ideaRepo       repositories.IdeaRepository
	noteRepo       repositories.NoteRepository
	futureWorkRepo repositories.FutureWorkRepository
	deadlineRepo   repositories.DeadlineRepository
	meetingRepo    repositories.MeetingRepository
}

func NewPlannerService(
	ideaRepo repositories.IdeaRepository,
	noteRepo repositories.NoteRepository,
	futureWorkRepo repositories.FutureWorkRepository,
	deadlineRepo repositories.DeadlineRepository,
	meetingRepo repositories.MeetingRepository,
) PlannerService {
	return &PlannerServiceImpl{
		ideaRepo:       ideaRepo,
		noteRepo:       noteRepo,
		futureWorkRepo: futureWorkRepo,
		deadlineRepo:   deadlineRepo,
		meetingRepo:    meetingRepo,
	}
}

// --- Ideas ---

func (s *PlannerServiceImpl) ListIdeas(db *gorm.DB, userEmail string) ([]models.Idea, error) {
	ideas, err := s.ideaRepo.ListByUser(db, userEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return ideas, nil
}

func (s *PlannerServiceImpl) CreateIdea(db *gorm.DB, idea *models.Idea) (*models.Idea, error) {
	if idea.UserEmail == "" {
		return nil, apperrors.MissingField("idea", "user_email")
	}
	if idea.Title == "" {
		return nil, apperrors.MissingField("idea", "title")
	}
	if idea.Category == "" {
		idea.Category = "general"
	}
	if idea.CreatedDate == "" {
		idea.CreatedDate = models.Stamp()
	}
	if err := s.ideaRepo.Create(db, idea); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return idea, nil
}

func (s *PlannerServiceImpl) UpdateIdea(db *gorm.DB, id uint, idea *models.Idea) (int64, error) {
	count, err := s.ideaRepo.Update(db, id, idea)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *PlannerServiceImpl) DeleteIdea(db *gorm.DB, id uint) (int64, error) {
	count, err := s.ideaRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// --- Notes ---

func (s *PlannerServiceImpl) ListNotes(db *gorm.DB, userEmail string) ([]models.Note, error) {
	notes, err := s.noteRepo.ListByUser(db, userEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return notes, nil
}

func (s *PlannerServiceImpl) CreateNote(db *gorm.DB, note *models.Note) (*models.Note, error) {
	if note.UserEmail == "" {
		return nil, apperrors.MissingField("note", "user_email")
	}
	if note.Title == "" {
		return nil, apperrors.MissingField("note", "title")
	}
	if note.CreatedDate == "" {
		note.CreatedDate = models.Stamp()
	}
	if err := s.noteRepo.Create(db, note); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return note, nil
}

func (s *PlannerServiceImpl) UpdateNote(db *gorm.DB, id uint, note *models.Note) (int64, error) {
	count, err := s.noteRepo.Update(db, id, note)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *PlannerServiceImpl) DeleteNote(db *gorm.DB, id uint) (int64, error) {
	count, err := s.noteRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// --- Future work ---

func (s *PlannerServiceImpl) ListFutureWork(db *gorm.DB, userEmail string) ([]models.FutureWork, error) {
	items, err := s.futureWorkRepo.ListByUser(db, userEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return items, nil
}

func (s *PlannerServiceImpl) CreateFutureWork(db *gorm.DB, item *models.FutureWork) (*models.FutureWork, error) {
	if item.UserEmail == "" {
		return nil, apperrors.MissingField("future_work", "user_email")
	}
	if item.Title == "" {
		return nil, apperrors.MissingField("future_work", "title")
	}
	if item.Priority == "" {
		item.Priority = "medium"
	}
	if item.CreatedDate == "" {
		item.CreatedDate = models.Stamp()
	}
	if err := s.futureWorkRepo.Create(db, item); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return item, nil
}

func (s *PlannerServiceImpl) UpdateFutureWork(db *gorm.DB, id uint, item *models.FutureWork) (int64, error) {
	count, err := s.futureWorkRepo.Update(db, id, item)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *PlannerServiceImpl) DeleteFutureWork(db *gorm.DB, id uint) (int64, error) {
	count, err := s.futureWorkRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// --- Deadlines ---

func (s *PlannerServiceImpl) ListDeadlines(db *gorm.DB, userEmail string) ([]models.Deadline, error) {
	deadlines, err := s.deadlineRepo.ListByUser(db, userEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return deadlines, nil
}

func (s *PlannerServiceImpl) CreateDeadline(db *gorm.DB, deadline *models.Deadline) (*models.Deadline, error) {
	if deadline.UserEmail == "" {
		return nil, apperrors.MissingField("deadline", "user_email")
	}
	if deadline.Title == "" {
		return nil, apperrors.MissingField("deadline", "title")
	}
	if deadline.Priority == "" {
		deadline.Priority = "medium"
	}
	if deadline.Status == "" {
		deadline.Status = "pending"
	}
	if deadline.CreatedDate == "" {
		deadline.CreatedDate = models.Stamp()
	}
	if err := s.deadlineRepo.Create(db, deadline); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return deadline, nil
}

func (s *PlannerServiceImpl) UpdateDeadline(db *gorm.DB, id uint, deadline *models.Deadline) (int64, error) {
	count, err := s.deadlineRepo.Update(db, id, deadline)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *PlannerServiceImpl) DeleteDeadline(db *gorm.DB, id uint) (int64, error) {
	count, err := s.deadlineRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// --- Meetings ---

func (s *PlannerServiceImpl) ListMeetings(db *gorm.DB, colleagueEmail string) ([]models.Meeting, error) {
	meetings, err := s.meetingRepo.ListByColleague(db, colleagueEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return meetings, nil
}

func (s *PlannerServiceImpl) CreateMeeting(db *gorm.DB, meeting *models.Meeting) (*models.Meeting, error) {
	if meeting.ColleagueEmail == "" {
		return nil, apperrors.MissingField("meeting", "colleague_email")
	}
	if err := s.meetingRepo.Create(db, meeting); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return meeting, nil
}

func (s *PlannerServiceImpl) UpdateMeeting(db *gorm.DB, id uint, meeting *models.Meeting) (int64, error) {
	count, err := s.meetingRepo.Update(db, id, meeting)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *PlannerServiceImpl) DeleteMeeting(db *gorm.DB, id uint) (int64, error) {
	count, err := s.meetingRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}
