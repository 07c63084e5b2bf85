package services

import (
	"scholar_backend/internal/models"
	"scholar_backend/internal/repositories"
	"scholar_backend/internal/services/dto"
	"scholar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	List(db *gorm.DB, ownerEmail string) ([]models.Project, error)
	Create(db *gorm.DB, project *models.Project) (*models.Project, error)
	Update(db *gorm.DB, id uint, project *models.Project) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
	GetDescription(db *gorm.DB, id uint) (*dto.DescriptionPayload, error)
	UpdateDescription(db *gorm.DB, id uint, payload *dto.DescriptionPayload) (int64, *dto.DescriptionPayload, error)
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) List(db *gorm.DB, ownerEmail string) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByOwner(db, ownerEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return projects, nil
}

func (s *ProjectServiceImpl) Create(db *gorm.DB, project *models.Project) (*models.Project, error) {
	if project.Name == "" {
		return nil, apperrors.MissingField("project", "name")
	}
	if project.OwnerEmail == "" {
		return nil, apperrors.MissingField("project", "owner_email")
	}

	if len(project.Colleagues) == 0 {
		project.SetColleagues(nil)
	}
	if project.CreatedDate == "" {
		project.CreatedDate = models.Stamp()
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) Update(db *gorm.DB, id uint, project *models.Project) (int64, error) {
	// An omitted colleagues list clears the column to "[]", never NULL.
	if len(project.Colleagues) == 0 {
		project.SetColleagues(nil)
	}

	count, err := s.projectRepo.Update(db, id, project)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *ProjectServiceImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	count, err := s.projectRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// GetDescription projects the stored row into the external camelCase
// shape. A missing project yields an empty payload, not a 404.
func (s *ProjectServiceImpl) GetDescription(db *gorm.DB, id uint) (*dto.DescriptionPayload, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if project == nil {
		return &dto.DescriptionPayload{}, nil
	}
	return dto.DescriptionFromModel(&project.ProjectDescription), nil
}

// UpdateDescription replaces all description fields, then returns the
// re-projected row alongside the affected-row count.
func (s *ProjectServiceImpl) UpdateDescription(db *gorm.DB, id uint, payload *dto.DescriptionPayload) (int64, *dto.DescriptionPayload, error) {
	count, err := s.projectRepo.UpdateDescription(db, id, payload.ToModel())
	if err != nil {
		return 0, nil, apperrors.DatabaseError(err)
	}

	fresh, err := s.GetDescription(db, id)
	if err != nil {
		return 0, nil, err
	}
	return count, fresh, nil
}
