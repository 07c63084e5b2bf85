package repositories

import (
	"errors"

	"scholar_backend/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	ListByOwner(db *gorm.DB, ownerEmail string) ([]models.Project, error)
	FindByID(db *gorm.DB, id uint) (*models.Project, error)
	Create(db *gorm.DB, project *models.Project) error
	Update(db *gorm.DB, id uint, project *models.Project) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
	UpdateDescription(db *gorm.DB, id uint, desc *models.ProjectDescription) (int64, error)
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) ListByOwner(db *gorm.DB, ownerEmail string) ([]models.Project, error) {
	projects := []models.Project{}
	err := db.Where("owner_email = ?", ownerEmail).
		Order("created_date DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Project, error) {
	var project models.Project
	err := db.First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

// Update replaces the mutable core fields. Zero values are written as
// given: the contract is full replace, not merge.
func (r *ProjectRepositoryImpl) Update(db *gorm.DB, id uint, project *models.Project) (int64, error) {
	result := db.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        project.Name,
		"owner_email": project.OwnerEmail,
		"colleagues":  project.Colleagues,
		"progress":    project.Progress,
	})
	return result.RowsAffected, result.Error
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Project{}, id)
	return result.RowsAffected, result.Error
}

// UpdateDescription overwrites all description fields unconditionally;
// fields the caller omitted arrive as empty strings and are stored as
// such.
func (r *ProjectRepositoryImpl) UpdateDescription(db *gorm.DB, id uint, desc *models.ProjectDescription) (int64, error) {
	result := db.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"background":      desc.Background,
		"objectives":      desc.Objectives,
		"significance":    desc.Significance,
		"methodology":     desc.Methodology,
		"timeline":        desc.Timeline,
		"budget":          desc.Budget,
		"resources":       desc.Resources,
		"team":            desc.Team,
		"audiences":       desc.Audiences,
		"approvals":       desc.Approvals,
		"ethics":          desc.Ethics,
		"data_collection": desc.DataCollection,
		"analysis":        desc.Analysis,
		"dissemination":   desc.Dissemination,
		"collaboration":   desc.Collaboration,
		"funding":         desc.Funding,
		"risks":           desc.Risks,
		"limitations":     desc.Limitations,
		"outcomes":        desc.Outcomes,
		"impact":          desc.Impact,
		"sustainability":  desc.Sustainability,
		"evaluation":      desc.Evaluation,
		"stakeholders":    desc.Stakeholders,
		"deliverables":    desc.Deliverables,
		"milestones":      desc.Milestones,
		"literature":      desc.Literature,
		"facilities":      desc.Facilities,
		"notes":           desc.Notes,
	})
	return result.RowsAffected, result.Error
}
