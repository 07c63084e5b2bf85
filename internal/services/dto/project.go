package dto

import "scholar_backend/internal/models"

// DescriptionPayload is the external camelCase projection of the
// project description block, used for both the GET response and the PUT
// request body.
type DescriptionPayload struct {
	Background     string `json:"background"`
	Objectives     string `json:"objectives"`
	Significance   string `json:"significance"`
	Methodology    string `json:"methodology"`
	Timeline       string `json:"timeline"`
	Budget         string `json:"budget"`
	Resources      string `json:"resources"`
	Team           string `json:"team"`
	Audiences      string `json:"audiences"`
	Approvals      string `json:"approvals"`
	Ethics         string `json:"ethics"`
	DataCollection string `json:"dataCollection"`
	Analysis       string `json:"analysis"`
	Dissemination  string `json:"dissemination"`
	Collaboration  string `json:"collaboration"`
	Funding        string `json:"funding"`
	Risks          string `json:"risks"`
	Limitations    string `json:"limitations"`
	Outcomes       string `json:"outcomes"`
	Impact         string `json:"impact"`
	Sustainability string `json:"sustainability"`
	Evaluation     string `json:"evaluation"`
	Stakeholders   string `json:"stakeholders"`
	Deliverables   string `json:"deliverables"`
	Milestones     string `json:"milestones"`
	Literature     string `json:"literature"`
	Facilities     string `json:"facilities"`
	Notes          string `json:"notes"`
}

// ToModel maps the payload onto the storage struct. Omitted fields are
// zero values and overwrite whatever was stored: full replace.
func (d *DescriptionPayload) ToModel() *models.ProjectDescription {
	return &models.ProjectDescription{
		Background:     d.Background,
		Objectives:     d.Objectives,
		Significance:   d.Significance,
		Methodology:    d.Methodology,
		Timeline:       d.Timeline,
		Budget:         d.Budget,
		Resources:      d.Resources,
		Team:           d.Team,
		Audiences:      d.Audiences,
		Approvals:      d.Approvals,
		Ethics:         d.Ethics,
		DataCollection: d.DataCollection,
		Analysis:       d.Analysis,
		Dissemination:  d.Dissemination,
		Collaboration:  d.Collaboration,
		Funding:        d.Funding,
		Risks:          d.Risks,
		Limitations:    d.Limitations,
		Outcomes:       d.Outcomes,
		Impact:         d.Impact,
		Sustainability: d.Sustainability,
		Evaluation:     d.Evaluation,
		Stakeholders:   d.Stakeholders,
		Deliverables:   d.Deliverables,
		Milestones:     d.Milestones,
		Literature:     d.Literature,
		Facilities:     d.Facilities,
		Notes:          d.Notes,
	}
}

// DescriptionFromModel builds the external projection from a stored
// project.
func DescriptionFromModel(m *models.ProjectDescription) *DescriptionPayload {
	return &DescriptionPayload{
		Background:     m.Background,
		Objectives:     m.Objectives,
		Significance:   m.Significance,
		Methodology:    m.Methodology,
		Timeline:       m.Timeline,
		Budget:         m.Budget,
		Resources:      m.Resources,
		Team:           m.Team,
		Audiences:      m.Audiences,
		Approvals:      m.Approvals,
		Ethics:         m.Ethics,
		DataCollection: m.DataCollection,
		Analysis:       m.Analysis,
		Dissemination:  m.Dissemination,
		Collaboration:  m.Collaboration,
		Funding:        m.Funding,
		Risks:          m.Risks,
		Limitations:    m.Limitations,
		Outcomes:       m.Outcomes,
		Impact:         m.Impact,
		Sustainability: m.Sustainability,
		Evaluation:     m.Evaluation,
		Stakeholders:   m.Stakeholders,
		Deliverables:   m.Deliverables,
		Milestones:     m.Milestones,
		Literature:     m.Literature,
		Facilities:     m.Facilities,
		Notes:          m.Notes,
	}
}
