package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Project is a single wide table: the core fields plus an optional
// free-text description block updated through its own sub-resource.
type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	OwnerEmail  string         `gorm:"index;not null" json:"owner_email"`
	Colleagues  datatypes.JSON `gorm:"type:jsonb" json:"colleagues"` // JSON list of names/emails
	Progress    int            `gorm:"default:0" json:"progress"`    // 0-100
	CreatedDate string         `json:"created_date"`

	ProjectDescription
}

// GetColleagues decodes the colleagues column; absent or null yields an
// empty list, never an error.
func (p *Project) GetColleagues() []string {
	var colleagues []string
	if len(p.Colleagues) > 0 {
		_ = json.Unmarshal(p.Colleagues, &colleagues)
	}
	if colleagues == nil {
		colleagues = []string{}
	}
	return colleagues
}

// SetColleagues encodes the colleagues column.
func (p *Project) SetColleagues(colleagues []string) {
	if colleagues == nil {
		colleagues = []string{}
	}
	data, _ := json.Marshal(colleagues)
	p.Colleagues = datatypes.JSON(data)
}

// ProjectDescription is the wide optional text block attached 1:1 to a
// project. Every field is independently optional; the sub-resource PUT
// replaces all of them unconditionally.
type ProjectDescription struct {
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
	DataCollection string `json:"data_collection"`
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
