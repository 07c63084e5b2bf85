package dto

import "scholar_backend/internal/models"

// ProfileRequest is the upsert body. List sections arrive as arrays of
// free-form objects and are serialized to JSON columns; a null or
// missing section is stored as an empty list.
type ProfileRequest struct {
	UserEmail   string `json:"userEmail" binding:"required"`
	FullName    string `json:"fullName"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Institution string `json:"institution"`
	Office      string `json:"office"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`

	Degrees    []map[string]interface{} `json:"degrees"`
	Employment []map[string]interface{} `json:"employment"`
	Courses    []map[string]interface{} `json:"courses"`
	Grants     []map[string]interface{} `json:"grants"`
	Awards     []map[string]interface{} `json:"awards"`

	ResearchKeywords string `json:"researchKeywords"`
	Skills           string `json:"skills"`
	Memberships      string `json:"memberships"`
	Outreach         string `json:"outreach"`

	CreatedDate string `json:"createdDate"`
}

// ToModel serializes the request into the storage shape.
func (r *ProfileRequest) ToModel() *models.Profile {
	return &models.Profile{
		UserEmail:        r.UserEmail,
		FullName:         r.FullName,
		Designation:      r.Designation,
		Department:       r.Department,
		Institution:      r.Institution,
		Office:           r.Office,
		Phone:            r.Phone,
		Email:            r.Email,
		Website:          r.Website,
		Degrees:          models.EncodeList(r.Degrees),
		Employment:       models.EncodeList(r.Employment),
		Courses:          models.EncodeList(r.Courses),
		Grants:           models.EncodeList(r.Grants),
		Awards:           models.EncodeList(r.Awards),
		ResearchKeywords: r.ResearchKeywords,
		Skills:           r.Skills,
		Memberships:      r.Memberships,
		Outreach:         r.Outreach,
		CreatedDate:      r.CreatedDate,
	}
}

// ProfileResponse is the read shape: list sections decoded back to
// arrays.
type ProfileResponse struct {
	ID          uint   `json:"id"`
	UserEmail   string `json:"userEmail"`
	FullName    string `json:"fullName"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Institution string `json:"institution"`
	Office      string `json:"office"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`

	Degrees    []map[string]interface{} `json:"degrees"`
	Employment []map[string]interface{} `json:"employment"`
	Courses    []map[string]interface{} `json:"courses"`
	Grants     []map[string]interface{} `json:"grants"`
	Awards     []map[string]interface{} `json:"awards"`

	ResearchKeywords string `json:"researchKeywords"`
	Skills           string `json:"skills"`
	Memberships      string `json:"memberships"`
	Outreach         string `json:"outreach"`

	CreatedDate  string `json:"createdDate"`
	ModifiedDate string `json:"modifiedDate"`
}

// ProfileFromModel decodes a stored profile into the read shape.
func ProfileFromModel(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:               p.ID,
		UserEmail:        p.UserEmail,
		FullName:         p.FullName,
		Designation:      p.Designation,
		Department:       p.Department,
		Institution:      p.Institution,
		Office:           p.Office,
		Phone:            p.Phone,
		Email:            p.Email,
		Website:          p.Website,
		Degrees:          models.DecodeList(p.Degrees),
		Employment:       models.DecodeList(p.Employment),
		Courses:          models.DecodeList(p.Courses),
		Grants:           models.DecodeList(p.Grants),
		Awards:           models.DecodeList(p.Awards),
		ResearchKeywords: p.ResearchKeywords,
		Skills:           p.Skills,
		Memberships:      p.Memberships,
		Outreach:         p.Outreach,
		CreatedDate:      p.CreatedDate,
		ModifiedDate:     p.ModifiedDate,
	}
}
