package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile is the researcher profile behind the resume generator. At
// most one row exists per user_email; writes go through an atomic
// upsert. The list-valued sections are stored as JSON columns of
// free-form objects.
type Profile struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserEmail   string `gorm:"uniqueIndex;not null" json:"userEmail"`
	FullName    string `json:"fullName"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Institution string `json:"institution"`
	Office      string `json:"office"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`

	Degrees    datatypes.JSON `gorm:"type:jsonb" json:"degrees"`
	Employment datatypes.JSON `gorm:"type:jsonb" json:"employment"`
	Courses    datatypes.JSON `gorm:"type:jsonb" json:"courses"`
	Grants     datatypes.JSON `gorm:"type:jsonb" json:"grants"`
	Awards     datatypes.JSON `gorm:"type:jsonb" json:"awards"`

	// Comma-separated; split and trimmed only at the presentation layer.
	ResearchKeywords string `json:"researchKeywords"`
	Skills           string `json:"skills"`

	Memberships string `json:"memberships"`
	Outreach    string `json:"outreach"`

	CreatedDate  string `json:"createdDate"`
	ModifiedDate string `json:"modifiedDate"`
}

// DecodeList decodes a JSON list column into free-form objects. Absent
// or null columns decode to an empty list, never an error.
func DecodeList(col datatypes.JSON) []map[string]interface{} {
	var items []map[string]interface{}
	if len(col) > 0 {
		_ = json.Unmarshal(col, &items)
	}
	if items == nil {
		items = []map[string]interface{}{}
	}
	return items
}

// EncodeList encodes free-form objects into a JSON list column.
func EncodeList(items []map[string]interface{}) datatypes.JSON {
	if items == nil {
		items = []map[string]interface{}{}
	}
	data, _ := json.Marshal(items)
	return datatypes.JSON(data)
}
