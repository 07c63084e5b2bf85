// Package resume renders the researcher profile into a standalone HTML
// document. It is presentation only: a field absent in the data means
// its section is absent in the output.
package resume

import (
	"bytes"
	"html/template"
	"strings"

	"scholar_backend/internal/models"
)

// Entry is one line item in a list section. The stored objects are
// free-form; rendering picks the conventional keys and falls back to
// whatever non-empty values remain.
type Entry struct {
	Title    string
	Subtitle string
	Period   string
	Detail   string
}

type resumeData struct {
	FullName    string
	Designation string
	Department  string
	Institution string
	Office      string
	Phone       string
	Email       string
	Website     string

	Keywords []string
	Skills   []string

	Degrees    []Entry
	Employment []Entry
	Courses    []Entry
	Grants     []Entry
	Awards     []Entry

	Memberships string
	Outreach    string
}

// SplitTags splits a comma-separated string into trimmed, non-empty
// tags.
func SplitTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func stringValue(item map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func toEntries(items []map[string]interface{}) []Entry {
	entries := []Entry{}
	for _, item := range items {
		entry := Entry{
			Title:    stringValue(item, "title", "degree", "position", "course", "name"),
			Subtitle: stringValue(item, "institution", "organization", "employer", "agency", "department"),
			Period:   stringValue(item, "year", "period", "years", "duration", "date"),
			Detail:   stringValue(item, "description", "details", "amount", "role"),
		}
		if entry.Title == "" && entry.Subtitle == "" && entry.Period == "" && entry.Detail == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func buildData(p *models.Profile) *resumeData {
	return &resumeData{
		FullName:    p.FullName,
		Designation: p.Designation,
		Department:  p.Department,
		Institution: p.Institution,
		Office:      p.Office,
		Phone:       p.Phone,
		Email:       p.Email,
		Website:     p.Website,
		Keywords:    SplitTags(p.ResearchKeywords),
		Skills:      SplitTags(p.Skills),
		Degrees:     toEntries(models.DecodeList(p.Degrees)),
		Employment:  toEntries(models.DecodeList(p.Employment)),
		Courses:     toEntries(models.DecodeList(p.Courses)),
		Grants:      toEntries(models.DecodeList(p.Grants)),
		Awards:      toEntries(models.DecodeList(p.Awards)),
		Memberships: p.Memberships,
		Outreach:    p.Outreach,
	}
}

// Render produces the resume document for a profile.
func Render(p *models.Profile) (string, error) {
	var buf bytes.Buffer
	if err := resumeTmpl.Execute(&buf, buildData(p)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderNotFound produces the fallback document shown when no profile
// exists for the requested identity.
func RenderNotFound(userEmail string) (string, error) {
	var buf bytes.Buffer
	if err := notFoundTmpl.Execute(&buf, map[string]string{"Email": userEmail}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var resumeTmpl = template.Must(template.New("resume").Parse(resumeTemplate))
var notFoundTmpl = template.Must(template.New("notfound").Parse(notFoundTemplate))
