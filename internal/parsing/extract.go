package parsing

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// ExtractText flattens a resume into one normalized text blob.
// Order: summary, experience (company, role, bullets), every skill category
// in document order, education (degree, institution, details), additional
// sections (title, items). Absent fields contribute nothing.
func ExtractText(resume *types.ResumeContent) string {
	if resume == nil {
		return ""
	}

	parts := make([]string, 0, 16)
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	add(resume.Summary)

	for _, exp := range resume.Experience {
		add(exp.Company)
		add(exp.Role)
		for _, bullet := range exp.Bullets {
			add(bullet)
		}
	}

	for _, cat := range resume.Skills {
		for _, skill := range cat.Skills {
			add(skill)
		}
	}

	for _, edu := range resume.Education {
		add(edu.Degree)
		add(edu.Institution)
		add(edu.Details)
	}

	for _, section := range resume.AdditionalSections {
		add(section.Title)
		for _, item := range section.Items {
			add(item)
		}
	}

	return Normalize(strings.Join(parts, " "))
}

// Bullets returns every experience bullet in order
func Bullets(resume *types.ResumeContent) []string {
	if resume == nil {
		return nil
	}
	var out []string
	for _, exp := range resume.Experience {
		out = append(out, exp.Bullets...)
	}
	return out
}
