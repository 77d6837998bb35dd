package types

// ResumeContent represents a generated resume in structured form
type ResumeContent struct {
	Summary            string              `json:"summary"`
	Experience         []Experience        `json:"experience"`
	Skills             SkillSet            `json:"skills"`
	Education          []Education         `json:"education"`
	AdditionalSections []AdditionalSection `json:"additionalSections"`
}

// Experience represents a single role on the resume
type Experience struct {
	Company  string     `json:"company"`
	Role     string     `json:"role"`
	Duration string     `json:"duration"`
	Bullets  StringList `json:"bullets"`
}

// Education represents a degree entry
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
	Details     string `json:"details,omitempty"`
}

// AdditionalSection represents a free-form section such as certifications or projects
type AdditionalSection struct {
	Title string     `json:"title"`
	Items StringList `json:"items"`
}

// SkillCategory is one named group of skills (e.g. "languages", "tools")
type SkillCategory struct {
	Name   string
	Skills []string
}

// SkillSet is an open, ordered mapping of category name to skills.
// Category names are not fixed: both {technical, soft, tools} and
// {languages, frameworks, databases, cloud, tools} shapes are accepted.
type SkillSet []SkillCategory

// All returns every skill across all categories, in category order
func (s SkillSet) All() []string {
	var all []string
	for _, cat := range s {
		all = append(all, cat.Skills...)
	}
	return all
}

// Category returns the skills of the named category, or nil if absent
func (s SkillSet) Category(name string) []string {
	for _, cat := range s {
		if cat.Name == name {
			return cat.Skills
		}
	}
	return nil
}

// UserAnswer is one free-text answer to a clarifying question
type UserAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// UserAnswers is the ordered set of answers supplied alongside a resume
type UserAnswers []UserAnswer

// Text concatenates all answers with single spaces
func (a UserAnswers) Text() string {
	var out []byte
	for _, ans := range a {
		if ans.Answer == "" {
			continue
		}
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, ans.Answer...)
	}
	return string(out)
}
