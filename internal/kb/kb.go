// Package kb holds the static knowledge base the assistant answers from:
// who the portfolio owner is, what they can do, what they built, and how to
// reach them. The snapshot is assembled once at startup and never mutated;
// every consumer reads it concurrently without synchronization.
package kb

// Profile captures personal and professional facts about the portfolio owner.
type Profile struct {
	Name              string
	Role              string
	Title             string
	ShortBio          string
	Location          string
	Timezone          string
	Languages         []string
	Availability      string
	YearsOfExperience float64
	Education         string
	Hobbies           []string
	Interests         []string
	Achievements      []string
}

// SkillSet groups skills by category. Rendering order is fixed: frontend,
// backend, database, devops, tools, soft skills.
type SkillSet struct {
	Frontend   []string
	Backend    []string
	Database   []string
	DevOps     []string
	Tools      []string
	SoftSkills []string
}

// SkillCategory is a named, ordered slice of skills for display.
type SkillCategory struct {
	Name   string
	Skills []string
}

// Categories returns the skill categories in their fixed display order.
func (s SkillSet) Categories() []SkillCategory {
	return []SkillCategory{
		{Name: "Frontend Development", Skills: s.Frontend},
		{Name: "Backend Development", Skills: s.Backend},
		{Name: "Database & ORM", Skills: s.Database},
		{Name: "DevOps & Cloud", Skills: s.DevOps},
		{Name: "Tools & Technologies", Skills: s.Tools},
		{Name: "Soft Skills", Skills: s.SoftSkills},
	}
}

// Project describes one portfolio project. Slice order in the knowledge base
// is display priority and matters for "list all projects" output and for the
// fallback entity matcher.
type Project struct {
	Name            string
	Description     string
	LongDescription string
	Technologies    []string
	Features        []string
	Year            string
	Link            string
}

// ExperienceEntry is one stretch of work history, most recent first in the
// knowledge base slice.
type ExperienceEntry struct {
	Role         string
	Company      string
	Period       string
	Description  string
	Achievements []string
}

// ContactChannel is a single way to reach the owner. Icon is the emoji shown
// before the label in rendered replies.
type ContactChannel struct {
	Icon    string
	Label   string
	Address string
}

// KnowledgeBase is the complete read-only snapshot the assistant renders
// replies from.
type KnowledgeBase struct {
	Profile    Profile
	Skills     SkillSet
	Projects   []Project
	Experience []ExperienceEntry
	Contact    []ContactChannel
}

// FindProject looks a project up by exact name. The bool result reports
// whether it exists.
func (k *KnowledgeBase) FindProject(name string) (Project, bool) {
	for _, p := range k.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return Project{}, false
}
