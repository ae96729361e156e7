package cv

import "github.com/jonathan/harvard-cv/internal/types"

// Section identifies one of the fixed resume sections.
type Section int

// Sections in the order they are rendered.
const (
	SectionEducation Section = iota
	SectionExperience
	SectionProjects
	SectionCertifications
	SectionSkills
)

var sectionOrder = []Section{
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionCertifications,
	SectionSkills,
}

// Title returns the upper-case section heading.
func (s Section) Title() string {
	switch s {
	case SectionEducation:
		return "EDUCATION"
	case SectionExperience:
		return "EXPERIENCE"
	case SectionProjects:
		return "PROJECTS"
	case SectionCertifications:
		return "CERTIFICATIONS"
	case SectionSkills:
		return "SKILLS"
	}
	return ""
}

// Entry is one item of a list section. The concrete type is one of
// EducationEntry, ExperienceEntry, ProjectEntry or CertificationEntry.
type Entry interface {
	entry()
}

// EducationEntry wraps an education item.
type EducationEntry struct{ types.Education }

// ExperienceEntry wraps an experience item.
type ExperienceEntry struct{ types.Experience }

// ProjectEntry wraps a project item.
type ProjectEntry struct{ types.Project }

// CertificationEntry wraps a certification item.
type CertificationEntry struct{ types.Certification }

func (EducationEntry) entry()     {}
func (ExperienceEntry) entry()    {}
func (ProjectEntry) entry()       {}
func (CertificationEntry) entry() {}

// Sections returns the non-empty sections of r in render order.
func (r *Record) Sections() []Section {
	out := make([]Section, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		if s == SectionSkills {
			if !r.Skills.IsEmpty() {
				out = append(out, s)
			}
			continue
		}
		if len(r.Entries(s)) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Entries returns the items of a list section. SectionSkills has none.
func (r *Record) Entries(s Section) []Entry {
	var out []Entry
	switch s {
	case SectionEducation:
		for _, e := range r.Education {
			out = append(out, EducationEntry{e})
		}
	case SectionExperience:
		for _, e := range r.Experience {
			out = append(out, ExperienceEntry{e})
		}
	case SectionProjects:
		for _, p := range r.Projects {
			out = append(out, ProjectEntry{p})
		}
	case SectionCertifications:
		for _, c := range r.Certifications {
			out = append(out, CertificationEntry{c})
		}
	}
	return out
}

// SkillLine is one labelled row of the SKILLS section.
type SkillLine struct {
	Label string
	Items []string
}

// SkillLines returns the non-empty skill rows in fixed order.
func (r *Record) SkillLines() []SkillLine {
	if r.Skills.IsEmpty() {
		return nil
	}
	candidates := []SkillLine{
		{Label: "Languages", Items: r.Skills.Languages},
		{Label: "Tools", Items: r.Skills.Tools},
		{Label: "Methodologies", Items: r.Skills.Methods},
	}
	out := make([]SkillLine, 0, len(candidates))
	for _, line := range candidates {
		if len(line.Items) > 0 {
			out = append(out, line)
		}
	}
	return out
}

// ContactParts returns the non-empty contact values in the order
// email, phone, linkedin, location.
func (r *Record) ContactParts() []string {
	return nonEmpty(r.Profile.Email, r.Profile.Phone, r.Profile.LinkedIn, r.Profile.Location)
}

// RemoteContactParts is ContactParts in the Google Docs order:
// email, phone, location, linkedin.
func (r *Record) RemoteContactParts() []string {
	return nonEmpty(r.Profile.Email, r.Profile.Phone, r.Profile.Location, r.Profile.LinkedIn)
}

func nonEmpty(values ...string) []string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}
