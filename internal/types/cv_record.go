// Package types provides type definitions for structured data used throughout the harvard-cv system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVRecord is the canonical, fully materialized CV handed to every renderer.
// Dates are opaque "YYYY-MM" strings; an empty string means absent.
type CVRecord struct {
	Profile        Profile         `json:"profile"`
	Education      []Education     `json:"education" validate:"dive"`
	Experience     []Experience    `json:"experience" validate:"dive"`
	Certifications []Certification `json:"certifications" validate:"dive"`
	Projects       []Project       `json:"projects" validate:"dive"`
	Skills         *Skills         `json:"skills,omitempty"`
}

// Profile holds the identity and contact block of a CV
type Profile struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// FullName returns "{first} {last}".
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Education represents a single degree entry
type Education struct {
	Degree      string   `json:"degree" validate:"required"`
	Institution string   `json:"institution" validate:"required"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Details     []string `json:"details"`
}

// Experience represents a single position held
type Experience struct {
	Company   string   `json:"company" validate:"required"`
	Role      string   `json:"role" validate:"required"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date" validate:"required"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets" validate:"required,min=1,dive,required"`
}

// Certification represents a credential issued by a third party
type Certification struct {
	Name         string `json:"name" validate:"required"`
	Issuer       string `json:"issuer" validate:"required"`
	Date         string `json:"date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Project represents a personal or professional project
type Project struct {
	Name         string   `json:"name" validate:"required"`
	Impact       string   `json:"impact,omitempty"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// Skills groups the three skill lists shown in the SKILLS section
type Skills struct {
	Languages []string `json:"languages"`
	Tools     []string `json:"tools"`
	Methods   []string `json:"methods"`
}

// IsEmpty reports whether the skills block has nothing to render.
func (s *Skills) IsEmpty() bool {
	return s == nil || (len(s.Languages) == 0 && len(s.Tools) == 0 && len(s.Methods) == 0)
}
