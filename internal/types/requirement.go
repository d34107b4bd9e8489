// Package types provides type definitions for structured data used throughout the placement-engine system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// RequirementProfile describes a target role at an employer: the skills it
// requires, the skills it prefers, and an optional minimum CGPA cutoff.
// A profile is immutable for the duration of an analysis call.
type RequirementProfile struct {
	ID              string   `json:"id"`
	CompanyName     string   `json:"company_name" validate:"required"`
	Role            string   `json:"role" validate:"required"`
	RequiredSkills  []string `json:"required_skills" validate:"required,min=1,dive,min=1"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	MinimumCGPA     float64  `json:"minimum_cgpa,omitempty" validate:"gte=0,lte=10"`
}

// Validate validates the RequirementProfile using the validator.
func (p *RequirementProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
