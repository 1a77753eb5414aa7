package models

// CategoryRequirement defines one categorized sub-requirement of a
// degree program. Course lists may overlap between categories; each
// category is analyzed independently.
type CategoryRequirement struct {
	RequiredCourses   []string `json:"requiredCourses" yaml:"required_courses"`
	CreditsRequired   int      `json:"creditsRequired" yaml:"credits_required"`
	Notes             string   `json:"notes,omitempty" yaml:"notes"`
	ElectivesRequired int      `json:"electivesRequired" yaml:"electives_required"`
}

// RequirementCatalog is the static curriculum definition gap analysis
// runs against. It is configuration, not user data: loaded once at
// startup and immutable thereafter.
type RequirementCatalog struct {
	RequiredCourses   []string                       `json:"requiredCourses" yaml:"required_courses"`
	CreditsRequired   int                            `json:"creditsRequired" yaml:"credits_required"`
	Notes             string                         `json:"notes,omitempty" yaml:"notes"`
	ElectivesRequired int                            `json:"electivesRequired" yaml:"electives_required"`
	ByCategory        map[string]CategoryRequirement `json:"byCategory" yaml:"by_category"`
}

// CategoryGap reports the unmet portion of one requirement category.
type CategoryGap struct {
	Missing           []string `json:"missing"`
	CreditsRequired   int      `json:"creditsRequired"`
	Notes             string   `json:"notes,omitempty"`
	ElectivesRequired int      `json:"electivesRequired"`
}

// GapReport is the derived missing-requirements view for a completion
// set. It has no identity of its own; it is recomputed in full on
// every completion-set change. Categories with nothing missing are
// omitted from MissingByCategory entirely.
type GapReport struct {
	MissingRequired   []string               `json:"missingRequired"`
	MissingByCategory map[string]CategoryGap `json:"missingByCategory"`
}

// DefaultCatalog returns the built-in BS in Business curriculum model.
func DefaultCatalog() *RequirementCatalog {
	return &RequirementCatalog{
		RequiredCourses: []string{
			"MATH-UB 121",
			"MULT-UB 100",
			"CORE-UA 400",
			"CORE-UA 500",
			"ECON-UB 1",
			"ECON-UB 2",
			"STAT-UB 103",
			"STAT-UB 18",
		},
		CreditsRequired:   128,
		Notes:             "Consult the NYU Bulletin for detailed requirements.",
		ElectivesRequired: 64,
		ByCategory: map[string]CategoryRequirement{
			"Liberal Arts Core": {
				RequiredCourses: []string{
					"MATH-UB 121",
					"MULT-UB 100",
					"CORE-UA 400",
					"CORE-UA 500",
				},
				CreditsRequired: 16,
			},
			"Business Tools": {
				RequiredCourses: []string{
					"ECON-UB 1",
					"ECON-UB 2",
					"STAT-UB 103",
					"STAT-UB 18",
					"STAT-UB 3",
					"ACCT-UB 1",
				},
				CreditsRequired: 18,
				Notes:           "Choose either ECON-UB 1 or ECON-UB 2; STAT-UB 103 or (STAT-UB 18 & STAT-UB 3)",
			},
			"Social Impact Core": {
				RequiredCourses: []string{
					"SOMI-UB 65",
					"SOMI-UB 6",
					"SOMI-UB 12S",
				},
				CreditsRequired: 14,
			},
		},
	}
}
