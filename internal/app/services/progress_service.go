package services

import (
	"strings"

	"github.com/courseplan/courseplan/internal/app/models"
)

// ProgressService computes degree-requirement gap reports against a
// fixed requirement catalog.
type ProgressService struct {
	catalog *models.RequirementCatalog
}

// NewProgressService creates a new progress service instance
func NewProgressService(catalog *models.RequirementCatalog) *ProgressService {
	if catalog == nil {
		catalog = models.DefaultCatalog()
	}
	return &ProgressService{catalog: catalog}
}

// Catalog returns the active requirement catalog.
func (s *ProgressService) Catalog() *models.RequirementCatalog {
	return s.catalog
}

// ComputeGaps builds a gap report for a list of completed course
// identifiers. Identifiers are trimmed and blanks dropped; unknown
// identifiers are silently ignored.
func (s *ProgressService) ComputeGaps(completed []string) models.GapReport {
	return ComputeGaps(s.catalog, NewCompletionSet(completed))
}

// NewCompletionSet normalizes a list of completed course identifiers
// into a set, trimming whitespace and discarding empty entries.
func NewCompletionSet(completed []string) map[string]struct{} {
	set := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// ComputeGaps is a pure function of the catalog and the completion
// set: no side effects, recomputed in full on every call. The missing
// list preserves catalog order, and categories with nothing missing
// are omitted from the report.
func ComputeGaps(catalog *models.RequirementCatalog, completed map[string]struct{}) models.GapReport {
	report := models.GapReport{
		MissingRequired:   missingFrom(catalog.RequiredCourses, completed),
		MissingByCategory: make(map[string]models.CategoryGap),
	}

	for category, requirement := range catalog.ByCategory {
		missing := missingFrom(requirement.RequiredCourses, completed)
		if len(missing) == 0 {
			continue
		}
		report.MissingByCategory[category] = models.CategoryGap{
			Missing:           missing,
			CreditsRequired:   requirement.CreditsRequired,
			Notes:             requirement.Notes,
			ElectivesRequired: requirement.ElectivesRequired,
		}
	}

	return report
}

// missingFrom filters required down to the identifiers not in
// completed, preserving input order.
func missingFrom(required []string, completed map[string]struct{}) []string {
	missing := make([]string, 0, len(required))
	for _, id := range required {
		if _, done := completed[id]; !done {
			missing = append(missing, id)
		}
	}
	return missing
}
