package dto

// GapAnalysisRequest carries the student's asserted completion set.
// Identifiers are not validated against the catalog; unknown entries
// are ignored by the analyzer.
type GapAnalysisRequest struct {
	CompletedCourses []string `json:"completedCourses" binding:"required"`
}
