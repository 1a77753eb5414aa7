package models

// Recommendation references one course with the reason it was picked.
// Keyword recommendations carry the keyword match count as Score; the
// semantic recommender uses a fixed placeholder score since its
// ranking is qualitative. Recommendations are ephemeral: produced
// fresh per request and superseded entirely by the next one.
type Recommendation struct {
	CourseID string        `json:"courseId"`
	Title    string        `json:"title"`
	Reason   string        `json:"reason"`
	Score    int           `json:"score"`
	Course   *CourseRecord `json:"course,omitempty"`
}
