package dto

// Recommendation modes.
const (
	RecommendModeKeyword  = "keyword"
	RecommendModeSemantic = "semantic"
)

// RecommendRequest asks for course recommendations against free-text
// interests. Mode defaults to keyword when empty.
type RecommendRequest struct {
	Interests        string   `json:"interests" binding:"required"`
	CompletedCourses []string `json:"completedCourses"`
	Mode             string   `json:"mode" binding:"omitempty,oneof=keyword semantic"`
}
