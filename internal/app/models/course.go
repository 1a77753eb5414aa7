package models

// CourseStatus indicates whether a course section can still be joined.
type CourseStatus string

const (
	CourseStatusOpen   CourseStatus = "OPEN"
	CourseStatusClosed CourseStatus = "CLOSED"
)

// CourseRecord represents one offered course section parsed from
// catalog data. CourseID is the human-readable code (e.g. "ECON-UB 1")
// and is not unique across sections; UniqueKey is.
type CourseRecord struct {
	CourseID    string `json:"courseId"`
	UniqueKey   string `json:"uniqueKey"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Department  string `json:"department"`
	Credits     int    `json:"credits"`
	Section     string `json:"section,omitempty"`

	MeetingSpec string   `json:"meetingSpec,omitempty"`
	Days        []string `json:"days,omitempty"`
	StartTime   string   `json:"startTime,omitempty"`
	EndTime     string   `json:"endTime,omitempty"`

	Capacity     int          `json:"capacity"`
	Enrolled     int          `json:"enrolled"`
	Status       CourseStatus `json:"status"`
	SourceStatus string       `json:"sourceStatus,omitempty"`

	Instructor string `json:"instructor,omitempty"`
	Location   string `json:"location,omitempty"`
}
