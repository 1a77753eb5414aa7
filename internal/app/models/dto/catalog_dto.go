package dto

// UploadCoursesRequest carries raw delimited course-catalog text.
type UploadCoursesRequest struct {
	CSV string `json:"csv" binding:"required"`
}

// UploadCoursesResponse reports the outcome of a catalog upload.
type UploadCoursesResponse struct {
	Count       int      `json:"count"`
	Departments []string `json:"departments"`
}

// DepartmentListResponse represents the set of departments in the
// loaded catalog.
type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}
