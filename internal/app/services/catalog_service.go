package services

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/courseplan/courseplan/internal/app/models"
	"github.com/courseplan/courseplan/internal/pkg/apperrors"
	"github.com/courseplan/courseplan/internal/pkg/tabular"
)

// CatalogService owns the in-memory course list. Uploading a new
// catalog replaces the list wholesale; reads hand out copies so no
// caller can mutate shared state.
type CatalogService struct {
	mu      sync.RWMutex
	courses []models.CourseRecord
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		logger: logger,
	}
}

// LoadCourses parses raw delimited text and replaces the current
// course list with the result. Returns the number of records loaded.
func (s *CatalogService) LoadCourses(text string, opts ...tabular.Option) (int, error) {
	records := tabular.Parse(text, opts...)
	if len(records) == 0 {
		return 0, apperrors.ErrEmptyCourseData
	}

	s.mu.Lock()
	s.courses = records
	s.mu.Unlock()

	s.logger.Info().Int("count", len(records)).Msg("Course catalog loaded")
	return len(records), nil
}

// Courses returns a copy of the full course list.
func (s *CatalogService) Courses() []models.CourseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CourseRecord, len(s.courses))
	copy(out, s.courses)
	return out
}

// Count returns the number of loaded course records.
func (s *CatalogService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses)
}

// Departments returns the sorted set of department codes present in
// the loaded catalog.
func (s *CatalogService) Departments() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, course := range s.courses {
		seen[course.Department] = true
	}

	departments := make([]string, 0, len(seen))
	for dept := range seen {
		departments = append(departments, dept)
	}
	sort.Strings(departments)
	return departments
}

// CoursesByDepartment returns all records belonging to one department.
func (s *CatalogService) CoursesByDepartment(department string) ([]models.CourseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.courses) == 0 {
		return nil, apperrors.ErrNoCourseData
	}

	var out []models.CourseRecord
	for _, course := range s.courses {
		if course.Department == department {
			out = append(out, course)
		}
	}

	if len(out) == 0 {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return out, nil
}

// CourseByID returns the first record matching a course identifier.
func (s *CatalogService) CourseByID(courseID string) (*models.CourseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.courses {
		if s.courses[i].CourseID == courseID {
			course := s.courses[i]
			return &course, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}
