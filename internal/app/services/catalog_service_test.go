package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseplan/courseplan/internal/pkg/apperrors"
)

const sampleCatalogCSV = "subject,catalog,name,capacity,enrolled\n" +
	"ECON,UB 1,Microeconomics,40,12\n" +
	"ECON,UB 2,Macroeconomics,40,40\n" +
	"STAT,UB 103,Statistics for Business Control,35,20\n"

func newTestCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	service := NewCatalogService(zerolog.Nop())
	count, err := service.LoadCourses(sampleCatalogCSV)
	require.NoError(t, err)
	require.Equal(t, 3, count)
	return service
}

func TestLoadCoursesReplacesCatalog(t *testing.T) {
	service := newTestCatalogService(t)
	assert.Equal(t, 3, service.Count())

	count, err := service.LoadCourses("course,name\nMATH-UB 121,Calculus I\n")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, service.Count())
	assert.Equal(t, []string{"MATH"}, service.Departments())
}

func TestLoadCoursesEmptyInput(t *testing.T) {
	service := NewCatalogService(zerolog.Nop())

	_, err := service.LoadCourses("")
	assert.ErrorIs(t, err, apperrors.ErrEmptyCourseData)

	// A header-only upload yields no usable records either.
	_, err = service.LoadCourses("subject,catalog,name\n")
	assert.ErrorIs(t, err, apperrors.ErrEmptyCourseData)
	assert.Zero(t, service.Count())
}

func TestLoadCoursesKeepsOldCatalogOnEmptyUpload(t *testing.T) {
	service := newTestCatalogService(t)

	_, err := service.LoadCourses("garbage")
	assert.ErrorIs(t, err, apperrors.ErrEmptyCourseData)
	assert.Equal(t, 3, service.Count())
}

func TestCoursesReturnsCopy(t *testing.T) {
	service := newTestCatalogService(t)

	courses := service.Courses()
	require.Len(t, courses, 3)
	courses[0].Title = "Mutated"

	fresh := service.Courses()
	assert.Equal(t, "Microeconomics", fresh[0].Title)
}

func TestDepartmentsSorted(t *testing.T) {
	service := newTestCatalogService(t)
	assert.Equal(t, []string{"ECON", "STAT"}, service.Departments())
}

func TestCoursesByDepartment(t *testing.T) {
	service := newTestCatalogService(t)

	econ, err := service.CoursesByDepartment("ECON")
	require.NoError(t, err)
	assert.Len(t, econ, 2)

	_, err = service.CoursesByDepartment("ART")
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestCoursesByDepartmentNoData(t *testing.T) {
	service := NewCatalogService(zerolog.Nop())

	_, err := service.CoursesByDepartment("ECON")
	assert.ErrorIs(t, err, apperrors.ErrNoCourseData)
}

func TestCourseByID(t *testing.T) {
	service := newTestCatalogService(t)

	course, err := service.CourseByID("STAT-UB 103")
	require.NoError(t, err)
	assert.Equal(t, "Statistics for Business Control", course.Title)

	_, err = service.CourseByID("NOPE-1")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
