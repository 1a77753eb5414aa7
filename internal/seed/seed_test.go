package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseplan/courseplan/internal/app/models"
	"github.com/courseplan/courseplan/internal/app/services"
)

func TestLoadDemoCatalog(t *testing.T) {
	catalog := services.NewCatalogService(zerolog.Nop())

	require.NoError(t, LoadDemoCatalog(catalog, 1, zerolog.Nop()))
	assert.Equal(t, 10, catalog.Count())

	departments := catalog.Departments()
	assert.Contains(t, departments, "ECON")
	assert.Contains(t, departments, "STAT")
	assert.Contains(t, departments, "CORE")
}

func TestLoadDemoCatalogDeterministic(t *testing.T) {
	first := services.NewCatalogService(zerolog.Nop())
	second := services.NewCatalogService(zerolog.Nop())

	require.NoError(t, LoadDemoCatalog(first, 42, zerolog.Nop()))
	require.NoError(t, LoadDemoCatalog(second, 42, zerolog.Nop()))

	assert.Equal(t, first.Courses(), second.Courses())
}

func TestRandomEnrollmentBounds(t *testing.T) {
	gen := NewRandomEnrollment(7)

	for i := 0; i < 100; i++ {
		capacity, enrolled := gen.Enrollment()
		assert.GreaterOrEqual(t, capacity, 20)
		assert.LessOrEqual(t, capacity, 40)
		assert.GreaterOrEqual(t, enrolled, 0)
		assert.LessOrEqual(t, enrolled, capacity)
	}
}

func TestDemoCatalogStatusMatchesEnrollment(t *testing.T) {
	catalog := services.NewCatalogService(zerolog.Nop())
	require.NoError(t, LoadDemoCatalog(catalog, 3, zerolog.Nop()))

	for _, course := range catalog.Courses() {
		if course.Enrolled >= course.Capacity {
			assert.Equal(t, models.CourseStatusClosed, course.Status, course.CourseID)
		} else {
			assert.Equal(t, models.CourseStatusOpen, course.Status, course.CourseID)
		}
	}
}
