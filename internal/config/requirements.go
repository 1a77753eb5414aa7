package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/courseplan/courseplan/internal/app/models"
)

// LoadRequirements loads a requirement catalog from a YAML file. An
// empty path returns the built-in default catalog; a configured path
// that cannot be read or parsed is an error, since a silently wrong
// curriculum is worse than a startup failure.
func LoadRequirements(path string) (*models.RequirementCatalog, error) {
	if path == "" {
		return models.DefaultCatalog(), nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}

	catalog := &models.RequirementCatalog{}
	if err := yaml.Unmarshal(file, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse requirements file: %w", err)
	}

	if len(catalog.RequiredCourses) == 0 {
		return nil, fmt.Errorf("requirements file %s defines no required courses", path)
	}

	return catalog, nil
}
