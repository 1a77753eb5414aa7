// Package tabular converts raw delimited course-catalog text into
// normalized CourseRecord values. The format is deliberately loose:
// comma-separated fields under a header row, with no quoting or
// escaping — a comma inside a field shifts the remaining columns.
package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/courseplan/courseplan/internal/app/models"
)

const (
	// DefaultCredits is assumed when the credits column is absent or invalid.
	DefaultCredits = 4
	// DefaultCapacity is assumed when the capacity column is absent or invalid.
	DefaultCapacity = 30
)

// headerAliases maps recognized header synonyms to canonical field
// names. Matching is case-insensitive; unrecognized headers pass
// through unchanged.
var headerAliases = map[string]string{
	"course":        "code",
	"name":          "title",
	"course name":   "title",
	"section":       "no",
	"class number":  "no",
	"schedule type": "schd",
	"status":        "stat",
	"meeting time":  "meets",
	"room":          "location",
}

// EnrollmentGenerator supplies capacity/enrolled pairs for rows when
// the caller wants generated enrollment figures instead of the source
// columns (demo data). Implementations seeded with a fixed source are
// deterministic, which is what the tests rely on.
type EnrollmentGenerator interface {
	Enrollment() (capacity, enrolled int)
}

// Option configures a parse run.
type Option func(*parseConfig)

type parseConfig struct {
	enrollment EnrollmentGenerator
}

// WithEnrollment replaces each row's capacity and enrolled values with
// generated ones. Status is still derived from the generated pair.
func WithEnrollment(gen EnrollmentGenerator) Option {
	return func(c *parseConfig) {
		c.enrollment = gen
	}
}

// Parse converts delimited text into course records. The first line is
// the header; blank lines and rows that yield no course identifier or
// no title are skipped. Never returns an error: malformed rows are
// dropped and malformed numeric fields fall back to defaults.
func Parse(text string, opts ...Option) []models.CourseRecord {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := parseHeader(lines[0])

	records := make([]models.CourseRecord, 0, len(lines)-1)
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := rowFields(headers, line)

		record, ok := buildRecord(fields, i, cfg)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records
}

// parseHeader lowercases, trims and alias-maps the header row.
func parseHeader(line string) []string {
	raw := strings.Split(line, ",")
	headers := make([]string, len(raw))
	for i, h := range raw {
		name := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := headerAliases[name]; ok {
			name = canonical
		}
		headers[i] = name
	}
	return headers
}

// rowFields maps canonical header names to the row's trimmed values.
func rowFields(headers []string, line string) map[string]string {
	values := strings.Split(line, ",")
	fields := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(values) {
			fields[header] = strings.TrimSpace(values[i])
		} else {
			fields[header] = ""
		}
	}
	return fields
}

func buildRecord(fields map[string]string, rowIndex int, cfg parseConfig) (models.CourseRecord, bool) {
	courseID := deriveCourseID(fields)
	title := fields["title"]
	if courseID == "" || title == "" {
		// Not a representable course.
		return models.CourseRecord{}, false
	}

	capacity := parseCount(fields["capacity"], DefaultCapacity)
	enrolled := parseCount(fields["enrolled"], 0)
	if cfg.enrollment != nil {
		capacity, enrolled = cfg.enrollment.Enrollment()
	}

	meets := fields["meets"]
	start, end := ParseMeetingTime(meets)

	record := models.CourseRecord{
		CourseID:     courseID,
		UniqueKey:    fmt.Sprintf("%s#%d", courseID, rowIndex),
		Title:        title,
		Description:  fields["description"],
		Department:   departmentOf(courseID),
		Credits:      parseCredits(fields["credits"]),
		Section:      fields["no"],
		MeetingSpec:  meets,
		Days:         ParseMeetingDays(meets),
		StartTime:    start,
		EndTime:      end,
		Capacity:     capacity,
		Enrolled:     enrolled,
		Status:       deriveStatus(capacity, enrolled),
		SourceStatus: fields["stat"],
		Instructor:   fields["instructor"],
		Location:     fields["location"],
	}
	return record, true
}

// deriveCourseID prefers an explicit code column and otherwise joins
// subject and catalog with the department separator.
func deriveCourseID(fields map[string]string) string {
	if code := fields["code"]; code != "" {
		return code
	}
	subject, catalog := fields["subject"], fields["catalog"]
	if subject != "" && catalog != "" {
		return subject + "-" + catalog
	}
	return ""
}

// departmentOf returns the token preceding the first separator of the
// course identifier.
func departmentOf(courseID string) string {
	dept, _, _ := strings.Cut(courseID, "-")
	return dept
}

func parseCredits(value string) int {
	credits, err := strconv.Atoi(value)
	if err != nil || credits <= 0 {
		return DefaultCredits
	}
	return credits
}

// parseCount parses an integer column, stripping thousands separators.
func parseCount(value string, fallback int) int {
	cleaned := strings.ReplaceAll(value, ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func deriveStatus(capacity, enrolled int) models.CourseStatus {
	if enrolled >= capacity {
		return models.CourseStatusClosed
	}
	return models.CourseStatusOpen
}
