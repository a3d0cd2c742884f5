package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

var (
	courseCodePattern = regexp.MustCompile(`(?i)\b([A-Za-z]{2,4}\s?\d{3})\b`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// Course is a tracked subject with an exam date and a study-hour budget.
// Code is the canonical identity; ExamDate and EstimatedHours are nil until
// explicitly set so "not yet known" is distinguishable from a zero value.
type Course struct {
	Code           string
	Name           string
	Materials      []Material
	ExamDate       *time.Time
	EstimatedHours *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Material is a reference to a study resource associated with a course.
type Material struct {
	ID        string
	Path      string
	CreatedAt time.Time
}

// Validate checks that the course carries a non-empty code.
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ValidationErrorf("course code is required")
	}
	return nil
}

// RemainingHours returns the estimated hours, or 0 when not yet estimated.
func (c *Course) RemainingHours() float64 {
	if c.EstimatedHours == nil {
		return 0
	}
	return *c.EstimatedHours
}

// NormalizeCourseCode uppercases a code and collapses internal whitespace,
// so "cs  101" and "CS 101" resolve to the same course.
func NormalizeCourseCode(code string) string {
	return whitespaceRun.ReplaceAllString(strings.ToUpper(strings.TrimSpace(code)), " ")
}

// ExtractCourseCodes finds course codes (2-4 letters followed by 3 digits,
// e.g. "CS 101", "math221") in free text. Results are normalized, unique
// and sorted.
func ExtractCourseCodes(text string) []string {
	if text == "" {
		return nil
	}
	seen := make(map[string]bool)
	var codes []string
	for _, m := range courseCodePattern.FindAllStringSubmatch(text, -1) {
		code := NormalizeCourseCode(m[1])
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// PlaceholderCode builds the synthetic code used when ingested material
// carries no recognizable course code.
func PlaceholderCode(n int) string {
	return fmt.Sprintf("COURSE-%d", n)
}
