package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/repository"
)

const planDateLayout = "2006-01-02"

type exportService struct {
	courses   repository.CourseRepo
	plans     repository.PlanRepo
	exportDir string
}

// NewExportService builds the export use case. exportDir is where default
// file names land; explicit paths bypass it.
func NewExportService(courses repository.CourseRepo, plans repository.PlanRepo, exportDir string) ExportService {
	return &exportService{courses: courses, plans: plans, exportDir: exportDir}
}

func (s *exportService) Export(ctx context.Context, format, path string) (string, error) {
	plan, err := s.plans.Get(ctx)
	if err != nil {
		return "", err
	}
	if len(plan) == 0 {
		return "", domain.NoPlanErrorf("no plan to export; build a plan first")
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return "", err
	}
	names := make(map[string]string, len(courses))
	for _, c := range courses {
		names[c.Code] = c.Name
	}

	var render func([]domain.PlanDay, map[string]string) []byte
	var ext string
	switch strings.ToLower(format) {
	case "csv":
		render, ext = renderCSV, "csv"
	case "markdown", "md":
		render, ext = renderMarkdown, "md"
	default:
		return "", domain.ValidationErrorf("unknown export format %q (want csv or markdown)", format)
	}

	if path == "" {
		path = filepath.Join(s.exportDir, "study_plan."+ext)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, render(plan, names), 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// focusFor labels a task with the course name, falling back to the code
// when no name was set.
func focusFor(code string, names map[string]string) string {
	if name := names[code]; name != "" {
		return name
	}
	return code
}

func renderCSV(plan []domain.PlanDay, names map[string]string) []byte {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Date", "Course", "Focus", "Hours"})
	for _, day := range plan {
		date := day.Date.Format(planDateLayout)
		for _, task := range day.Tasks {
			_ = w.Write([]string{
				date,
				task.CourseCode,
				focusFor(task.CourseCode, names),
				strconv.FormatFloat(task.Hours, 'g', -1, 64),
			})
		}
	}
	w.Flush()
	return []byte(buf.String())
}

func renderMarkdown(plan []domain.PlanDay, names map[string]string) []byte {
	var buf strings.Builder
	buf.WriteString("| Date | Course | Focus | Hours |\n")
	buf.WriteString("| --- | --- | --- | --- |\n")
	for _, day := range plan {
		date := day.Date.Format(planDateLayout)
		for _, task := range day.Tasks {
			fmt.Fprintf(&buf, "| %s | %s | %s | %g |\n",
				date, task.CourseCode, focusFor(task.CourseCode, names), task.Hours)
		}
	}
	return []byte(buf.String())
}
