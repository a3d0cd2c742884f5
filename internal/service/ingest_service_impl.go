package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/ingest"
	"github.com/tbielak/cram/internal/repository"
)

type ingestService struct {
	courses    repository.CourseRepo
	uow        db.UnitOfWork
	searchDirs []string
}

// NewIngestService builds the ingestion use case. searchDirs lists where
// bare file names are looked up; pass ingest.DefaultSearchDirs() in
// production.
func NewIngestService(courses repository.CourseRepo, uow db.UnitOfWork, searchDirs []string) IngestService {
	return &ingestService{courses: courses, uow: uow, searchDirs: searchDirs}
}

func (s *ingestService) Ingest(ctx context.Context, text string) (*IngestResult, error) {
	refs := ingest.ExtractPDFRefs(text)
	if len(refs) == 0 {
		return nil, domain.ValidationErrorf("provide PDF paths or file names ending in .pdf")
	}

	code, err := s.targetCourse(ctx, text)
	if err != nil {
		return nil, err
	}

	result := &IngestResult{CourseCode: code}
	var resolved []string
	for _, ref := range refs {
		path := ingest.ResolvePath(ref, s.searchDirs)
		if path == "" {
			result.Missing = append(result.Missing, ref)
			continue
		}
		resolved = append(resolved, path)
	}

	if len(resolved) > 0 {
		now := time.Now().UTC()
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txCourses := repository.NewSQLiteCourseRepo(tx)
			if err := txCourses.Ensure(ctx, code); err != nil {
				return err
			}
			for _, path := range resolved {
				m := domain.Material{ID: uuid.New().String(), Path: path, CreatedAt: now}
				if err := txCourses.AddMaterial(ctx, code, m); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("ingesting materials: %w", err)
		}
		result.Ingested = resolved
	}
	return result, nil
}

// targetCourse picks the course the materials belong to: the first code
// mentioned in the text, or a placeholder when the text names none.
func (s *ingestService) targetCourse(ctx context.Context, text string) (string, error) {
	if codes := domain.ExtractCourseCodes(text); len(codes) > 0 {
		return codes[0], nil
	}
	n, err := s.courses.Count(ctx)
	if err != nil {
		return "", err
	}
	return domain.PlaceholderCode(n + 1), nil
}
