package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tbielak/cram/internal/db"
	"github.com/tbielak/cram/internal/domain"
)

const courseColumns = `code, name, exam_date, estimated_hours, created_at, updated_at`

// SQLiteCourseRepo implements CourseRepo over SQLite.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

func (r *SQLiteCourseRepo) Ensure(ctx context.Context, code string) error {
	now := nowUTC()
	query := `INSERT OR IGNORE INTO courses (code, name, exam_date, estimated_hours, created_at, updated_at)
		VALUES (?, '', NULL, NULL, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, code, now, now); err != nil {
		return fmt.Errorf("ensuring course %s: %w", code, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE code = ?`, code)
	c, err := scanCourse(row)
	if err != nil {
		return nil, err
	}
	materials, err := r.listMaterials(ctx, code)
	if err != nil {
		return nil, err
	}
	c.Materials = materials
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	byCode := make(map[string]*domain.Course)
	for rows.Next() {
		c, err := scanCourseFromRows(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
		byCode[c.Code] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	mrows, err := r.db.QueryContext(ctx,
		`SELECT id, course_code, path, created_at FROM materials ORDER BY course_code, position`)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer mrows.Close()

	for mrows.Next() {
		var m domain.Material
		var courseCode, createdAt string
		if err := mrows.Scan(&m.ID, &courseCode, &m.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning material: %w", err)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if c, ok := byCode[courseCode]; ok {
			c.Materials = append(c.Materials, m)
		}
	}
	if err := mrows.Err(); err != nil {
		return nil, fmt.Errorf("iterating materials: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}

func (r *SQLiteCourseRepo) SetName(ctx context.Context, code, name string) error {
	return r.update(ctx, code, `UPDATE courses SET name = ?, updated_at = ? WHERE code = ?`, name)
}

func (r *SQLiteCourseRepo) SetExamDate(ctx context.Context, code string, d time.Time) error {
	return r.update(ctx, code, `UPDATE courses SET exam_date = ?, updated_at = ? WHERE code = ?`, d.Format(dateLayout))
}

func (r *SQLiteCourseRepo) SetEstimatedHours(ctx context.Context, code string, hours float64) error {
	return r.update(ctx, code, `UPDATE courses SET estimated_hours = ?, updated_at = ? WHERE code = ?`, hours)
}

func (r *SQLiteCourseRepo) update(ctx context.Context, code, query string, value interface{}) error {
	res, err := r.db.ExecContext(ctx, query, value, nowUTC(), code)
	if err != nil {
		return fmt.Errorf("updating course %s: %w", code, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("course %s: %w", code, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCourseRepo) AddMaterial(ctx context.Context, code string, m domain.Material) error {
	query := `INSERT INTO materials (id, course_code, path, position, created_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM materials WHERE course_code = ?), ?)`
	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, query, m.ID, code, m.Path, code, created.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("adding material to %s: %w", code, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("deleting courses: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) listMaterials(ctx context.Context, code string) ([]domain.Material, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, path, created_at FROM materials WHERE course_code = ? ORDER BY position`, code)
	if err != nil {
		return nil, fmt.Errorf("listing materials for %s: %w", code, err)
	}
	defer rows.Close()

	var materials []domain.Material
	for rows.Next() {
		var m domain.Material
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning material: %w", err)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating materials: %w", err)
	}
	return materials, nil
}

func scanCourse(row *sql.Row) (*domain.Course, error) {
	var c domain.Course
	var examDate sql.NullString
	var estimatedHours sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(&c.Code, &c.Name, &examDate, &estimatedHours, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	applyCourseFields(&c, examDate, estimatedHours, createdAt, updatedAt)
	return &c, nil
}

func scanCourseFromRows(rows *sql.Rows) (*domain.Course, error) {
	var c domain.Course
	var examDate sql.NullString
	var estimatedHours sql.NullFloat64
	var createdAt, updatedAt string

	if err := rows.Scan(&c.Code, &c.Name, &examDate, &estimatedHours, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	applyCourseFields(&c, examDate, estimatedHours, createdAt, updatedAt)
	return &c, nil
}

func applyCourseFields(c *domain.Course, examDate sql.NullString, estimatedHours sql.NullFloat64, createdAt, updatedAt string) {
	c.ExamDate = parseNullableDate(examDate)
	if estimatedHours.Valid {
		v := estimatedHours.Float64
		c.EstimatedHours = &v
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
}
