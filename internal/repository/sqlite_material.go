package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/haeunpark/studyplan/internal/db"
	"github.com/haeunpark/studyplan/internal/domain"
)

// materialColumns is the canonical SELECT column list for materials.
const materialColumns = `id, type, title, description, color,
		start_date, end_date,
		total_pages, current_page, pages_per_day,
		total_duration, current_progress, sections_per_day,
		created_at, updated_at`

// SQLiteMaterialRepo implements MaterialRepo on SQLite. It accepts a DBTX
// so the same code serves both direct and transactional access.
type SQLiteMaterialRepo struct {
	db db.DBTX
}

// NewSQLiteMaterialRepo creates a new SQLiteMaterialRepo.
func NewSQLiteMaterialRepo(dbtx db.DBTX) *SQLiteMaterialRepo {
	return &SQLiteMaterialRepo{db: dbtx}
}

func (r *SQLiteMaterialRepo) Create(ctx context.Context, m *domain.Material) error {
	query := `INSERT INTO materials (` + materialColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		string(m.Type),
		m.Title,
		m.Description,
		m.Color,
		m.StartDate.Format(dateLayout),
		m.EndDate.Format(dateLayout),
		m.TotalPages,
		m.CurrentPage,
		m.PagesPerDay,
		m.TotalDuration,
		m.CurrentProgress,
		m.SectionsPerDay,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting material: %w", err)
	}

	if err := r.insertSections(ctx, m.ID, m.Sections); err != nil {
		return err
	}
	return nil
}

func (r *SQLiteMaterialRepo) insertSections(ctx context.Context, materialID string, sections []domain.Section) error {
	for _, s := range sections {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO sections (id, material_id, title, duration, completed, order_index)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, materialID, s.Title, s.Duration, boolToInt(s.Completed), s.Order,
		)
		if err != nil {
			return fmt.Errorf("inserting section %d: %w", s.Order, err)
		}
	}
	return nil
}

func (r *SQLiteMaterialRepo) GetByID(ctx context.Context, id string) (*domain.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	m, err := scanMaterial(row)
	if err != nil {
		return nil, err
	}

	sections, err := r.listSections(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Sections = sections
	return m, nil
}

func (r *SQLiteMaterialRepo) List(ctx context.Context) ([]*domain.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()

	var materials []*domain.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating materials: %w", err)
	}

	for _, m := range materials {
		sections, err := r.listSections(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		m.Sections = sections
	}
	return materials, nil
}

func (r *SQLiteMaterialRepo) Update(ctx context.Context, m *domain.Material) error {
	query := `UPDATE materials SET
		type = ?, title = ?, description = ?, color = ?,
		start_date = ?, end_date = ?,
		total_pages = ?, current_page = ?, pages_per_day = ?,
		total_duration = ?, current_progress = ?, sections_per_day = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(m.Type),
		m.Title,
		m.Description,
		m.Color,
		m.StartDate.Format(dateLayout),
		m.EndDate.Format(dateLayout),
		m.TotalPages,
		m.CurrentPage,
		m.PagesPerDay,
		m.TotalDuration,
		m.CurrentProgress,
		m.SectionsPerDay,
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating material: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	// Sections are replaced wholesale; the set is small and fixed after
	// parsing, only the completed flags change.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE material_id = ?`, m.ID); err != nil {
		return fmt.Errorf("clearing sections: %w", err)
	}
	return r.insertSections(ctx, m.ID, m.Sections)
}

func (r *SQLiteMaterialRepo) UpdateProgress(ctx context.Context, id string, value int) error {
	query := `UPDATE materials SET
		current_page = CASE WHEN type = 'book' THEN ? ELSE current_page END,
		current_progress = CASE WHEN type = 'video' THEN ? ELSE current_progress END,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, value, value, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating progress: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteMaterialRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting material: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteMaterialRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM materials`); err != nil {
		return fmt.Errorf("clearing materials: %w", err)
	}
	return nil
}

func (r *SQLiteMaterialRepo) listSections(ctx context.Context, materialID string) ([]domain.Section, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, duration, completed, order_index
		FROM sections WHERE material_id = ? ORDER BY order_index`, materialID)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var s domain.Section
		var completedInt int
		if err := rows.Scan(&s.ID, &s.Title, &s.Duration, &completedInt, &s.Order); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		s.Completed = intToBool(completedInt)
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row rowScanner) (*domain.Material, error) {
	var m domain.Material
	var typeStr, startDateStr, endDateStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&m.ID,
		&typeStr,
		&m.Title,
		&m.Description,
		&m.Color,
		&startDateStr,
		&endDateStr,
		&m.TotalPages,
		&m.CurrentPage,
		&m.PagesPerDay,
		&m.TotalDuration,
		&m.CurrentProgress,
		&m.SectionsPerDay,
		&createdAtStr,
		&updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning material: %w", err)
	}

	m.Type = domain.MaterialType(typeStr)
	m.StartDate = parseDate(startDateStr)
	m.EndDate = parseDate(endDateStr)
	m.CreatedAt = parseTimestamp(createdAtStr)
	m.UpdatedAt = parseTimestamp(updatedAtStr)
	return &m, nil
}
