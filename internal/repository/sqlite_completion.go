package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/haeunpark/studyplan/internal/db"
	"github.com/haeunpark/studyplan/internal/dateutil"
)

// SQLiteCompletionRepo implements CompletionRepo on SQLite.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

// NewSQLiteCompletionRepo creates a new SQLiteCompletionRepo.
func NewSQLiteCompletionRepo(dbtx db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: dbtx}
}

func (r *SQLiteCompletionRepo) MarkCompleted(ctx context.Context, materialID string, date time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO completions (material_id, date, created_at) VALUES (?, ?, ?)`,
		materialID, dateutil.FormatDate(date), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("marking completed: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) MarkIncomplete(ctx context.Context, materialID string, date time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM completions WHERE material_id = ? AND date = ?`,
		materialID, dateutil.FormatDate(date),
	)
	if err != nil {
		return fmt.Errorf("marking incomplete: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) IsCompleted(ctx context.Context, materialID string, date time.Time) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM completions WHERE material_id = ? AND date = ?`,
		materialID, dateutil.FormatDate(date),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking completion: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteCompletionRepo) ListAll(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT material_id, date FROM completions`)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var materialID, dateStr string
		if err := rows.Scan(&materialID, &dateStr); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		keys[materialID+"-"+dateStr] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return keys, nil
}
