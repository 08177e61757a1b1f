package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/haeunpark/studyplan/internal/db"
	"github.com/haeunpark/studyplan/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo on SQLite. Settings are a
// single row with a fixed primary key.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(dbtx db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: dbtx}
}

// Get returns the stored reminder settings, or defaults when none were
// ever saved.
func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.ReminderSettings, error) {
	var enabledInt int
	var timeStr, weekdaysStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT enabled, time, weekdays FROM settings WHERE id = 1`,
	).Scan(&enabledInt, &timeStr, &weekdaysStr)
	if err == sql.ErrNoRows {
		return &domain.ReminderSettings{Time: "09:00"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	return &domain.ReminderSettings{
		Enabled:  intToBool(enabledInt),
		Time:     timeStr,
		Weekdays: parseWeekdays(weekdaysStr),
	}, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.ReminderSettings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (id, enabled, time, weekdays) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET enabled = excluded.enabled,
			time = excluded.time, weekdays = excluded.weekdays`,
		boolToInt(s.Enabled), s.Time, formatWeekdays(s.Weekdays),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

func parseWeekdays(s string) []int {
	if s == "" {
		return nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, n)
	}
	return days
}

func formatWeekdays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}
