package repository

import (
	"context"
	"errors"
	"time"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
)

// ErrNotFound is returned when a lookup by ID matches nothing.
var ErrNotFound = errors.New("not found")

// MaterialRepo stores learning materials. The SQLite and in-memory
// implementations are interchangeable behind this interface.
type MaterialRepo interface {
	Create(ctx context.Context, m *domain.Material) error
	GetByID(ctx context.Context, id string) (*domain.Material, error)
	List(ctx context.Context) ([]*domain.Material, error)
	Update(ctx context.Context, m *domain.Material) error
	// UpdateProgress advances the material's own progress counter:
	// current_page for books, current_progress for videos.
	UpdateProgress(ctx context.Context, id string, value int) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// CompletionRepo stores the per-(material,date) checkmarks the calendar
// overlays. This set is independent of the material's progress counter and
// the two are never reconciled.
type CompletionRepo interface {
	MarkCompleted(ctx context.Context, materialID string, date time.Time) error
	MarkIncomplete(ctx context.Context, materialID string, date time.Time) error
	IsCompleted(ctx context.Context, materialID string, date time.Time) (bool, error)
	// ListAll returns the full key set, keyed by CompletionKey.
	ListAll(ctx context.Context) (map[string]bool, error)
}

// SettingsRepo stores the reminder configuration. The scheduling core
// never reads it.
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.ReminderSettings, error)
	Upsert(ctx context.Context, s *domain.ReminderSettings) error
}

// CompletionKey builds the canonical "materialID-YYYY-MM-DD" key.
func CompletionKey(materialID string, date time.Time) string {
	return materialID + "-" + dateutil.FormatDate(date)
}
