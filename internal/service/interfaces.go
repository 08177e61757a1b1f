package service

import (
	"context"
	"time"

	"github.com/haeunpark/studyplan/internal/domain"
)

// CreateBookInput carries the form fields for registering a book.
type CreateBookInput struct {
	Title       string
	Description string
	Color       string
	TotalPages  int
	StartDate   time.Time
	EndDate     time.Time
}

// CreateVideoInput carries the form fields for registering a video course.
// Transcript is the raw curriculum text pasted from the platform.
type CreateVideoInput struct {
	Title       string
	Description string
	Color       string
	Transcript  string
	StartDate   time.Time
	EndDate     time.Time
}

type MaterialService interface {
	CreateBook(ctx context.Context, in CreateBookInput) (*domain.Material, error)
	CreateVideo(ctx context.Context, in CreateVideoInput) (*domain.Material, error)
	GetByID(ctx context.Context, id string) (*domain.Material, error)
	List(ctx context.Context) ([]*domain.Material, error)
	// Update persists edited material fields, recomputing the daily rate
	// when the date range or totals changed.
	Update(ctx context.Context, m *domain.Material) (*domain.Material, error)
	// AdvanceProgress sets the material's progress counter (last completed
	// page or completed section count), clamped to the material's total.
	AdvanceProgress(ctx context.Context, id string, value int) (*domain.Material, error)
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	// WeeklyPlan builds the plan for the week containing weekOf;
	// a zero time means the current week.
	WeeklyPlan(ctx context.Context, weekOf time.Time) (domain.WeeklyPlan, error)
	TodayWorkload(ctx context.Context) ([]domain.DailyTask, error)
}

type CompletionService interface {
	// Toggle flips the (material, date) checkmark and returns the new state.
	Toggle(ctx context.Context, materialID string, date time.Time) (bool, error)
	IsCompleted(ctx context.Context, materialID string, date time.Time) (bool, error)
	Keys(ctx context.Context) (map[string]bool, error)
}
