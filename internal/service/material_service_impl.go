package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/parser"
	"github.com/haeunpark/studyplan/internal/repository"
	"github.com/haeunpark/studyplan/internal/scheduler"
)

type materialService struct {
	materials repository.MaterialRepo
}

func NewMaterialService(materials repository.MaterialRepo) MaterialService {
	return &materialService{materials: materials}
}

func (s *materialService) CreateBook(ctx context.Context, in CreateBookInput) (*domain.Material, error) {
	if err := validateCommon(in.Title, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	if in.TotalPages <= 0 {
		return nil, fmt.Errorf("total pages must be positive, got %d", in.TotalPages)
	}

	now := time.Now().UTC()
	m := &domain.Material{
		ID:          uuid.New().String(),
		Type:        domain.MaterialBook,
		Title:       in.Title,
		Description: in.Description,
		Color:       in.Color,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TotalPages:  in.TotalPages,
		PagesPerDay: scheduler.PagesPerDay(in.TotalPages, in.StartDate, in.EndDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *materialService) CreateVideo(ctx context.Context, in CreateVideoInput) (*domain.Material, error) {
	if err := validateCommon(in.Title, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	parsed := parser.Parse(in.Transcript)
	if parsed.TotalCount == 0 {
		return nil, fmt.Errorf("transcript yielded no sections")
	}

	now := time.Now().UTC()
	m := &domain.Material{
		ID:             uuid.New().String(),
		Type:           domain.MaterialVideo,
		Title:          in.Title,
		Description:    in.Description,
		Color:          in.Color,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Sections:       parsed.Sections,
		TotalDuration:  parsed.TotalDuration,
		SectionsPerDay: scheduler.SectionsPerDay(parsed.TotalCount, in.StartDate, in.EndDate),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *materialService) GetByID(ctx context.Context, id string) (*domain.Material, error) {
	return s.materials.GetByID(ctx, id)
}

func (s *materialService) List(ctx context.Context) ([]*domain.Material, error) {
	return s.materials.List(ctx)
}

func (s *materialService) Update(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	if err := validateCommon(m.Title, m.StartDate, m.EndDate); err != nil {
		return nil, err
	}

	switch m.Type {
	case domain.MaterialBook:
		if m.TotalPages <= 0 {
			return nil, fmt.Errorf("total pages must be positive, got %d", m.TotalPages)
		}
		m.PagesPerDay = scheduler.PagesPerDay(m.TotalPages, m.StartDate, m.EndDate)
	case domain.MaterialVideo:
		m.SectionsPerDay = scheduler.SectionsPerDay(len(m.Sections), m.StartDate, m.EndDate)
	}
	m.UpdatedAt = time.Now().UTC()

	if err := s.materials.Update(ctx, m); err != nil {
		return nil, err
	}
	return s.materials.GetByID(ctx, m.ID)
}

func (s *materialService) AdvanceProgress(ctx context.Context, id string, value int) (*domain.Material, error) {
	m, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if value < 0 {
		value = 0
	}
	switch m.Type {
	case domain.MaterialBook:
		if value > m.TotalPages {
			value = m.TotalPages
		}
	case domain.MaterialVideo:
		if value > len(m.Sections) {
			value = len(m.Sections)
		}
	default:
		return nil, fmt.Errorf("material %s has no progress counter", m.DisplayID())
	}

	if err := s.materials.UpdateProgress(ctx, id, value); err != nil {
		return nil, err
	}
	return s.materials.GetByID(ctx, id)
}

func (s *materialService) Delete(ctx context.Context, id string) error {
	return s.materials.Delete(ctx, id)
}

func validateCommon(title string, start, end time.Time) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s precedes start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return nil
}
