package service

import (
	"context"
	"time"

	"github.com/haeunpark/studyplan/internal/repository"
)

type completionService struct {
	completions repository.CompletionRepo
}

func NewCompletionService(completions repository.CompletionRepo) CompletionService {
	return &completionService{completions: completions}
}

func (s *completionService) Toggle(ctx context.Context, materialID string, date time.Time) (bool, error) {
	done, err := s.completions.IsCompleted(ctx, materialID, date)
	if err != nil {
		return false, err
	}
	if done {
		if err := s.completions.MarkIncomplete(ctx, materialID, date); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.completions.MarkCompleted(ctx, materialID, date); err != nil {
		return false, err
	}
	return true, nil
}

func (s *completionService) IsCompleted(ctx context.Context, materialID string, date time.Time) (bool, error) {
	return s.completions.IsCompleted(ctx, materialID, date)
}

func (s *completionService) Keys(ctx context.Context) (map[string]bool, error) {
	return s.completions.ListAll(ctx)
}
