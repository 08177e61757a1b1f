package service

import (
	"context"
	"time"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/planner"
	"github.com/haeunpark/studyplan/internal/repository"
)

type planService struct {
	materials repository.MaterialRepo
	clock     dateutil.Clock
}

func NewPlanService(materials repository.MaterialRepo, clock dateutil.Clock) PlanService {
	return &planService{materials: materials, clock: clock}
}

func (s *planService) WeeklyPlan(ctx context.Context, weekOf time.Time) (domain.WeeklyPlan, error) {
	materials, err := s.materials.List(ctx)
	if err != nil {
		return domain.WeeklyPlan{}, err
	}
	return planner.GenerateWeeklyPlan(materials, weekOf, s.clock), nil
}

func (s *planService) TodayWorkload(ctx context.Context) ([]domain.DailyTask, error) {
	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, err
	}
	return planner.TodayWorkload(materials, s.clock), nil
}
