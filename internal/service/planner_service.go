package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

type PlannerService struct {
	repo repository.PlannersRepositoryI
}

func NewPlannerService(plannersRepo repository.PlannersRepositoryI) *PlannerService {
	return &PlannerService{
		repo: plannersRepo,
	}
}

func (ps *PlannerService) Get(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyPlanner, error) {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	planner, err := ps.repo.Get(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlannerNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository getting planner error: %w", err)
	}
	return planner, nil
}

func (ps *PlannerService) Save(ctx context.Context, uid uuid.UUID, req *SavePlannerRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	err := ps.repo.Upsert(ctx, &entity.DailyPlanner{
		UserID:    uid,
		Name:      req.Name,
		Date:      req.Date,
		TimeSlots: req.TimeSlots,
	})
	if err != nil {
		return fmt.Errorf("repository saving planner error: %w", err)
	}
	return nil
}
