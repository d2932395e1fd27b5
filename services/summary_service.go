package services

import (
	"context"

	"github.com/juju/errors"
	"github.com/monitoring-dashboard/dto"
	"github.com/monitoring-dashboard/metrics"
	"github.com/monitoring-dashboard/repositories"
	"go.uber.org/zap"
)

// SummaryService computes the dashboard views that span every entity
type SummaryService struct {
	repos *repositories.Repositories
	cache SummaryCache
	log   *zap.Logger
}

// Summary returns the dashboard summary, from cache when possible
func (s *SummaryService) Summary(ctx context.Context) (dto.SummaryResponse, error) {
	cached, ok, err := s.cache.Get(ctx)
	switch {
	case err != nil:
		metrics.IncrementSummaryCache("error")
		s.log.Warn("failed to read summary cache", zap.Error(err))
	case ok:
		metrics.IncrementSummaryCache("hit")
		return cached, nil
	default:
		metrics.IncrementSummaryCache("miss")
	}

	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.log.Warn("failed to read summary generation", zap.Error(genErr))
	}
	in, err := s.snapshot(ctx)
	if err != nil {
		return dto.SummaryResponse{}, errors.Trace(err)
	}
	summary := Summarize(in)
	if genErr != nil {
		return summary, nil
	}

	stored, err := s.cache.Set(ctx, gen, summary)
	switch {
	case err != nil:
		s.log.Warn("failed to write summary cache", zap.Error(err))
	case !stored:
		s.log.Debug("summary changed while computing, not cached", zap.Int64("generation", gen))
	}
	return summary, nil
}

// snapshot reads everything the summary needs inside one transaction
func (s *SummaryService) snapshot(ctx context.Context) (SummaryInput, error) {
	var in SummaryInput
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		var err error
		if in.Projects, err = tx.Projects.FindAll(ctx); err != nil {
			return err
		}
		if in.NonProjects, err = tx.NonProjects.FindAll(ctx); err != nil {
			return err
		}
		if in.Tasks, err = tx.Tasks.Find(ctx, repositories.TaskFilter{}); err != nil {
			return err
		}
		in.ManPowerCount, err = tx.ManPower.Count(ctx)
		return err
	})
	return in, unavailable(err)
}

// Workload returns the staffing load of every person ordered by id
func (s *SummaryService) Workload(ctx context.Context) ([]dto.WorkloadEntry, error) {
	var entries []dto.WorkloadEntry
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		people, err := tx.ManPower.FindAll(ctx)
		if err != nil {
			return err
		}
		assignments, err := tx.Assignments.Find(ctx, repositories.AssignmentFilter{})
		if err != nil {
			return err
		}
		entries = Workload(people, assignments)
		return nil
	})
	if err != nil {
		return nil, unavailable(err)
	}
	return entries, nil
}
