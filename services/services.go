package services

import (
	"context"

	"github.com/monitoring-dashboard/cache"
	"github.com/monitoring-dashboard/dto"
	"github.com/monitoring-dashboard/metrics"
	"github.com/monitoring-dashboard/repositories"
	"go.uber.org/zap"
)

// Entity names used in errors, metrics and logs
const (
	entityProject    = "project"
	entityNonProject = "non-project"
	entityTask       = "task"
	entityManPower   = "manpower"
	entityAssignment = "assignment"
)

// SummaryCache holds the last computed dashboard summary.
// Invalidate bumps the generation; Set stores only while the generation
// still matches the one read before the summary was computed.
type SummaryCache interface {
	Get(ctx context.Context) (dto.SummaryResponse, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, generation int64, summary dto.SummaryResponse) (bool, error)
	Invalidate(ctx context.Context) error
}

// Services bundles every service of the dashboard
type Services struct {
	Projects    *ProjectService
	NonProjects *NonProjectService
	Tasks       *TaskService
	ManPower    *ManPowerService
	Assignments *AssignmentService
	Summary     *SummaryService
}

// New wires the services over repos. summaries may be nil.
func New(repos *repositories.Repositories, summaries SummaryCache, log *zap.Logger) *Services {
	if summaries == nil {
		summaries = cache.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	w := writer{repos: repos, cache: summaries, log: log}
	return &Services{
		Projects:    &ProjectService{writer: w},
		NonProjects: &NonProjectService{writer: w},
		Tasks:       &TaskService{writer: w},
		ManPower:    &ManPowerService{writer: w},
		Assignments: &AssignmentService{writer: w},
		Summary:     &SummaryService{repos: repos, cache: summaries, log: log},
	}
}

// writer is embedded by the entity services; it owns what every write shares
type writer struct {
	repos *repositories.Repositories
	cache SummaryCache
	log   *zap.Logger
}

// committed records a successful write and drops the cached summary
func (w writer) committed(ctx context.Context, entity, op string, id uint) {
	metrics.IncrementEntityWrite(entity, op)
	w.log.Info("entity written",
		zap.String("entity", entity),
		zap.String("op", op),
		zap.Uint("id", id),
	)
	if err := w.cache.Invalidate(ctx); err != nil {
		w.log.Warn("failed to invalidate summary cache", zap.Error(err))
	}
}
