package services

import (
	"context"

	"github.com/monitoring-dashboard/models"
)

var nonProjectFields = fieldRules[models.NonProject]{
	"name":        requiredTextField(func(n *models.NonProject, v string) { n.Name = v }),
	"category":    requiredTextField(func(n *models.NonProject, v string) { n.Category = v }),
	"description": textField(func(n *models.NonProject, v string) { n.Description = v }),
	"status":      requiredTextField(func(n *models.NonProject, v string) { n.Status = v }),
	"start_date":  requiredTextField(func(n *models.NonProject, v string) { n.StartDate = v }),
	"end_date":    requiredTextField(func(n *models.NonProject, v string) { n.EndDate = v }),
	"budget":      numberField(func(n *models.NonProject, v float64) { n.Budget = v }),
	"actual_cost": numberField(func(n *models.NonProject, v float64) { n.ActualCost = v }),
	"progress":    numberField(func(n *models.NonProject, v float64) { n.Progress = v }),
}

var nonProjectRequired = []string{"name", "start_date", "end_date", "budget"}

// NonProjectService handles business logic for non-project activities
type NonProjectService struct {
	writer
}

// List returns every non-project activity ordered by id
func (s *NonProjectService) List(ctx context.Context) ([]models.NonProject, error) {
	nonProjects, err := s.repos.NonProjects.FindAll(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return nonProjects, nil
}

// Get returns one non-project activity
func (s *NonProjectService) Get(ctx context.Context, id uint) (models.NonProject, error) {
	nonProject, err := s.repos.NonProjects.FindByID(ctx, id)
	return nonProject, storeErr(err, entityNonProject, id)
}

// Create stores a new non-project activity
func (s *NonProjectService) Create(ctx context.Context, input map[string]interface{}) (models.NonProject, error) {
	if err := requirePresent(input, nonProjectRequired...); err != nil {
		return models.NonProject{}, err
	}
	nonProject := models.NonProject{
		Category: models.CategoryInternal,
		Status:   models.StatusNotStarted,
	}
	if err := nonProjectFields.apply(&nonProject, input); err != nil {
		return models.NonProject{}, err
	}

	created, err := s.repos.NonProjects.Create(ctx, nonProject)
	if err != nil {
		return models.NonProject{}, unavailable(err)
	}
	s.committed(ctx, entityNonProject, "create", created.ID)
	return created, nil
}

// Update applies the fields present in input
func (s *NonProjectService) Update(ctx context.Context, id uint, input map[string]interface{}) (models.NonProject, error) {
	nonProject, err := s.repos.NonProjects.FindByID(ctx, id)
	if err != nil {
		return models.NonProject{}, storeErr(err, entityNonProject, id)
	}
	if err := nonProjectFields.apply(&nonProject, input); err != nil {
		return models.NonProject{}, err
	}

	updated, err := s.repos.NonProjects.Update(ctx, nonProject)
	if err != nil {
		return models.NonProject{}, storeErr(err, entityNonProject, id)
	}
	s.committed(ctx, entityNonProject, "update", id)
	return updated, nil
}

// Delete removes the activity together with its tasks and assignments
func (s *NonProjectService) Delete(ctx context.Context, id uint) error {
	if err := s.repos.NonProjects.Delete(ctx, id); err != nil {
		return storeErr(err, entityNonProject, id)
	}
	s.committed(ctx, entityNonProject, "delete", id)
	return nil
}
