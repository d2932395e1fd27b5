package services

import (
	"context"

	"github.com/juju/errors"
	"github.com/monitoring-dashboard/dto"
	"github.com/monitoring-dashboard/models"
)

var projectFields = fieldRules[models.Project]{
	"name":        requiredTextField(func(p *models.Project, v string) { p.Name = v }),
	"description": textField(func(p *models.Project, v string) { p.Description = v }),
	"status":      requiredTextField(func(p *models.Project, v string) { p.Status = v }),
	"priority":    requiredTextField(func(p *models.Project, v string) { p.Priority = v }),
	"start_date":  requiredTextField(func(p *models.Project, v string) { p.StartDate = v }),
	"end_date":    requiredTextField(func(p *models.Project, v string) { p.EndDate = v }),
	"budget":      numberField(func(p *models.Project, v float64) { p.Budget = v }),
	"actual_cost": numberField(func(p *models.Project, v float64) { p.ActualCost = v }),
	"location":    textField(func(p *models.Project, v string) { p.Location = v }),
	"latitude":    optionalNumberField(func(p *models.Project, v *float64) { p.Latitude = v }),
	"longitude":   optionalNumberField(func(p *models.Project, v *float64) { p.Longitude = v }),
	"progress":    numberField(func(p *models.Project, v float64) { p.Progress = v }),
}

var projectRequired = []string{"name", "start_date", "end_date", "budget"}

// ProjectService handles business logic for projects
type ProjectService struct {
	writer
}

// List returns every project ordered by id
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repos.Projects.FindAll(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return projects, nil
}

// Get returns one project
func (s *ProjectService) Get(ctx context.Context, id uint) (models.Project, error) {
	project, err := s.repos.Projects.FindByID(ctx, id)
	return project, storeErr(err, entityProject, id)
}

// Create stores a new project from a decoded request body
func (s *ProjectService) Create(ctx context.Context, input map[string]interface{}) (models.Project, error) {
	if err := requirePresent(input, projectRequired...); err != nil {
		return models.Project{}, err
	}
	project := models.Project{
		Status:   models.StatusNotStarted,
		Priority: models.PriorityMedium,
	}
	if err := projectFields.apply(&project, input); err != nil {
		return models.Project{}, err
	}

	created, err := s.repos.Projects.Create(ctx, project)
	if err != nil {
		return models.Project{}, unavailable(err)
	}
	s.committed(ctx, entityProject, "create", created.ID)
	return created, nil
}

// Update applies the fields present in input to an existing project
func (s *ProjectService) Update(ctx context.Context, id uint, input map[string]interface{}) (models.Project, error) {
	project, err := s.repos.Projects.FindByID(ctx, id)
	if err != nil {
		return models.Project{}, storeErr(err, entityProject, id)
	}
	if err := projectFields.apply(&project, input); err != nil {
		return models.Project{}, err
	}

	updated, err := s.repos.Projects.Update(ctx, project)
	if err != nil {
		return models.Project{}, storeErr(err, entityProject, id)
	}
	s.committed(ctx, entityProject, "update", id)
	return updated, nil
}

// Delete removes a project together with its tasks and assignments
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	if err := s.repos.Projects.Delete(ctx, id); err != nil {
		return storeErr(err, entityProject, id)
	}
	s.committed(ctx, entityProject, "delete", id)
	return nil
}

// SCurve returns the planned vs actual progress curve of a project
func (s *ProjectService) SCurve(ctx context.Context, id uint) (dto.SCurve, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return dto.SCurve{}, errors.Trace(err)
	}
	return ProjectSCurve(project.Progress), nil
}
