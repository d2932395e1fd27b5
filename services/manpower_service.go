package services

import (
	"context"

	"github.com/monitoring-dashboard/models"
)

var manPowerFields = fieldRules[models.ManPower]{
	"name":         requiredTextField(func(m *models.ManPower, v string) { m.Name = v }),
	"email":        textField(func(m *models.ManPower, v string) { m.Email = v }),
	"position":     requiredTextField(func(m *models.ManPower, v string) { m.Position = v }),
	"department":   requiredTextField(func(m *models.ManPower, v string) { m.Department = v }),
	"skills":       textField(func(m *models.ManPower, v string) { m.Skills = v }),
	"availability": numberField(func(m *models.ManPower, v float64) { m.Availability = v }),
	"total_hours":  integerField(func(m *models.ManPower, v int) { m.TotalHours = v }),
}

var manPowerRequired = []string{"name", "position", "department"}

// DefaultAvailability is the availability percentage of a new person
const DefaultAvailability = 100

// ManPowerService handles business logic for personnel
type ManPowerService struct {
	writer
}

// List returns every person ordered by id
func (s *ManPowerService) List(ctx context.Context) ([]models.ManPower, error) {
	people, err := s.repos.ManPower.FindAll(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return people, nil
}

// Get returns one person
func (s *ManPowerService) Get(ctx context.Context, id uint) (models.ManPower, error) {
	person, err := s.repos.ManPower.FindByID(ctx, id)
	return person, storeErr(err, entityManPower, id)
}

// Create stores a new person
func (s *ManPowerService) Create(ctx context.Context, input map[string]interface{}) (models.ManPower, error) {
	if err := requirePresent(input, manPowerRequired...); err != nil {
		return models.ManPower{}, err
	}
	person := models.ManPower{
		Availability: DefaultAvailability,
		TotalHours:   models.DefaultWeeklyHours,
	}
	if err := manPowerFields.apply(&person, input); err != nil {
		return models.ManPower{}, err
	}

	created, err := s.repos.ManPower.Create(ctx, person)
	if err != nil {
		return models.ManPower{}, unavailable(err)
	}
	s.committed(ctx, entityManPower, "create", created.ID)
	return created, nil
}

// Update applies the fields present in input
func (s *ManPowerService) Update(ctx context.Context, id uint, input map[string]interface{}) (models.ManPower, error) {
	person, err := s.repos.ManPower.FindByID(ctx, id)
	if err != nil {
		return models.ManPower{}, storeErr(err, entityManPower, id)
	}
	if err := manPowerFields.apply(&person, input); err != nil {
		return models.ManPower{}, err
	}

	updated, err := s.repos.ManPower.Update(ctx, person)
	if err != nil {
		return models.ManPower{}, storeErr(err, entityManPower, id)
	}
	s.committed(ctx, entityManPower, "update", id)
	return updated, nil
}

// Delete removes a person and their assignments
func (s *ManPowerService) Delete(ctx context.Context, id uint) error {
	if err := s.repos.ManPower.Delete(ctx, id); err != nil {
		return storeErr(err, entityManPower, id)
	}
	s.committed(ctx, entityManPower, "delete", id)
	return nil
}
