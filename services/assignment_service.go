package services

import (
	"context"

	"github.com/juju/errors"
	"github.com/monitoring-dashboard/models"
	"github.com/monitoring-dashboard/repositories"
)

var assignmentFields = ownedBy(fieldRules[models.Assignment]{
	"manpower_id":    idField(func(a *models.Assignment, v uint) { a.ManPowerID = v }),
	"role":           requiredTextField(func(a *models.Assignment, v string) { a.Role = v }),
	"hours_per_week": integerField(func(a *models.Assignment, v int) { a.HoursPerWeek = v }),
	"start_date":     optionalTextField(func(a *models.Assignment, v *string) { a.StartDate = v }),
	"end_date":       optionalTextField(func(a *models.Assignment, v *string) { a.EndDate = v }),
	"status":         requiredTextField(func(a *models.Assignment, v string) { a.Status = v }),
})

var assignmentRequired = []string{"manpower_id", "role", "hours_per_week"}

// AssignmentService handles business logic for staffing assignments
type AssignmentService struct {
	writer
}

// List returns the assignments matching filter
func (s *AssignmentService) List(ctx context.Context, filter repositories.AssignmentFilter) ([]models.Assignment, error) {
	assignments, err := s.repos.Assignments.Find(ctx, filter)
	if err != nil {
		return nil, unavailable(err)
	}
	return assignments, nil
}

// Get returns one assignment
func (s *AssignmentService) Get(ctx context.Context, id uint) (models.Assignment, error) {
	assignment, err := s.repos.Assignments.FindByID(ctx, id)
	return assignment, storeErr(err, entityAssignment, id)
}

// Create staffs a person onto the project or non-project named in input
func (s *AssignmentService) Create(ctx context.Context, input map[string]interface{}) (models.Assignment, error) {
	if err := requirePresent(input, assignmentRequired...); err != nil {
		return models.Assignment{}, err
	}
	assignment := models.Assignment{Status: models.AssignmentStatusActive}
	if err := assignmentFields.apply(&assignment, input); err != nil {
		return models.Assignment{}, err
	}
	if err := checkHours(assignment); err != nil {
		return models.Assignment{}, err
	}
	owner, err := ownerFromInput(input, models.Unassigned())
	if err != nil {
		return models.Assignment{}, err
	}
	assignment.SetOwner(owner)

	var created models.Assignment
	err = s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if err := checkManPower(ctx, tx, assignment.ManPowerID); err != nil {
			return err
		}
		if err := checkOwner(ctx, tx, owner); err != nil {
			return err
		}
		var err error
		created, err = tx.Assignments.Create(ctx, assignment)
		return unavailable(err)
	})
	if err != nil {
		return models.Assignment{}, errors.Trace(txErr(err))
	}
	s.committed(ctx, entityAssignment, "create", created.ID)
	return created, nil
}

// Update applies the fields present in input
func (s *AssignmentService) Update(ctx context.Context, id uint, input map[string]interface{}) (models.Assignment, error) {
	var updated models.Assignment
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		assignment, err := tx.Assignments.FindByID(ctx, id)
		if err != nil {
			return storeErr(err, entityAssignment, id)
		}
		previousPerson := assignment.ManPowerID
		if err := assignmentFields.apply(&assignment, input); err != nil {
			return err
		}
		if err := checkHours(assignment); err != nil {
			return err
		}
		if assignment.ManPowerID != previousPerson {
			if err := checkManPower(ctx, tx, assignment.ManPowerID); err != nil {
				return err
			}
		}
		owner, err := ownerFromInput(input, assignment.Owner())
		if err != nil {
			return err
		}
		if owner != assignment.Owner() {
			if err := checkOwner(ctx, tx, owner); err != nil {
				return err
			}
		}
		assignment.SetOwner(owner)

		updated, err = tx.Assignments.Update(ctx, assignment)
		return storeErr(err, entityAssignment, id)
	})
	if err != nil {
		return models.Assignment{}, errors.Trace(txErr(err))
	}
	s.committed(ctx, entityAssignment, "update", id)
	return updated, nil
}

// Delete removes an assignment
func (s *AssignmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repos.Assignments.Delete(ctx, id); err != nil {
		return storeErr(err, entityAssignment, id)
	}
	s.committed(ctx, entityAssignment, "delete", id)
	return nil
}

func checkHours(a models.Assignment) error {
	if a.HoursPerWeek <= 0 {
		return errors.NotValidf("hours_per_week %d (must be positive)", a.HoursPerWeek)
	}
	return nil
}

func checkManPower(ctx context.Context, repos *repositories.Repositories, id uint) error {
	exists, err := repos.ManPower.Exists(ctx, id)
	if err != nil {
		return unavailable(err)
	}
	if !exists {
		return errors.NotValidf("manpower_id %d (no such record)", id)
	}
	return nil
}
