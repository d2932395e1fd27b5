package services

import (
	"context"

	"github.com/juju/errors"
	"github.com/monitoring-dashboard/models"
	"github.com/monitoring-dashboard/repositories"
)

var taskFields = ownedBy(fieldRules[models.Task]{
	"name":        requiredTextField(func(t *models.Task, v string) { t.Name = v }),
	"description": textField(func(t *models.Task, v string) { t.Description = v }),
	"pic":         requiredTextField(func(t *models.Task, v string) { t.PIC = v }),
	"due_date":    requiredTextField(func(t *models.Task, v string) { t.DueDate = v }),
	"status":      requiredTextField(func(t *models.Task, v string) { t.Status = v }),
	"action_plan": requiredTextField(func(t *models.Task, v string) { t.ActionPlan = v }),
	"priority":    requiredTextField(func(t *models.Task, v string) { t.Priority = v }),
	"progress":    numberField(func(t *models.Task, v float64) { t.Progress = v }),
})

var taskRequired = []string{"name", "pic", "due_date", "action_plan"}

// TaskService handles business logic for tasks
type TaskService struct {
	writer
}

// List returns the tasks matching filter. An owner without tasks yields an empty list.
func (s *TaskService) List(ctx context.Context, filter repositories.TaskFilter) ([]models.Task, error) {
	tasks, err := s.repos.Tasks.Find(ctx, filter)
	if err != nil {
		return nil, unavailable(err)
	}
	return tasks, nil
}

// Get returns one task
func (s *TaskService) Get(ctx context.Context, id uint) (models.Task, error) {
	task, err := s.repos.Tasks.FindByID(ctx, id)
	return task, storeErr(err, entityTask, id)
}

// Create stores a new task under the project or non-project named in input
func (s *TaskService) Create(ctx context.Context, input map[string]interface{}) (models.Task, error) {
	if err := requirePresent(input, taskRequired...); err != nil {
		return models.Task{}, err
	}
	task := models.Task{
		Status:   models.StatusNotStarted,
		Priority: models.PriorityMedium,
	}
	if err := taskFields.apply(&task, input); err != nil {
		return models.Task{}, err
	}
	owner, err := ownerFromInput(input, models.Unassigned())
	if err != nil {
		return models.Task{}, err
	}
	task.SetOwner(owner)

	var created models.Task
	err = s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if err := checkOwner(ctx, tx, owner); err != nil {
			return err
		}
		var err error
		created, err = tx.Tasks.Create(ctx, task)
		return unavailable(err)
	})
	if err != nil {
		return models.Task{}, errors.Trace(txErr(err))
	}
	s.committed(ctx, entityTask, "create", created.ID)
	return created, nil
}

// Update applies the fields present in input. Naming a new parent moves the task.
func (s *TaskService) Update(ctx context.Context, id uint, input map[string]interface{}) (models.Task, error) {
	var updated models.Task
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		task, err := tx.Tasks.FindByID(ctx, id)
		if err != nil {
			return storeErr(err, entityTask, id)
		}
		if err := taskFields.apply(&task, input); err != nil {
			return err
		}
		owner, err := ownerFromInput(input, task.Owner())
		if err != nil {
			return err
		}
		if owner != task.Owner() {
			if err := checkOwner(ctx, tx, owner); err != nil {
				return err
			}
		}
		task.SetOwner(owner)

		updated, err = tx.Tasks.Update(ctx, task)
		return storeErr(err, entityTask, id)
	})
	if err != nil {
		return models.Task{}, errors.Trace(txErr(err))
	}
	s.committed(ctx, entityTask, "update", id)
	return updated, nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, id uint) error {
	if err := s.repos.Tasks.Delete(ctx, id); err != nil {
		return storeErr(err, entityTask, id)
	}
	s.committed(ctx, entityTask, "delete", id)
	return nil
}
