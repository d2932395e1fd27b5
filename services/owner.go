package services

import (
	"context"

	"github.com/juju/errors"
	"github.com/monitoring-dashboard/models"
	"github.com/monitoring-dashboard/repositories"
	"github.com/monitoring-dashboard/utils"
)

// ownerKeys are handled by ownerFromInput rather than the field rules
var ownerKeys = []string{"project_id", "non_project_id"}

// ownedBy lets the owner keys pass the allow-list; ownerFromInput does the work
func ownedBy[T any](rules fieldRules[T]) fieldRules[T] {
	for _, key := range ownerKeys {
		rules[key] = func(*T, interface{}) error { return nil }
	}
	return rules
}

// ownerFromInput works out the new owner of a Task or Assignment from a request
// body. Naming one parent moves the record there and clears the other; naming
// both is rejected. Blank values clear the named parent only.
func ownerFromInput(input map[string]interface{}, current models.Owner) (models.Owner, error) {
	projectValue, hasProject := input["project_id"]
	nonProjectValue, hasNonProject := input["non_project_id"]
	if !hasProject && !hasNonProject {
		return current, nil
	}

	parse := func(key string, v interface{}) (*uint, error) {
		if utils.IsBlank(v) {
			return nil, nil
		}
		id, err := utils.ToID(v)
		if err != nil {
			return nil, errors.NotValidf("field %q (%v)", key, err)
		}
		return &id, nil
	}
	projectID, err := parse("project_id", projectValue)
	if err != nil {
		return current, err
	}
	nonProjectID, err := parse("non_project_id", nonProjectValue)
	if err != nil {
		return current, err
	}

	switch {
	case projectID != nil && nonProjectID != nil:
		return current, errors.NotValidf(
			"owner (both project_id %d and non_project_id %d given)", *projectID, *nonProjectID)
	case projectID != nil:
		return models.ProjectOwner(*projectID), nil
	case nonProjectID != nil:
		return models.NonProjectOwner(*nonProjectID), nil
	}

	if hasProject && current.Kind == models.OwnerProject ||
		hasNonProject && current.Kind == models.OwnerNonProject {
		return models.Unassigned(), nil
	}
	return current, nil
}

// checkOwner makes sure the referenced parent exists
func checkOwner(ctx context.Context, repos *repositories.Repositories, owner models.Owner) error {
	var (
		exists bool
		err    error
		key    string
	)
	switch owner.Kind {
	case models.OwnerProject:
		key = "project_id"
		exists, err = repos.Projects.Exists(ctx, owner.ID)
	case models.OwnerNonProject:
		key = "non_project_id"
		exists, err = repos.NonProjects.Exists(ctx, owner.ID)
	default:
		return nil
	}
	if err != nil {
		return unavailable(err)
	}
	if !exists {
		return errors.NotValidf("%s %d (no such record)", key, owner.ID)
	}
	return nil
}
