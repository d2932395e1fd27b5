package repositories_test

import (
	"context"
	"testing"

	"github.com/monitoring-dashboard/database/databasetest"
	"github.com/monitoring-dashboard/models"
	"github.com/monitoring-dashboard/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	repos      *repositories.Repositories
	project    models.Project
	other      models.Project
	nonProject models.NonProject
	person     models.ManPower
}

func setup(t *testing.T) fixture {
	ctx := context.Background()
	repos := repositories.New(databasetest.New(t))

	project, err := repos.Projects.Create(ctx, models.Project{
		Name: "Refinery upgrade", Status: models.StatusInProgress, Priority: models.PriorityHigh,
		StartDate: "2024-01-01", EndDate: "2024-12-31", Budget: 1000,
	})
	require.NoError(t, err)
	other, err := repos.Projects.Create(ctx, models.Project{
		Name: "Pipeline audit", Status: models.StatusOnTrack, Priority: models.PriorityLow,
		StartDate: "2024-01-01", EndDate: "2024-03-31", Budget: 500,
	})
	require.NoError(t, err)
	nonProject, err := repos.NonProjects.Create(ctx, models.NonProject{
		Name: "Safety training", Category: models.CategoryTraining, Status: models.StatusNotStarted,
		StartDate: "2024-02-01", EndDate: "2024-02-02", Budget: 50,
	})
	require.NoError(t, err)
	person, err := repos.ManPower.Create(ctx, models.ManPower{
		Name: "Rina", Position: "Engineer", Department: "Operations", Availability: 100, TotalHours: 40,
	})
	require.NoError(t, err)

	return fixture{repos: repos, project: project, other: other, nonProject: nonProject, person: person}
}

func (f fixture) addTask(t *testing.T, owner models.Owner, name string) models.Task {
	task := models.Task{
		Name: name, PIC: "Rina", DueDate: "2024-06-01", Status: models.StatusNotStarted,
		ActionPlan: "plan", Priority: models.PriorityMedium,
	}
	task.SetOwner(owner)
	task, err := f.repos.Tasks.Create(context.Background(), task)
	require.NoError(t, err)
	return task
}

func (f fixture) addAssignment(t *testing.T, owner models.Owner, role string) models.Assignment {
	assignment := models.Assignment{
		ManPowerID: f.person.ID, Role: role, HoursPerWeek: 10, Status: models.AssignmentStatusActive,
	}
	assignment.SetOwner(owner)
	assignment, err := f.repos.Assignments.Create(context.Background(), assignment)
	require.NoError(t, err)
	return assignment
}

func TestProjectRoundTrip(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	lat, lng := -6.2, 106.8
	created, err := f.repos.Projects.Create(ctx, models.Project{
		Name: "Terminal", Description: "LNG terminal", Status: models.StatusDelayed,
		Priority: models.PriorityCritical, StartDate: "2024-05-01", EndDate: "2025-05-01",
		Budget: 42.5, ActualCost: 10, Location: "Bontang", Latitude: &lat, Longitude: &lng, Progress: 12.5,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := f.repos.Projects.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt, got.UpdatedAt = created.CreatedAt, created.UpdatedAt
	assert.Equal(t, created, got)
}

func TestFindByIDMissing(t *testing.T) {
	f := setup(t)

	_, err := f.repos.Projects.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProjectCascades(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		f.addTask(t, models.ProjectOwner(f.project.ID), name)
	}
	f.addAssignment(t, models.ProjectOwner(f.project.ID), "lead")
	f.addAssignment(t, models.ProjectOwner(f.project.ID), "reviewer")
	survivorTask := f.addTask(t, models.ProjectOwner(f.other.ID), "kept")
	survivorAssignment := f.addAssignment(t, models.NonProjectOwner(f.nonProject.ID), "trainer")

	require.NoError(t, f.repos.Projects.Delete(ctx, f.project.ID))

	pid := f.project.ID
	tasks, err := f.repos.Tasks.Find(ctx, repositories.TaskFilter{ProjectID: &pid})
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assignments, err := f.repos.Assignments.Find(ctx, repositories.AssignmentFilter{ProjectID: &pid})
	require.NoError(t, err)
	assert.Empty(t, assignments)

	_, err = f.repos.Tasks.FindByID(ctx, survivorTask.ID)
	assert.NoError(t, err)
	_, err = f.repos.Assignments.FindByID(ctx, survivorAssignment.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, f.repos.Projects.Delete(ctx, f.project.ID), gorm.ErrRecordNotFound)
}

func TestDeleteNonProjectCascades(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.addTask(t, models.NonProjectOwner(f.nonProject.ID), "prepare slides")
	f.addAssignment(t, models.NonProjectOwner(f.nonProject.ID), "trainer")

	require.NoError(t, f.repos.NonProjects.Delete(ctx, f.nonProject.ID))

	npid := f.nonProject.ID
	tasks, err := f.repos.Tasks.Find(ctx, repositories.TaskFilter{NonProjectID: &npid})
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assignments, err := f.repos.Assignments.Find(ctx, repositories.AssignmentFilter{NonProjectID: &npid})
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestDeleteManPowerCascades(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.addAssignment(t, models.ProjectOwner(f.project.ID), "lead")
	f.addAssignment(t, models.NonProjectOwner(f.nonProject.ID), "trainer")

	require.NoError(t, f.repos.ManPower.Delete(ctx, f.person.ID))

	mid := f.person.ID
	assignments, err := f.repos.Assignments.Find(ctx, repositories.AssignmentFilter{ManPowerID: &mid})
	require.NoError(t, err)
	assert.Empty(t, assignments)

	exists, err := f.repos.ManPower.Exists(ctx, f.person.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTaskFilterPrecedence(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	onProject := f.addTask(t, models.ProjectOwner(f.project.ID), "on project")
	f.addTask(t, models.NonProjectOwner(f.nonProject.ID), "on activity")
	f.addTask(t, models.Unassigned(), "loose")

	all, err := f.repos.Tasks.Find(ctx, repositories.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pid, npid := f.project.ID, f.nonProject.ID
	both, err := f.repos.Tasks.Find(ctx, repositories.TaskFilter{ProjectID: &pid, NonProjectID: &npid})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, onProject.ID, both[0].ID)

	missing := uint(424242)
	none, err := f.repos.Tasks.Find(ctx, repositories.TaskFilter{NonProjectID: &missing})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTransactionRollsBack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	err := f.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		if err := tx.Projects.Delete(ctx, f.project.ID); err != nil {
			return err
		}
		return tx.Projects.Delete(ctx, 9999)
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, err := f.repos.Projects.Exists(ctx, f.project.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestManPowerCount(t *testing.T) {
	f := setup(t)

	people, err := f.repos.ManPower.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), people)
}

func TestUpdateWritesZeroValues(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	project := f.project
	project.Budget = 0
	project.Description = ""
	project.Progress = 0
	project.Name = "Refinery upgrade phase 2"
	_, err := f.repos.Projects.Update(ctx, project)
	require.NoError(t, err)

	got, err := f.repos.Projects.FindByID(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Refinery upgrade phase 2", got.Name)
	assert.Zero(t, got.Budget)
	assert.True(t, f.project.CreatedAt.Equal(got.CreatedAt))
}

func TestUpdateDoesNotRecreateDeletedRows(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task := f.addTask(t, models.ProjectOwner(f.other.ID), "inspect")
	assignment := f.addAssignment(t, models.NonProjectOwner(f.nonProject.ID), "trainer")

	require.NoError(t, f.repos.Projects.Delete(ctx, f.project.ID))
	_, err := f.repos.Projects.Update(ctx, f.project)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	exists, err := f.repos.Projects.Exists(ctx, f.project.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, f.repos.NonProjects.Delete(ctx, f.nonProject.ID))
	_, err = f.repos.NonProjects.Update(ctx, f.nonProject)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = f.repos.Assignments.Update(ctx, assignment)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = f.repos.NonProjects.FindByID(ctx, f.nonProject.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, f.repos.Tasks.Delete(ctx, task.ID))
	_, err = f.repos.Tasks.Update(ctx, task)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, f.repos.ManPower.Delete(ctx, f.person.ID))
	_, err = f.repos.ManPower.Update(ctx, f.person)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	people, err := f.repos.ManPower.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, people)
}
