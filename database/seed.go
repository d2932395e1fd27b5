package database

import (
	_ "embed"
	"fmt"

	"github.com/monitoring-dashboard/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var sampleData []byte

type seedManPower struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Position   string `yaml:"position"`
	Department string `yaml:"department"`
	Skills     string `yaml:"skills"`
	TotalHours int    `yaml:"total_hours"`
}

type seedProject struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	Priority    string   `yaml:"priority"`
	StartDate   string   `yaml:"start_date"`
	EndDate     string   `yaml:"end_date"`
	Budget      float64  `yaml:"budget"`
	ActualCost  float64  `yaml:"actual_cost"`
	Location    string   `yaml:"location"`
	Latitude    *float64 `yaml:"latitude"`
	Longitude   *float64 `yaml:"longitude"`
	Progress    float64  `yaml:"progress"`
}

type seedNonProject struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Status      string  `yaml:"status"`
	StartDate   string  `yaml:"start_date"`
	EndDate     string  `yaml:"end_date"`
	Budget      float64 `yaml:"budget"`
	ActualCost  float64 `yaml:"actual_cost"`
	Progress    float64 `yaml:"progress"`
}

// Tasks and assignments reference their parents by name
type seedTask struct {
	Project     string  `yaml:"project"`
	NonProject  string  `yaml:"non_project"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	PIC         string  `yaml:"pic"`
	DueDate     string  `yaml:"due_date"`
	Status      string  `yaml:"status"`
	ActionPlan  string  `yaml:"action_plan"`
	Priority    string  `yaml:"priority"`
	Progress    float64 `yaml:"progress"`
}

type seedAssignment struct {
	Person       string `yaml:"person"`
	Project      string `yaml:"project"`
	NonProject   string `yaml:"non_project"`
	Role         string `yaml:"role"`
	HoursPerWeek int    `yaml:"hours_per_week"`
}

type seedFile struct {
	ManPower    []seedManPower   `yaml:"manpower"`
	Projects    []seedProject    `yaml:"projects"`
	NonProjects []seedNonProject `yaml:"non_projects"`
	Tasks       []seedTask       `yaml:"tasks"`
	Assignments []seedAssignment `yaml:"assignments"`
}

// SeedIfEmpty loads the bundled sample data when the database has no projects yet.
// It reports whether anything was inserted.
func SeedIfEmpty(db *gorm.DB, log *zap.Logger) (bool, error) {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		log.Info("database already has projects, skipping sample data", zap.Int64("projects", count))
		return false, nil
	}

	var data seedFile
	if err := yaml.Unmarshal(sampleData, &data); err != nil {
		return false, fmt.Errorf("failed to decode sample data: %w", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error { return insertSeed(tx, data) }); err != nil {
		return false, err
	}
	log.Info("sample data added",
		zap.Int("projects", len(data.Projects)),
		zap.Int("non_projects", len(data.NonProjects)),
		zap.Int("manpower", len(data.ManPower)),
		zap.Int("tasks", len(data.Tasks)),
		zap.Int("assignments", len(data.Assignments)))
	return true, nil
}

func insertSeed(tx *gorm.DB, data seedFile) error {
	people := make(map[string]uint)
	for _, p := range data.ManPower {
		row := models.ManPower{
			Name:         p.Name,
			Email:        p.Email,
			Position:     p.Position,
			Department:   p.Department,
			Skills:       p.Skills,
			Availability: 100,
			TotalHours:   p.TotalHours,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed manpower %q: %w", p.Name, err)
		}
		people[p.Name] = row.ID
	}

	projects := make(map[string]uint)
	for _, p := range data.Projects {
		row := models.Project{
			Name:        p.Name,
			Description: p.Description,
			Status:      p.Status,
			Priority:    p.Priority,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			Budget:      p.Budget,
			ActualCost:  p.ActualCost,
			Location:    p.Location,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			Progress:    p.Progress,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed project %q: %w", p.Name, err)
		}
		projects[p.Name] = row.ID
	}

	nonProjects := make(map[string]uint)
	for _, np := range data.NonProjects {
		row := models.NonProject{
			Name:        np.Name,
			Category:    np.Category,
			Description: np.Description,
			Status:      np.Status,
			StartDate:   np.StartDate,
			EndDate:     np.EndDate,
			Budget:      np.Budget,
			ActualCost:  np.ActualCost,
			Progress:    np.Progress,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed non-project %q: %w", np.Name, err)
		}
		nonProjects[np.Name] = row.ID
	}

	resolve := func(project, nonProject string) (models.Owner, error) {
		switch {
		case project != "":
			id, ok := projects[project]
			if !ok {
				return models.Owner{}, fmt.Errorf("unknown sample project %q", project)
			}
			return models.ProjectOwner(id), nil
		case nonProject != "":
			id, ok := nonProjects[nonProject]
			if !ok {
				return models.Owner{}, fmt.Errorf("unknown sample non-project %q", nonProject)
			}
			return models.NonProjectOwner(id), nil
		}
		return models.Unassigned(), nil
	}

	for _, t := range data.Tasks {
		owner, err := resolve(t.Project, t.NonProject)
		if err != nil {
			return err
		}
		row := models.Task{
			Name:        t.Name,
			Description: t.Description,
			PIC:         t.PIC,
			DueDate:     t.DueDate,
			Status:      t.Status,
			ActionPlan:  t.ActionPlan,
			Priority:    t.Priority,
			Progress:    t.Progress,
		}
		row.SetOwner(owner)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed task %q: %w", t.Name, err)
		}
	}

	for _, a := range data.Assignments {
		owner, err := resolve(a.Project, a.NonProject)
		if err != nil {
			return err
		}
		personID, ok := people[a.Person]
		if !ok {
			return fmt.Errorf("unknown sample person %q", a.Person)
		}
		row := models.Assignment{
			ManPowerID:   personID,
			Role:         a.Role,
			HoursPerWeek: a.HoursPerWeek,
			Status:       models.AssignmentStatusActive,
		}
		row.SetOwner(owner)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed assignment %q: %w", a.Role, err)
		}
	}
	return nil
}
