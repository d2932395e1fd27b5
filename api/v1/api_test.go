package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/database/databasetest"
	"github.com/monitoring-dashboard/dto"
	"github.com/monitoring-dashboard/models"
	"github.com/monitoring-dashboard/repositories"
	"github.com/monitoring-dashboard/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	router, _ := newTestRouterWithDB(t)
	return router
}

func newTestRouterWithDB(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := databasetest.New(t)
	svc := services.New(repositories.New(db), nil, zap.NewNop())

	router := gin.New()
	RegisterRoutes(router.Group("/api"), svc, db, zap.NewNop())
	return router, db
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createProject(t *testing.T, r *gin.Engine, body map[string]interface{}) models.Project {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/projects", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Project](t, w)
}

func projectBody(name, priority, status string) map[string]interface{} {
	return map[string]interface{}{
		"name": name, "priority": priority, "status": status,
		"start_date": "2024-01-01", "end_date": "2024-12-31", "budget": 100, "actual_cost": 60,
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["database"])
}

func TestProjectSCurveEndpoint(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, map[string]interface{}{
		"name": "Refinery", "start_date": "2024-01-01", "end_date": "2024-12-31",
		"budget": 500000000, "actual_cost": 250000000, "priority": "High", "progress": 50,
	})

	w := do(t, r, http.MethodGet, fmt.Sprintf("/api/projects/%d/s-curve", p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	curve := decode[dto.SCurve](t, w)

	assert.Equal(t, services.MonthLabels, curve.Labels)
	assert.Equal(t, 8.3, curve.Planned[0])
	assert.Equal(t, 6.6, curve.Actual[0])
	assert.Equal(t, 100.0, curve.Planned[11])
	assert.Equal(t, 45.0, curve.Actual[11])
}

func TestSummaryEndpoint(t *testing.T) {
	r := newTestRouter(t)
	createProject(t, r, projectBody("a", "High", "In Progress"))
	createProject(t, r, projectBody("b", "Critical", "On Track"))
	createProject(t, r, projectBody("c", "Low", "In Progress"))
	createProject(t, r, projectBody("d", "Medium", "Delayed"))
	createProject(t, r, projectBody("e", "Low", "In Progress"))

	w := do(t, r, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[dto.SummaryResponse](t, w)

	assert.Equal(t, int64(5), summary.TotalProjects)
	assert.Equal(t, map[string]int{"High": 1, "Critical": 1, "Low": 2, "Medium": 1}, summary.PriorityDistribution)
	assert.Equal(t, map[string]int{"In Progress": 3, "On Track": 1, "Delayed": 1}, summary.StatusDistribution)
	assert.Equal(t, summary.TotalBudget-summary.TotalActual, summary.BudgetVariance)
	assert.Len(t, summary.PriorityProjects, 2)
	assert.NotNil(t, summary.Locations)
	assert.Equal(t, []float64{10, 25, 45, 65, 80, 90, 95, 97, 98, 99, 100, 100}, summary.OverallSCurve.Planned)
}

func TestUpdateIsIdempotent(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, projectBody("a", "High", "In Progress"))
	path := fmt.Sprintf("/api/projects/%d", p.ID)
	update := map[string]interface{}{"progress": "40", "budget": "150"}

	first := do(t, r, http.MethodPut, path, update)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	second := do(t, r, http.MethodPut, path, update)
	require.Equal(t, http.StatusOK, second.Code)

	a, b := decode[models.Project](t, first), decode[models.Project](t, second)
	assert.Equal(t, a.Progress, b.Progress)
	assert.Equal(t, 150.0, b.Budget)
	assert.Equal(t, "a", b.Name)
}

func TestUnknownFieldRejected(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, projectBody("a", "High", "In Progress"))

	w := do(t, r, http.MethodPut, fmt.Sprintf("/api/projects/%d", p.ID), map[string]interface{}{"colour": "red"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["error"], "colour")
}

func TestDeleteProjectCascadesOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, projectBody("a", "High", "In Progress"))

	w := do(t, r, http.MethodPost, "/api/manpower", map[string]interface{}{
		"name": "Rina", "position": "Engineer", "department": "Ops",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	person := decode[models.ManPower](t, w)

	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodPost, "/api/tasks", map[string]interface{}{
			"name": "inspect", "pic": "Rina", "due_date": "2024-05-01", "action_plan": "walk", "project_id": p.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/api/assignments", map[string]interface{}{
		"manpower_id": person.ID, "project_id": p.ID, "role": "Lead", "hours_per_week": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/projects/%d/tasks", p.ID), nil)
	assert.Len(t, decode[[]models.Task](t, w), 2)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/projects/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Project deleted successfully", decode[map[string]string](t, w)["message"])

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/tasks?project_id=%d", p.ID), nil)
	assert.Empty(t, decode[[]models.Task](t, w))
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/manpower/%d/assignments", person.ID), nil)
	assert.Empty(t, decode[[]models.Assignment](t, w))

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/projects/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFilteredTaskListEmpty(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/non-projects", map[string]interface{}{
		"name": "Meeting", "start_date": "2024-01-01", "end_date": "2024-01-02", "budget": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	np := decode[models.NonProject](t, w)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/tasks?non_project_id=%d", np.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/non-projects/%d/tasks", np.ID), nil)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestErrorStatuses(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method, path string
		body         interface{}
		want         int
	}{
		{http.MethodGet, "/api/projects/abc", nil, http.StatusBadRequest},
		{http.MethodGet, "/api/projects/0", nil, http.StatusBadRequest},
		{http.MethodGet, "/api/projects/99", nil, http.StatusNotFound},
		{http.MethodPut, "/api/tasks/99", map[string]interface{}{"name": "x"}, http.StatusNotFound},
		{http.MethodDelete, "/api/manpower/99", nil, http.StatusNotFound},
		{http.MethodGet, "/api/assignments/99", nil, http.StatusNotFound},
		{http.MethodPost, "/api/projects", map[string]interface{}{"name": "x"}, http.StatusBadRequest},
		{http.MethodPost, "/api/projects", []int{1, 2}, http.StatusBadRequest},
		{http.MethodGet, "/api/tasks?project_id=x", nil, http.StatusBadRequest},
		{http.MethodPost, "/api/assignments", map[string]interface{}{
			"manpower_id": 42, "role": "Lead", "hours_per_week": 10,
		}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestClosedStoreReturnsServiceUnavailable(t *testing.T) {
	r, db := newTestRouterWithDB(t)
	project := createProject(t, r, projectBody("Depot", models.PriorityHigh, models.StatusOnTrack))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	for _, path := range []string{
		"/api/summary",
		fmt.Sprintf("/api/projects/%d", project.ID),
		"/api/projects",
		"/api/health",
	} {
		t.Run(path, func(t *testing.T) {
			w := do(t, r, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())
		})
	}

	w := do(t, r, http.MethodPost, "/api/projects", projectBody("Yard", models.PriorityLow, models.StatusOnTrack))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "error", body["status"])
}

func TestAssignmentFilterPrecedence(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, projectBody("a", "High", "In Progress"))

	people := make([]models.ManPower, 2)
	for i := range people {
		w := do(t, r, http.MethodPost, "/api/manpower", map[string]interface{}{
			"name": fmt.Sprintf("p%d", i), "position": "Engineer", "department": "Ops",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		people[i] = decode[models.ManPower](t, w)
	}
	w := do(t, r, http.MethodPost, "/api/assignments", map[string]interface{}{
		"manpower_id": people[0].ID, "project_id": p.ID, "role": "Lead", "hours_per_week": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = do(t, r, http.MethodPost, "/api/assignments", map[string]interface{}{
		"manpower_id": people[1].ID, "role": "Support", "hours_per_week": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/assignments?manpower_id=%d&project_id=%d", people[1].ID, p.ID), nil)
	got := decode[[]models.Assignment](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "Support", got[0].Role)

	w = do(t, r, http.MethodGet, "/api/assignments", nil)
	assert.Len(t, decode[[]models.Assignment](t, w), 2)

	w = do(t, r, http.MethodGet, "/api/summary/workload", nil)
	require.Equal(t, http.StatusOK, w.Code)
	workload := decode[[]dto.WorkloadEntry](t, w)
	require.Len(t, workload, 2)
	assert.Equal(t, 20, workload[0].AssignedHours)
	assert.Equal(t, 50.0, workload[0].Utilization)
}
