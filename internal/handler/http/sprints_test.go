package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiletrack/sprint-roi/internal/service"
	"github.com/agiletrack/sprint-roi/internal/store"
	"github.com/agiletrack/sprint-roi/models"
)

func TestListSprintsPassesProjectFilter(t *testing.T) {
	sprints := &mockSprintService{
		listFn: func(_ context.Context, q models.ListQuery) ([]models.Sprint, int64, error) {
			require.Equal(t, "7", q.Filter("project"))
			return []models.Sprint{}, 0, nil
		},
	}
	router := newTestHandler(&service.Services{SprintService: sprints}).Init()

	rec := doAuthed(router, http.MethodGet, "/api/sprints/?project=7", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListSprintsNonNumericProjectFilter(t *testing.T) {
	router := newTestHandler(nil).Init()

	rec := doAuthed(router, http.MethodGet, "/api/sprints/?project=abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"project":["Enter a number."]}`, rec.Body.String())
}

func TestCreateSprintValidationErrors(t *testing.T) {
	sprints := &mockSprintService{
		createFn: func(_ context.Context, _ models.SprintUpdate) (models.Sprint, error) {
			return models.Sprint{}, models.NewFieldError("end_date", "End date must be after or equal to start date.")
		},
	}
	router := newTestHandler(&service.Services{SprintService: sprints}).Init()

	body := `{"project":1,"start_date":"2026-03-15","end_date":"2026-03-01"}`
	rec := doAuthed(router, http.MethodPost, "/api/sprints/", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"end_date":["End date must be after or equal to start date."]}`, rec.Body.String())
}

func TestCreateSprint(t *testing.T) {
	sprints := &mockSprintService{
		createFn: func(_ context.Context, upd models.SprintUpdate) (models.Sprint, error) {
			require.NotNil(t, upd.ProjectID)
			require.NotNil(t, upd.StartDate)
			require.NotNil(t, upd.EndDate)
			return models.Sprint{
				ID:          3,
				ProjectID:   *upd.ProjectID,
				ProjectName: "Apollo",
				StartDate:   *upd.StartDate,
				EndDate:     *upd.EndDate,
			}, nil
		},
	}
	router := newTestHandler(&service.Services{SprintService: sprints}).Init()

	body := `{"project":1,"start_date":"2026-03-01","end_date":"2026-03-15"}`
	rec := doAuthed(router, http.MethodPost, "/api/sprints/", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Apollo", created["project_name"])
	assert.Equal(t, "2026-03-01", created["start_date"])
	// no metric attached yet
	assert.Nil(t, created["metrics"])
}

func TestGetSprintNotFound(t *testing.T) {
	sprints := &mockSprintService{
		getFn: func(_ context.Context, _ int64) (models.Sprint, error) {
			return models.Sprint{}, store.ErrSprintNotFound
		},
	}
	router := newTestHandler(&service.Services{SprintService: sprints}).Init()

	rec := doAuthed(router, http.MethodGet, "/api/sprints/404/", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())
}

func TestListProjectSprintsBareArray(t *testing.T) {
	sprints := &mockSprintService{
		listByProjectFn: func(_ context.Context, projectID int64) ([]models.Sprint, error) {
			require.Equal(t, int64(7), projectID)
			return []models.Sprint{{ID: 1, ProjectID: 7, ProjectName: "Apollo"}}, nil
		},
	}
	router := newTestHandler(&service.Services{SprintService: sprints}).Init()

	rec := doAuthed(router, http.MethodGet, "/api/projects/7/sprints/", "")

	require.Equal(t, http.StatusOK, rec.Code)

	// a bare array, not the paginated envelope
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Apollo", list[0]["project_name"])
}

func TestListProjectSprintsEmptyIsArray(t *testing.T) {
	sprints := &mockSprintService{
		listByProjectFn: func(_ context.Context, _ int64) ([]models.Sprint, error) {
			return nil, nil
		},
	}
	router := newTestHandler(&service.Services{SprintService: sprints}).Init()

	rec := doAuthed(router, http.MethodGet, "/api/projects/7/sprints/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListProjectSprintsProjectMissing(t *testing.T) {
	sprints := &mockSprintService{
		listByProjectFn: func(_ context.Context, _ int64) ([]models.Sprint, error) {
			return nil, store.ErrProjectNotFound
		},
	}
	router := newTestHandler(&service.Services{SprintService: sprints}).Init()

	rec := doAuthed(router, http.MethodGet, "/api/projects/404/sprints/", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String())
}

func TestDeleteSprintNotFound(t *testing.T) {
	sprints := &mockSprintService{
		deleteFn: func(_ context.Context, _ int64) error {
			return store.ErrSprintNotFound
		},
	}
	router := newTestHandler(&service.Services{SprintService: sprints}).Init()

	rec := doAuthed(router, http.MethodDelete, "/api/sprints/404/", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}
