package service

import (
	"context"
	"testing"

	"github.com/agiletrack/sprint-roi/internal/logger"
	"github.com/agiletrack/sprint-roi/internal/validators"
	"github.com/agiletrack/sprint-roi/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProjectService(repo *mockProjectRepository) ProjectService {
	return NewProjectService(repo, validators.NewResourceValidator(), logger.Nop())
}

func TestProjectCreate_Success(t *testing.T) {
	repo := &mockProjectRepository{
		createFn: func(_ context.Context, project models.Project) (models.Project, error) {
			project.ID = 1
			return project, nil
		},
	}
	svc := newTestProjectService(repo)

	name := "Apollo"
	desc := "lunar program"
	created, err := svc.Create(context.Background(), models.ProjectUpdate{Name: &name, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "lunar program", created.Description)
}

func TestProjectCreate_MissingName(t *testing.T) {
	svc := newTestProjectService(&mockProjectRepository{})

	_, err := svc.Create(context.Background(), models.ProjectUpdate{})

	var fe models.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{validators.MsgRequired}, fe["name"])
}

func TestProjectReplace_ResetsOmittedDescription(t *testing.T) {
	var applied models.ProjectUpdate
	repo := &mockProjectRepository{
		updateFn: func(_ context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
			applied = upd
			return models.Project{ID: id}, nil
		},
	}
	svc := newTestProjectService(repo)

	name := "Apollo"
	_, err := svc.Replace(context.Background(), 5, models.ProjectUpdate{Name: &name})
	require.NoError(t, err)

	// full update writes the complete representation: omitted description
	// resets to empty rather than keeping the stored value
	require.NotNil(t, applied.Description)
	assert.Empty(t, *applied.Description)
}

func TestProjectUpdate_PartialKeepsOmittedFields(t *testing.T) {
	var applied models.ProjectUpdate
	repo := &mockProjectRepository{
		updateFn: func(_ context.Context, id int64, upd models.ProjectUpdate) (models.Project, error) {
			applied = upd
			return models.Project{ID: id}, nil
		},
	}
	svc := newTestProjectService(repo)

	desc := "updated"
	_, err := svc.Update(context.Background(), 5, models.ProjectUpdate{Description: &desc})
	require.NoError(t, err)
	assert.Nil(t, applied.Name)
	require.NotNil(t, applied.Description)
}

func TestProjectUpdate_BlankNameRejected(t *testing.T) {
	svc := newTestProjectService(&mockProjectRepository{})

	blank := ""
	_, err := svc.Update(context.Background(), 5, models.ProjectUpdate{Name: &blank})

	var fe models.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{validators.MsgBlank}, fe["name"])
}
