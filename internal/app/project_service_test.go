package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/project-blog/internal/domain"
	"github.com/jsamuelsen/project-blog/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewProjectService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewProjectService(ProjectServiceConfig{Logger: discardLogger()})
	})
}

func TestNewProjectService_DefaultsLogger(t *testing.T) {
	svc := NewProjectService(ProjectServiceConfig{Store: mocks.NewMockProjectStore(t)})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
}

func TestProjectService_ListProjects(t *testing.T) {
	store := mocks.NewMockProjectStore(t)
	projects := []domain.Project{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
	}
	store.EXPECT().All(mock.Anything).Return(projects)

	svc := NewProjectService(ProjectServiceConfig{Store: store, Logger: discardLogger()})

	assert.Equal(t, projects, svc.ListProjects(context.Background()))
}

func TestProjectService_GetProject(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(*mocks.MockProjectStore)
		expected  *domain.Project
		wantErr   bool
	}{
		{
			name: "found",
			id:   "a",
			setupMock: func(m *mocks.MockProjectStore) {
				m.EXPECT().FindByID(mock.Anything, "a").
					Return(domain.Project{ID: "a", Title: "A", Tags: []string{"x"}}, true)
			},
			expected: &domain.Project{ID: "a", Title: "A", Tags: []string{"x"}},
		},
		{
			name: "missing",
			id:   "missing",
			setupMock: func(m *mocks.MockProjectStore) {
				m.EXPECT().FindByID(mock.Anything, "missing").Return(domain.Project{}, false)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockProjectStore(t)
			tt.setupMock(store)

			svc := NewProjectService(ProjectServiceConfig{Store: store, Logger: discardLogger()})

			project, err := svc.GetProject(context.Background(), tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, project)
				assert.True(t, domain.IsNotFound(err))

				var notFound *domain.NotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, tt.id, notFound.ID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, project)
		})
	}
}
