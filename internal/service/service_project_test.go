package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectIDs(projects []models.Project) []string {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestProjectService_ListVisible(t *testing.T) {
	f := newFixture()
	f.addUser("admin", "alice", true)
	f.addUser("bob", "bob", false)
	f.addProject("a", "admin", nil)
	f.addProject("b", "admin", nil, "bob")
	f.addProject("c", "bob", nil)
	svc := f.projectService()
	ctx := context.Background()

	all, err := svc.ListVisible(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, projectIDs(all))

	shared, err := svc.ListVisible(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, projectIDs(shared))

	_, err = svc.ListVisible(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestProjectService_Create(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addUser("u1", "bob", false)
	f.addProject("root", "u0", nil)
	svc := f.projectService()

	project, err := svc.Create(context.Background(), models.ProjectCreate{
		Name:     "  Website ",
		OwnerID:  "u0",
		UserIDs:  []string{"u1", "u0", "u1"},
		ParentID: ptr("root"),
		DataPath: "/srv/site",
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", project.ID)
	assert.Equal(t, "Website", project.Name)
	assert.Equal(t, []string{"u0", "u1"}, project.UserIDs)
	assert.Equal(t, "root", project.ParentIDValue())
	assert.Equal(t, "/srv/site", project.DataPath)
	assert.Equal(t, fixedNow, project.CreatedAt)
	assert.Equal(t, fixedNow, project.UpdatedAt)
	assert.Len(t, f.backend.doc.Projects, 2)
}

func TestProjectService_Create_InvalidReferences(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	svc := f.projectService()
	ctx := context.Background()

	tests := []struct {
		name    string
		create  models.ProjectCreate
		wantErr error
	}{
		{name: "unknown owner", create: models.ProjectCreate{Name: "x", OwnerID: "ghost"}, wantErr: ErrInvalidOwner},
		{name: "unknown user", create: models.ProjectCreate{Name: "x", OwnerID: "u0", UserIDs: []string{"ghost"}}, wantErr: ErrInvalidUser},
		{name: "unknown parent", create: models.ProjectCreate{Name: "x", OwnerID: "u0", ParentID: ptr("ghost")}, wantErr: ErrInvalidParent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.create)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, f.backend.doc.Projects)
}

func TestProjectService_Update(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addUser("u1", "bob", false)
	f.addProject("a", "u0", nil)
	f.addProject("b", "u0", ptr("a"))
	f.addProject("c", "u0", nil)
	svc := f.projectService()
	ctx := context.Background()

	updated, err := svc.Update(ctx, "c", models.ProjectUpdate{
		Name:     ptr("Renamed"),
		UserIDs:  &[]string{"u1"},
		ParentID: models.NewNullableString(ptr("b")),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, []string{"u0", "u1"}, updated.UserIDs, "owner is always retained")
	assert.Equal(t, "b", updated.ParentIDValue())
	assert.Equal(t, []string{"a", "b", "c"}, projectIDs(f.backend.doc.Projects), "update keeps the slot")

	updated, err = svc.Update(ctx, "c", models.ProjectUpdate{ParentID: models.NewNullableString(nil)})
	require.NoError(t, err)
	assert.Nil(t, updated.ParentID)
	assert.Equal(t, "Renamed", updated.Name, "absent fields are untouched")
}

func TestProjectService_Update_Errors(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addProject("a", "u0", nil)
	f.addProject("b", "u0", ptr("a"))
	svc := f.projectService()
	ctx := context.Background()

	_, err := svc.Update(ctx, "a", models.ProjectUpdate{ParentID: models.NewNullableString(ptr("b"))})
	require.ErrorIs(t, err, ErrProjectCycle)

	_, err = svc.Update(ctx, "a", models.ProjectUpdate{ParentID: models.NewNullableString(ptr("a"))})
	require.ErrorIs(t, err, ErrProjectCycle)

	_, err = svc.Update(ctx, "a", models.ProjectUpdate{ParentID: models.NewNullableString(ptr("ghost"))})
	require.ErrorIs(t, err, ErrInvalidParent)

	_, err = svc.Update(ctx, "ghost", models.ProjectUpdate{Name: ptr("x")})
	require.ErrorIs(t, err, ErrProjectNotFound)

	assert.Nil(t, f.backend.doc.Projects[0].ParentID)
}

func TestProjectService_Delete_DoesNotCascade(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addProject("a", "u0", nil)
	f.addProject("b", "u0", ptr("a"))
	f.addTodo(models.Todo{ID: "t1", ProjectID: "a"})
	svc := f.projectService()

	require.NoError(t, svc.Delete(context.Background(), "a"))
	require.ErrorIs(t, svc.Delete(context.Background(), "a"), ErrProjectNotFound)

	assert.Equal(t, []string{"b"}, projectIDs(f.backend.doc.Projects))
	assert.Len(t, f.backend.doc.Todos, 1)
}

func TestProjectService_Move(t *testing.T) {
	later := fixedNow
	tests := []struct {
		name       string
		id         string
		move       models.MoveRequest
		wantOrder  []string
		wantParent map[string]string
		wantErr    error
	}{
		{
			name:       "nest under a root",
			id:         "c",
			move:       models.MoveRequest{TargetID: "a", Mode: models.MoveNest},
			wantOrder:  []string{"a", "b", "c"},
			wantParent: map[string]string{"b": "a", "c": "a"},
		},
		{
			name:       "reorder roots takes the target slot",
			id:         "a",
			move:       models.MoveRequest{TargetID: "c", Mode: models.MoveReorder},
			wantOrder:  []string{"c", "b", "a"},
			wantParent: map[string]string{"b": "a"},
		},
		{
			name:       "reorder across groups nests",
			id:         "c",
			move:       models.MoveRequest{TargetID: "b", Mode: models.MoveReorder},
			wantOrder:  []string{"a", "b", "c"},
			wantParent: map[string]string{"b": "a", "c": "b"},
		},
		{
			name:    "nest below own descendant",
			id:      "a",
			move:    models.MoveRequest{TargetID: "b", Mode: models.MoveNest},
			wantErr: ErrProjectCycle,
		},
		{
			name:    "unknown source",
			id:      "ghost",
			move:    models.MoveRequest{TargetID: "a", Mode: models.MoveNest},
			wantErr: ErrProjectNotFound,
		},
		{
			name:       "unknown target is a no-op",
			id:         "a",
			move:       models.MoveRequest{TargetID: "ghost", Mode: models.MoveNest},
			wantOrder:  []string{"a", "b", "c"},
			wantParent: map[string]string{"b": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.addUser("u0", "alice", true)
			f.addProject("a", "u0", nil)
			f.addProject("b", "u0", ptr("a"))
			f.addProject("c", "u0", nil)
			for i := range f.backend.doc.Projects {
				f.backend.doc.Projects[i].UpdatedAt = later.Add(-1)
			}

			projects, err := f.projectService().Move(context.Background(), tt.id, tt.move)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, []string{"a", "b", "c"}, projectIDs(f.backend.doc.Projects))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, projectIDs(projects))
			assert.Equal(t, tt.wantOrder, projectIDs(f.backend.doc.Projects))
			for _, p := range projects {
				assert.Equal(t, tt.wantParent[p.ID], p.ParentIDValue(), p.ID)
			}
		})
	}
}

func TestProjectService_Move_TouchesSource(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addProject("a", "u0", nil)
	f.addProject("c", "u0", nil)
	f.backend.doc.Projects[0].UpdatedAt = fixedNow.Add(-1)
	f.backend.doc.Projects[1].UpdatedAt = fixedNow.Add(-1)

	projects, err := f.projectService().Move(context.Background(), "c", models.MoveRequest{TargetID: "a", Mode: models.MoveNest})

	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(-1), projects[0].UpdatedAt)
	assert.Equal(t, fixedNow, projects[1].UpdatedAt)
}

func TestProjectService_Share(t *testing.T) {
	f := newFixture()
	f.addUser("u0", "alice", true)
	f.addUser("u1", "bob", false)
	f.addProject("a", "u0", nil)
	svc := f.projectService()
	ctx := context.Background()

	project, err := svc.Share(ctx, "a", models.ShareRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u0", "u1"}, project.UserIDs)

	project, err = svc.Share(ctx, "a", models.ShareRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u0"}, project.UserIDs)

	_, err = svc.Share(ctx, "a", models.ShareRequest{UserID: "u0"})
	require.ErrorIs(t, err, ErrOwnerAccess)

	_, err = svc.Share(ctx, "a", models.ShareRequest{UserID: "ghost"})
	require.ErrorIs(t, err, ErrInvalidUser)

	_, err = svc.Share(ctx, "ghost", models.ShareRequest{UserID: "u1"})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_BackendError(t *testing.T) {
	f := newFixture()
	f.backend.loadErr = errBackend
	svc := f.projectService()

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, errBackend)

	_, err = svc.Move(context.Background(), "a", models.MoveRequest{TargetID: "b", Mode: models.MoveNest})
	require.ErrorIs(t, err, errBackend)
}
