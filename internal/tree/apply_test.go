package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-project-hub/models"
)

func parentOf(t *testing.T, projects []models.Project, id string) string {
	t.Helper()
	for _, p := range projects {
		if p.ID == id {
			return p.ParentIDValue()
		}
	}
	t.Fatalf("project %s not found", id)
	return ""
}

func TestApply_Nest(t *testing.T) {
	projects := sample()

	out, changed, err := Apply(projects, Move{SourceID: "e", TargetID: "c", Mode: models.MoveNest})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "c", parentOf(t, out, "e"))

	// only the parent id of the source changes
	assert.Equal(t, ids(projects), ids(out))
	assert.Empty(t, parentOf(t, projects, "e"), "input must not be modified")
}

func TestApply_NestUnderDescendantIsCycle(t *testing.T) {
	_, changed, err := Apply(sample(), Move{SourceID: "a", TargetID: "d", Mode: models.MoveNest})
	assert.ErrorIs(t, err, ErrCycle)
	assert.False(t, changed)
}

func TestApply_NoOps(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{name: "no target", move: Move{SourceID: "b", Mode: models.MoveNest}},
		{name: "unknown target", move: Move{SourceID: "b", TargetID: "zzz", Mode: models.MoveNest}},
		{name: "onto itself", move: Move{SourceID: "b", TargetID: "b", Mode: models.MoveReorder}},
		{name: "nest under current parent", move: Move{SourceID: "b", TargetID: "a", Mode: models.MoveNest}},
		{name: "reorder into same slot", move: Move{SourceID: "b", TargetID: "c", Mode: models.MoveReorder, Position: models.PositionBefore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := sample()
			out, changed, err := Apply(projects, tt.move)
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, projects, out)
		})
	}
}

func TestApply_Errors(t *testing.T) {
	_, _, err := Apply(sample(), Move{SourceID: "missing", TargetID: "a", Mode: models.MoveNest})
	assert.ErrorIs(t, err, ErrSourceNotFound)

	_, _, err = Apply(sample(), Move{SourceID: "a", TargetID: "e", Mode: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestApply_ReorderOnlyTouchesSiblingSlots(t *testing.T) {
	// roots a, e, f are interleaved with children of a
	projects := []models.Project{
		project("a", ""),
		project("b", "a"),
		project("e", ""),
		project("c", "a"),
		project("f", ""),
	}

	out, changed, err := Apply(projects, Move{SourceID: "f", TargetID: "a", Mode: models.MoveReorder})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"f", "b", "a", "c", "e"}, ids(out))

	f := NewForest(out)
	assert.Equal(t, []string{"f", "a", "e"}, ids(f.Roots()))
	assert.Equal(t, []string{"b", "c"}, ids(f.Children("a")))
}

func TestApply_ReorderPositions(t *testing.T) {
	roots := func() []models.Project {
		return []models.Project{project("a", ""), project("b", ""), project("c", ""), project("d", "")}
	}

	tests := []struct {
		name   string
		source string
		target string
		pos    models.MovePosition
		want   []string
	}{
		{name: "slot forward", source: "a", target: "c", want: []string{"b", "c", "a", "d"}},
		{name: "slot backward", source: "d", target: "b", want: []string{"a", "d", "b", "c"}},
		{name: "before forward", source: "a", target: "c", pos: models.PositionBefore, want: []string{"b", "a", "c", "d"}},
		{name: "after forward", source: "a", target: "c", pos: models.PositionAfter, want: []string{"b", "c", "a", "d"}},
		{name: "before backward", source: "d", target: "b", pos: models.PositionBefore, want: []string{"a", "d", "b", "c"}},
		{name: "after backward", source: "d", target: "b", pos: models.PositionAfter, want: []string{"a", "b", "d", "c"}},
		{name: "after last", source: "a", target: "d", pos: models.PositionAfter, want: []string{"b", "c", "d", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed, err := Apply(roots(), Move{SourceID: tt.source, TargetID: tt.target, Mode: models.MoveReorder, Position: tt.pos})
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, tt.want, ids(out))
		})
	}
}

func TestApply_CrossLevelReorderNests(t *testing.T) {
	out, changed, err := Apply(sample(), Move{SourceID: "e", TargetID: "d", Mode: models.MoveReorder})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "d", parentOf(t, out, "e"))
}

func TestApply_NestKeepsOtherFields(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Name: "A", OwnerID: "u1", UserIDs: []string{"u1"}},
		{ID: "b", Name: "B", OwnerID: "u2", UserIDs: []string{"u2"}},
	}

	out, _, err := Apply(projects, Move{SourceID: "b", TargetID: "a", Mode: models.MoveNest})
	require.NoError(t, err)
	assert.Equal(t, "B", out[1].Name)
	assert.Equal(t, "u2", out[1].OwnerID)
	assert.Equal(t, []string{"u2"}, out[1].UserIDs)
}
