package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-project-hub/models"
)

var row = Rect{X: 0, Y: 10, Width: 40, Height: 10}

func TestEdgeThreshold(t *testing.T) {
	c := EdgeThreshold{Offset: 4}

	assert.Equal(t, ZoneReorder, c.Classify(row, Point{X: 3, Y: 15}))
	assert.Equal(t, ZoneNest, c.Classify(row, Point{X: 4, Y: 15}))
	assert.Equal(t, ZoneNest, c.Classify(row, Point{X: 30, Y: 11}))
}

func TestCenterThreshold(t *testing.T) {
	c := CenterThreshold{Ratio: 0.5}

	assert.Equal(t, ZoneNest, c.Classify(row, Point{X: 1, Y: 15}))
	assert.Equal(t, ZoneNest, c.Classify(row, Point{X: 1, Y: 12.5}))
	assert.Equal(t, ZoneReorder, c.Classify(row, Point{X: 1, Y: 11}))
	assert.Equal(t, ZoneReorder, c.Classify(row, Point{X: 1, Y: 19}))
}

func TestRectContains(t *testing.T) {
	assert.True(t, row.Contains(Point{X: 0, Y: 10}))
	assert.False(t, row.Contains(Point{X: 40, Y: 10}))
	assert.False(t, row.Contains(Point{X: 5, Y: 20}))
}

func TestDrag_Reorder(t *testing.T) {
	d := NewDrag(NewForest(sample()), EdgeThreshold{Offset: 4})

	require.True(t, d.Start("b"))
	assert.Equal(t, Dragging, d.State())

	assert.Equal(t, Reordering, d.Over("c", row, Point{X: 1, Y: 18}))
	assert.Equal(t, models.PositionAfter, d.Position())

	assert.Equal(t, Reordering, d.Over("c", row, Point{X: 1, Y: 11}))
	assert.Equal(t, models.PositionBefore, d.Position())

	move, ok := d.Drop()
	require.True(t, ok)
	assert.Equal(t, Move{SourceID: "b", TargetID: "c", Mode: models.MoveReorder, Position: models.PositionBefore}, move)
	assert.Equal(t, Idle, d.State())
}

func TestDrag_Nest(t *testing.T) {
	d := NewDrag(NewForest(sample()), EdgeThreshold{Offset: 4})

	d.Start("b")
	assert.Equal(t, Reparenting, d.Over("c", row, Point{X: 10, Y: 15}))

	move, ok := d.Drop()
	require.True(t, ok)
	assert.Equal(t, Move{SourceID: "b", TargetID: "c", Mode: models.MoveNest}, move)
}

func TestDrag_CrossLevelTargetAlwaysNests(t *testing.T) {
	d := NewDrag(NewForest(sample()), EdgeThreshold{Offset: 4})

	d.Start("e")
	assert.Equal(t, Reparenting, d.Over("d", row, Point{X: 0, Y: 11}))
	assert.Equal(t, "d", d.TargetID())
}

func TestDrag_LeaveAndDropWithoutTarget(t *testing.T) {
	d := NewDrag(NewForest(sample()), EdgeThreshold{Offset: 4})

	d.Start("b")
	d.Over("c", row, Point{X: 10, Y: 15})
	d.Leave()
	assert.Equal(t, Dragging, d.State())
	assert.Empty(t, d.TargetID())

	_, ok := d.Drop()
	assert.False(t, ok)
	assert.Equal(t, Idle, d.State())
	assert.Empty(t, d.SourceID())
}

func TestDrag_OverSelfOrUnknown(t *testing.T) {
	d := NewDrag(NewForest(sample()), EdgeThreshold{Offset: 4})

	d.Start("b")
	assert.Equal(t, Dragging, d.Over("b", row, Point{X: 10, Y: 15}))
	assert.Equal(t, Dragging, d.Over("nope", row, Point{X: 10, Y: 15}))
}

func TestDrag_IdleIgnoresEvents(t *testing.T) {
	d := NewDrag(NewForest(sample()), EdgeThreshold{Offset: 4})

	assert.Equal(t, Idle, d.Over("c", row, Point{X: 10, Y: 15}))
	d.Leave()
	assert.Equal(t, Idle, d.State())
	assert.False(t, d.Start("missing"))
	assert.Equal(t, Idle, d.State())
}

func TestDrag_Cancel(t *testing.T) {
	d := NewDrag(NewForest(sample()), CenterThreshold{Ratio: 0.5})

	d.Start("b")
	d.Over("c", row, Point{X: 0, Y: 15})
	d.Cancel()

	assert.Equal(t, Idle, d.State())
	_, ok := d.Drop()
	assert.False(t, ok)
}

func TestDrag_DropFeedsApply(t *testing.T) {
	projects := sample()
	d := NewDrag(NewForest(projects), EdgeThreshold{Offset: 4})

	d.Start("e")
	d.Over("a", row, Point{X: 0, Y: 11})
	move, ok := d.Drop()
	require.True(t, ok)

	out, changed, err := Apply(projects, move)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"e", "a"}, ids(NewForest(out).Roots()))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "reparenting", Reparenting.String())
	assert.Equal(t, "reordering", Reordering.String())
}
