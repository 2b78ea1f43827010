package tree

import (
	"math"

	"github.com/MKhiriev/go-project-hub/models"
)

// Point is a pointer position, Rect the bounding box of a drop target.
// Both use the same units, pixels or terminal cells.
type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) centerY() float64 {
	return r.Y + r.Height/2
}

// Zone is the part of a drop target the pointer is in.
type Zone int

const (
	ZoneReorder Zone = iota
	ZoneNest
)

// ZoneClassifier decides which zone of target the pointer is in.
type ZoneClassifier interface {
	Classify(target Rect, p Point) Zone
}

// EdgeThreshold nests once the pointer is at least Offset away from the
// target's left edge.
type EdgeThreshold struct {
	Offset float64
}

func (e EdgeThreshold) Classify(target Rect, p Point) Zone {
	if p.X-target.X >= e.Offset {
		return ZoneNest
	}
	return ZoneReorder
}

// CenterThreshold nests when the pointer is within Ratio of the half height
// around the target's vertical center.
type CenterThreshold struct {
	Ratio float64
}

func (c CenterThreshold) Classify(target Rect, p Point) Zone {
	if math.Abs(p.Y-target.centerY()) <= c.Ratio*target.Height/2 {
		return ZoneNest
	}
	return ZoneReorder
}

// State of a drag gesture.
type State int

const (
	Idle State = iota
	Dragging
	Reparenting
	Reordering
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Reparenting:
		return "reparenting"
	case Reordering:
		return "reordering"
	default:
		return "idle"
	}
}

// Drag tracks one drag gesture over a forest:
//
//	Idle --Start--> Dragging --Over--> Reparenting | Reordering
//	Reparenting | Reordering --Leave--> Dragging
//	any --Drop | Cancel--> Idle
type Drag struct {
	forest     *Forest
	classifier ZoneClassifier

	state    State
	sourceID string
	targetID string
	position models.MovePosition
}

func NewDrag(forest *Forest, classifier ZoneClassifier) *Drag {
	return &Drag{forest: forest, classifier: classifier}
}

// Start picks up sourceID. Unknown projects are ignored.
func (d *Drag) Start(sourceID string) bool {
	if _, ok := d.forest.Project(sourceID); !ok {
		return false
	}
	d.state = Dragging
	d.sourceID = sourceID
	d.targetID = ""
	d.position = models.PositionSlot
	return true
}

// Over moves the pointer over targetID whose bounding box is rect.
func (d *Drag) Over(targetID string, rect Rect, p Point) State {
	if d.state == Idle {
		return d.state
	}
	if _, ok := d.forest.Project(targetID); !ok || targetID == d.sourceID {
		d.Leave()
		return d.state
	}

	d.targetID = targetID
	if !d.forest.AreSiblings(d.sourceID, targetID) || d.classifier.Classify(rect, p) == ZoneNest {
		d.state = Reparenting
		d.position = models.PositionSlot
		return d.state
	}

	d.state = Reordering
	if p.Y < rect.centerY() {
		d.position = models.PositionBefore
	} else {
		d.position = models.PositionAfter
	}
	return d.state
}

// Leave drops the current target; the gesture keeps going.
func (d *Drag) Leave() {
	if d.state == Idle {
		return
	}
	d.state = Dragging
	d.targetID = ""
	d.position = models.PositionSlot
}

// Drop ends the gesture. It returns false when there was no target.
func (d *Drag) Drop() (Move, bool) {
	defer d.Cancel()

	switch d.state {
	case Reparenting:
		return Move{SourceID: d.sourceID, TargetID: d.targetID, Mode: models.MoveNest}, true
	case Reordering:
		return Move{SourceID: d.sourceID, TargetID: d.targetID, Mode: models.MoveReorder, Position: d.position}, true
	default:
		return Move{}, false
	}
}

func (d *Drag) Cancel() {
	d.state = Idle
	d.sourceID = ""
	d.targetID = ""
	d.position = models.PositionSlot
}

func (d *Drag) State() State { return d.state }
func (d *Drag) SourceID() string { return d.sourceID }
func (d *Drag) TargetID() string { return d.targetID }
func (d *Drag) Position() models.MovePosition { return d.position }
