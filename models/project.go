package models

import "time"

// Project is a node of the project forest. ParentID forms the tree; a project
// whose parent is nil or missing is a root.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// OwnerID references the owning user. The owner is always part of UserIDs.
	OwnerID string `json:"ownerId"`

	// UserIDs is the set of users granted access to the project.
	UserIDs []string `json:"userIds"`

	// ParentID is the optional parent project.
	ParentID *string `json:"parentId,omitempty"`

	// DataPath is an optional external directory linked to the project.
	DataPath string `json:"dataPath,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasUser reports whether userID has access to the project.
func (p Project) HasUser(userID string) bool {
	for _, id := range p.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ParentIDValue returns the parent id or an empty string for roots.
func (p Project) ParentIDValue() string {
	if p.ParentID == nil {
		return ""
	}
	return *p.ParentID
}

// ProjectCreate is the payload for creating a project.
type ProjectCreate struct {
	Name     string   `json:"name"`
	OwnerID  string   `json:"ownerId"`
	UserIDs  []string `json:"userIds,omitempty"`
	ParentID *string  `json:"parentId,omitempty"`
	DataPath string   `json:"dataPath,omitempty"`
}

// ProjectUpdate is a partial update of a project.
// ParentID distinguishes an absent key (unchanged) from an explicit null
// (move to root).
type ProjectUpdate struct {
	Name     *string        `json:"name,omitempty"`
	UserIDs  *[]string      `json:"userIds,omitempty"`
	ParentID NullableString `json:"parentId,omitzero"`
	DataPath *string        `json:"dataPath,omitempty"`
}

// MoveMode selects how a dropped project is placed relative to its target.
type MoveMode string

const (
	// MoveNest makes the target the new parent of the source.
	MoveNest    MoveMode = "nest"
	// MoveReorder moves the source to the target's slot among its siblings.
	MoveReorder MoveMode = "reorder"
)

// MovePosition places a reordered project before or after its target.
// The empty position takes the target's slot, shifting the target towards
// the source's old slot.
type MovePosition string

const (
	PositionSlot   MovePosition = ""
	PositionBefore MovePosition = "before"
	PositionAfter  MovePosition = "after"
)

// MoveRequest is the payload of POST /api/projects/{id}/move.
type MoveRequest struct {
	TargetID string       `json:"targetId"`
	Mode     MoveMode     `json:"mode"`
	Position MovePosition `json:"position,omitempty"`
}

// ShareRequest toggles access of a user to a project.
type ShareRequest struct {
	UserID string `json:"userId"`
}
