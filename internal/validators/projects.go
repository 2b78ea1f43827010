package validators

import (
	"github.com/MKhiriev/go-project-hub/models"
)

func (v *PayloadValidator) validateProjectCreate(p models.ProjectCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldOwnerID, FieldUserIDs, FieldParentID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blank(p.Name) {
				return ErrEmptyProjectName
			}
		case FieldOwnerID:
			if blank(p.OwnerID) {
				return ErrEmptyOwnerID
			}
		case FieldUserIDs:
			if !validIDs(p.UserIDs) {
				return ErrInvalidUserIDs
			}
		case FieldParentID:
			if p.ParentID != nil && blank(*p.ParentID) {
				return ErrEmptyParentID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProjectUpdate allows a null parent id, which moves the project to
// the root level.
func (v *PayloadValidator) validateProjectUpdate(p models.ProjectUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldUserIDs, FieldParentID, FieldAny}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if p.Name != nil && blank(*p.Name) {
				return ErrEmptyProjectName
			}
		case FieldUserIDs:
			if p.UserIDs != nil && !validIDs(*p.UserIDs) {
				return ErrInvalidUserIDs
			}
		case FieldParentID:
			if p.ParentID.Value != nil && blank(*p.ParentID.Value) {
				return ErrEmptyParentID
			}
		case FieldAny:
			if p.Name == nil && p.UserIDs == nil && !p.ParentID.Set && p.DataPath == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PayloadValidator) validateMoveRequest(m models.MoveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTargetID, FieldMode, FieldPosition}
	}

	for _, f := range fields {
		switch f {
		case FieldTargetID:
			if blank(m.TargetID) {
				return ErrEmptyTargetID
			}
		case FieldMode:
			if m.Mode != models.MoveNest && m.Mode != models.MoveReorder {
				return ErrInvalidMoveMode
			}
		case FieldPosition:
			switch m.Position {
			case models.PositionSlot, models.PositionBefore, models.PositionAfter:
			default:
				return ErrInvalidMovePosition
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PayloadValidator) validateShareRequest(s models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if blank(s.UserID) {
				return ErrEmptyUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validIDs(ids []string) bool {
	for _, id := range ids {
		if blank(id) {
			return false
		}
	}
	return true
}
