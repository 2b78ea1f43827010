package validators

import (
	"context"

	"github.com/MKhiriev/go-project-hub/models"
)

// Field names accepted by Validate to restrict validation to a subset of
// a payload's fields.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"

	FieldName     = "name"
	FieldOwnerID  = "owner_id"
	FieldUserIDs  = "user_ids"
	FieldParentID = "parent_id"
	FieldTargetID = "target_id"
	FieldMode     = "mode"
	FieldPosition = "position"
	FieldUserID   = "user_id"

	FieldProjectID = "project_id"
	FieldTitle     = "title"
	FieldPriority  = "priority"
	FieldTags      = "tags"

	FieldDataPath = "data_path"
	FieldSort     = "sort"
	FieldOrder    = "order"

	// FieldAny requires at least one field of an update payload to be set.
	FieldAny = "any"
)

// PayloadValidator validates the request payloads of the project hub API.
// Both value and pointer forms of every payload are accepted.
type PayloadValidator struct {
}

func NewPayloadValidator() Validator {
	return &PayloadValidator{}
}

func (v *PayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.UserCreate:
		return v.validateCredentials(models.Credentials{Username: value.Username, Password: value.Password}, fields...)
	case *models.UserCreate:
		return v.validateCredentials(models.Credentials{Username: value.Username, Password: value.Password}, fields...)
	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)
	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	case models.ProjectCreate:
		return v.validateProjectCreate(value, fields...)
	case *models.ProjectCreate:
		return v.validateProjectCreate(*value, fields...)
	case models.ProjectUpdate:
		return v.validateProjectUpdate(value, fields...)
	case *models.ProjectUpdate:
		return v.validateProjectUpdate(*value, fields...)
	case models.MoveRequest:
		return v.validateMoveRequest(value, fields...)
	case *models.MoveRequest:
		return v.validateMoveRequest(*value, fields...)
	case models.ShareRequest:
		return v.validateShareRequest(value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(*value, fields...)

	case models.TodoCreate:
		return v.validateTodoCreate(value, fields...)
	case *models.TodoCreate:
		return v.validateTodoCreate(*value, fields...)
	case models.TodoUpdate:
		return v.validateTodoUpdate(value, fields...)
	case *models.TodoUpdate:
		return v.validateTodoUpdate(*value, fields...)

	case models.NoteCreate:
		return v.validateNoteCreate(value, fields...)
	case *models.NoteCreate:
		return v.validateNoteCreate(*value, fields...)
	case models.NoteUpdate:
		return v.validateNoteUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value, fields...)

	case models.InitRequest:
		return v.validateInitRequest(value, fields...)
	case *models.InitRequest:
		return v.validateInitRequest(*value, fields...)
	case models.DashboardQuery:
		return v.validateDashboardQuery(value, fields...)
	case *models.DashboardQuery:
		return v.validateDashboardQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PayloadValidator) validateInitRequest(request models.InitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDataPath}
	}

	for _, f := range fields {
		switch f {
		case FieldDataPath:
			if blank(request.DataPath) {
				return ErrEmptyDataPath
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDashboardQuery accepts empty values, the service applies defaults.
func (v *PayloadValidator) validateDashboardQuery(query models.DashboardQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSort, FieldOrder}
	}

	for _, f := range fields {
		switch f {
		case FieldSort:
			switch query.Sort {
			case "", models.SortByUpdated, models.SortByCreated, models.SortByDue:
			default:
				return ErrInvalidSortKey
			}
		case FieldOrder:
			switch query.Order {
			case "", models.SortAsc, models.SortDesc:
			default:
				return ErrInvalidSortOrder
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
