package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername        = errors.New("username is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyCurrentPassword = errors.New("current password is required")
	ErrEmptyNewPassword     = errors.New("new password is required")

	ErrEmptyProjectName    = errors.New("project name is required")
	ErrEmptyOwnerID        = errors.New("owner id is required")
	ErrEmptyParentID       = errors.New("parent id cannot be empty")
	ErrInvalidUserIDs      = errors.New("user ids cannot contain empty values")
	ErrEmptyTargetID       = errors.New("target project id is required")
	ErrInvalidMoveMode     = errors.New("move mode must be nest or reorder")
	ErrInvalidMovePosition = errors.New("move position must be before or after")
	ErrEmptyUserID         = errors.New("user id is required")

	ErrEmptyProjectID  = errors.New("project id is required")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
	ErrInvalidTag      = errors.New("tags cannot be empty")

	ErrEmptyDataPath    = errors.New("data path is required")
	ErrInvalidSortKey   = errors.New("sort must be updated, created or due")
	ErrInvalidSortOrder = errors.New("order must be asc or desc")

	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
