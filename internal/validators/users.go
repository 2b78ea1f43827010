package validators

import (
	"strings"

	"github.com/MKhiriev/go-project-hub/models"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateCredentials is shared by login, registration and admin user creation.
func (v *PayloadValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(c.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PayloadValidator) validateUserUpdate(u models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldAny}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if u.Username != nil && blank(*u.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if u.Password != nil && *u.Password == "" {
				return ErrEmptyPassword
			}
		case FieldAny:
			if u.Username == nil && u.Password == nil && u.IsAdmin == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PayloadValidator) validatePasswordChange(c models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if c.CurrentPassword == "" {
				return ErrEmptyCurrentPassword
			}
		case FieldNewPassword:
			if c.NewPassword == "" {
				return ErrEmptyNewPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
