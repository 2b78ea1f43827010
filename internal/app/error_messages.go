// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// project hub server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client adapter matches on them to recover the service
// error behind a status code, so the wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for failures the client cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageNotInitialized is returned by every gated route until a data
	// directory has been chosen.
	MsgStorageNotInitialized = "Storage not initialized. Please complete setup first."

	// MsgStoragePathRequired is returned by POST /api/init without a path.
	MsgStoragePathRequired = "Storage path is required"

	// MsgStorageInitialized is the success message of POST /api/init.
	MsgStorageInitialized = "Storage initialized successfully"

	// MsgStorageInitFailed is returned when the data directory cannot be
	// created or written.
	MsgStorageInitFailed = "Failed to initialize storage"

	MsgInvalidCredentials      = "Invalid credentials"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgMissingToken            = "authorization token is required"
	MsgLoginFailed             = "Login failed"
	MsgRegistrationFailed      = "Registration failed"

	// MsgUserAlreadyExists is returned when the username is taken.
	MsgUserAlreadyExists = "User already exists"

	// MsgAdminRequired is returned by /api/users for non-admin callers.
	MsgAdminRequired = "admin access required"

	// MsgSelfModification is returned when an admin tries to delete their own
	// account or revoke their own admin flag.
	MsgSelfModification = "cannot modify own account this way"

	// MsgProjectOwnerRequired is returned when a member who is not the owner
	// deletes or shares a project.
	MsgProjectOwnerRequired = "only the project owner can do this"

	MsgUserNotFound    = "User not found"
	MsgProjectNotFound = "Project not found"
	MsgTodoNotFound    = "Todo not found"
	MsgNoteNotFound    = "Note not found"

	// MsgInvalidOwner is returned when a project references an unknown owner.
	MsgInvalidOwner = "Invalid ownerId"

	// MsgInvalidUser is returned when a project is shared with an unknown
	// user.
	MsgInvalidUser = "Invalid userId"

	// MsgInvalidParent is returned when a project references an unknown
	// parent.
	MsgInvalidParent = "Invalid parentId"

	// MsgInvalidProject is returned when a todo or note references an unknown
	// project.
	MsgInvalidProject = "Invalid projectId"

	// MsgProjectCycle is returned when a move or update would place a project
	// below itself.
	MsgProjectCycle = "project cannot be nested below itself"

	// MsgOwnerAccess is returned when sharing is toggled for the owner.
	MsgOwnerAccess = "owner access cannot be changed"

	MsgTodoDeleted = "Todo deleted successfully"
	MsgNoteDeleted = "Note deleted successfully"
)
