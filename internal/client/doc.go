// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session, runs the sign in flow when needed and keeps
// the workspace screen running until the user quits.
package client
