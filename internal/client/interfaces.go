// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-project-hub/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// AuthFlow blocks until a user is signed in or the user quits.
	AuthFlow(ctx context.Context) (models.User, error)

	// MainLoop blocks until quit or logout. logout asks for a new sign in.
	MainLoop(ctx context.Context, user models.User, refreshInterval time.Duration) (logout bool, err error)
}
