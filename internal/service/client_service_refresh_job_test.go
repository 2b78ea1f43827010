// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyWorkspace counts Load calls.
type spyWorkspace struct {
	ClientWorkspaceService
	calls atomic.Int64
	err   error
}

func (s *spyWorkspace) Load(_ context.Context) (models.Workspace, error) {
	s.calls.Add(1)
	return models.Workspace{Projects: []models.Project{{ID: "p1"}}}, s.err
}

func TestClientRefreshJob_Start_CallsLoad(t *testing.T) {
	spy := &spyWorkspace{}
	job := NewClientRefreshJob(spy)

	var refreshed atomic.Int64
	job.Start(context.Background(), 10*time.Millisecond, func(ws models.Workspace, err error) {
		assert.NoError(t, err)
		assert.Len(t, ws.Projects, 1)
		refreshed.Add(1)
	})
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.Equal(t, spy.calls.Load(), refreshed.Load())
}

func TestClientRefreshJob_PassesErrors(t *testing.T) {
	spy := &spyWorkspace{err: errors.New("server down")}
	job := NewClientRefreshJob(spy)

	errs := make(chan error, 10)
	job.Start(context.Background(), 5*time.Millisecond, func(_ models.Workspace, err error) {
		select {
		case errs <- err:
		default:
		}
	})
	defer job.Stop()

	select {
	case err := <-errs:
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("refresh callback was not called")
	}
}

func TestClientRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyWorkspace{}
	job := NewClientRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, nil)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, spy.calls.Load())
}

func TestClientRefreshJob_StopBeforeStart_NoPanic(t *testing.T) {
	job := NewClientRefreshJob(&spyWorkspace{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_ContextCancelStops(t *testing.T) {
	spy := &spyWorkspace{}
	job := NewClientRefreshJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond, nil)
	cancel()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(0), spy.calls.Load())
	job.Stop()
}

func TestClientRefreshJob_RestartReplacesRunningJob(t *testing.T) {
	spy := &spyWorkspace{}
	job := NewClientRefreshJob(spy)

	job.Start(context.Background(), time.Hour, nil)
	job.Start(context.Background(), 10*time.Millisecond, nil)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}
