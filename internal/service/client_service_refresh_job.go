package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-project-hub/models"
)

type clientRefreshJob struct {
	workspace ClientWorkspaceService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls workspace.Load on a
// ticker. The job is idle until Start is called.
func NewClientRefreshJob(workspace ClientWorkspaceService) ClientRefreshJob {
	return &clientRefreshJob{workspace: workspace}
}

// Start implements ClientRefreshJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration, onRefresh func(models.Workspace, error)) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				ws, err := j.workspace.Load(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				if onRefresh != nil {
					onRefresh(ws, err)
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
