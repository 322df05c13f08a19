// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	require.NoError(t, New(w1, w2, w3).Run(context.Background()))

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_New_SkipsNil(t *testing.T) {
	w := &countingWorker{}
	ws := New(nil, w, nil)

	assert.Len(t, ws.workers, 1)
	require.NoError(t, ws.Run(context.Background()))
	assert.Equal(t, int32(1), w.runCount.Load())
}

func TestWorkers_Run_RunsConcurrently(t *testing.T) {
	started := make(chan struct{}, 2)
	blocker := WorkerFunc(func(ctx context.Context) error {
		started <- struct{}{}
		<-ctx.Done()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(blocker, blocker).Run(ctx) }()

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("workers did not start concurrently")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	var cancelled atomic.Bool
	waiter := WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		cancelled.Store(true)
		return nil
	})
	failing := WorkerFunc(func(ctx context.Context) error {
		return assert.AnError
	})

	err := New(waiter, failing).Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, cancelled.Load())
}
