// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/clip-vault/internal/logger"
	"github.com/MKhiriev/clip-vault/internal/utils"
	"github.com/MKhiriev/clip-vault/models"
)

// DefaultPollInterval is used when the worker is built with a non-positive
// interval.
const DefaultPollInterval = time.Second

// Worker polls the clipboard and pushes changed text onto the pending queue
// while monitoring is enabled. The first text observed after start is taken
// as the baseline and is not queued.
type Worker struct {
	queue     PendingQueue
	clipboard Clipboard
	hasher    *utils.Hasher
	interval  time.Duration
	logger    *logger.Logger
	now       func() time.Time

	// last is the fingerprint of the last clipboard text seen; the text itself
	// is never retained
	last    string
	started bool
}

// NewWorker builds a capture worker.
func NewWorker(queue PendingQueue, cb Clipboard, interval time.Duration, log *logger.Logger) (*Worker, error) {
	if queue == nil || cb == nil {
		return nil, errors.New("capture worker: queue and clipboard are required")
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = logger.Nop()
	}

	hasher, err := utils.NewRandomHasher()
	if err != nil {
		return nil, err
	}

	return &Worker{
		queue:     queue,
		clipboard: cb,
		hasher:    hasher,
		interval:  interval,
		logger:    log,
		now:       time.Now,
	}, nil
}

// Run polls the clipboard every interval until ctx is cancelled. Failures of
// a single poll are logged and do not stop the worker.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info().Str("func", "Worker.Run").Dur("interval", w.interval).Msg("clipboard capture started")

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "Worker.Run").Msg("clipboard capture stopped")
			return nil
		case <-t.C:
			if _, err := w.poll(ctx); err != nil {
				w.logger.Err(err).Str("func", "Worker.Run").Msg("clipboard poll failed")
			}
		}
	}
}

// poll reads the clipboard once and reports whether a clip was queued.
func (w *Worker) poll(ctx context.Context) (bool, error) {
	text, err := w.clipboard.ReadAll()
	if err != nil {
		return false, err
	}

	fp := w.hasher.HashString(text)
	first, unchanged := !w.started, fp == w.last
	w.started, w.last = true, fp
	if first || unchanged || strings.TrimSpace(text) == "" {
		return false, nil
	}

	enabled, err := w.queue.Monitoring(ctx)
	if err != nil || !enabled {
		return false, err
	}

	queued, err := w.queue.AddPending(ctx, models.PendingClip{
		Content:   text,
		Timestamp: w.now().UnixMilli(),
	})
	if err != nil {
		return false, err
	}
	if queued {
		w.logger.Debug().Str("func", "Worker.poll").Int("length", len(text)).Msg("clip queued")
	}
	return queued, nil
}
