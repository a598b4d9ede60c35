// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

type signalJob struct {
	ran chan struct{}
}

func (j *signalJob) Name() string { return "signal" }

func (j *signalJob) Run(context.Context) error {
	select {
	case j.ran <- struct{}{}:
	default:
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_AddJobInvalidSpec(t *testing.T) {
	s := New(testLogger())
	if err := s.AddJob("not a cron spec", &signalJob{}); err == nil {
		t.Error("AddJob() expected error for invalid spec")
	}
}

func TestScheduler_RunsRegisteredJob(t *testing.T) {
	s := New(testLogger())
	job := &signalJob{ran: make(chan struct{}, 1)}

	if err := s.AddJob("@every 10ms", job); err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}

	s.Start()
	defer s.Stop()

	select {
	case <-job.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run within 2s")
	}
}

func TestScheduler_StopWaits(t *testing.T) {
	s := New(testLogger())
	s.Start()
	s.Stop() // must not hang or panic with no jobs
}
