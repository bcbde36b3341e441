package engine

import (
	"testing"
	"time"
)

func TestSchedulerStartCancel(t *testing.T) {
	var s Scheduler
	s.SetPeriod(120 * time.Millisecond)

	if s.Running() {
		t.Fatal("New scheduler should not be running")
	}

	h := s.Start()
	if !s.Running() {
		t.Fatal("Scheduler should run after Start")
	}
	if !s.Valid(h) {
		t.Error("Fresh handle should be valid")
	}

	s.Cancel()
	if s.Running() {
		t.Error("Scheduler should stop after Cancel")
	}
	if s.Valid(h) {
		t.Error("Handle should be stale after Cancel")
	}
}

func TestSchedulerRestartInvalidatesOldHandle(t *testing.T) {
	var s Scheduler

	h1 := s.Start()
	h2 := s.Start()

	if s.Valid(h1) {
		t.Error("Old handle should be stale after restart")
	}
	if !s.Valid(h2) {
		t.Error("New handle should be valid")
	}
}

func TestSchedulerPeriod(t *testing.T) {
	var s Scheduler
	s.SetPeriod(150 * time.Millisecond)
	if s.Period() != 150*time.Millisecond {
		t.Errorf("Expected 150ms, got %v", s.Period())
	}

	// Non-positive periods are rejected.
	s.SetPeriod(0)
	if s.Period() != 150*time.Millisecond {
		t.Errorf("Zero period should be ignored, got %v", s.Period())
	}
}

func TestPhaseTransitionsInvalidateTicks(t *testing.T) {
	// A tick scheduled before a phase change away from Active must
	// not step the engine, even though it is already "in flight".
	e := New(Options{Seed: 42})
	e.Apply(ActivateCommand())

	h := e.Scheduler().Handle()
	if !e.Scheduler().Valid(h) {
		t.Fatal("Handle should be valid while active")
	}

	e.Apply(PauseResumeCommand())
	if e.Scheduler().Valid(h) {
		t.Fatal("Handle should be stale after pausing")
	}

	// A stale tick that still fires is a no-op.
	before := e.Snapshot()
	if e.Scheduler().Valid(h) {
		e.Step()
	}
	if e.Snapshot() != before {
		t.Error("Stale tick stepped the engine")
	}

	// Resuming issues a fresh generation.
	e.Apply(PauseResumeCommand())
	h2 := e.Scheduler().Handle()
	if h2 == h {
		t.Error("Resume should issue a fresh handle")
	}
	if !e.Scheduler().Valid(h2) {
		t.Error("Fresh handle should be valid after resume")
	}
}

func TestTerminationCancelsScheduler(t *testing.T) {
	e := New(Options{Seed: 42})
	e.Apply(ActivateCommand())
	h := e.Scheduler().Handle()

	e.snake = []Cell{{X: 0, Y: 5}, {X: 1, Y: 5}}
	e.facing = DirLeft
	e.pending = DirLeft
	e.Step()

	if e.Phase() != PhaseTerminated {
		t.Fatalf("Setup failed: expected terminated, got %v", e.Phase())
	}
	if e.Scheduler().Valid(h) {
		t.Error("Handle should be stale after termination")
	}
	if e.Scheduler().Running() {
		t.Error("Scheduler should be cancelled on termination")
	}
}
