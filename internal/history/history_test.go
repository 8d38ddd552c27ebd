package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLogAndEvents(t *testing.T) {
	logger := NewLogger(t.TempDir())

	if err := logger.LogEvent(EventLaunch, "quaternion_run", "id-1", "3 iterations"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	if err := logger.LogEvent(EventIteration, "quaternion_run", "id-2", "exit status 0"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := logger.Events("quaternion_run")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}

	if events[0].Type != EventLaunch {
		t.Errorf("events[0].Type = %q, want %q", events[0].Type, EventLaunch)
	}
	if events[1].RunID != "id-2" {
		t.Errorf("events[1].RunID = %q, want %q", events[1].RunID, "id-2")
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp should be set automatically")
	}
}

func TestEvents_NoHistory(t *testing.T) {
	logger := NewLogger(t.TempDir())

	events, err := logger.Events("never_ran")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if events != nil {
		t.Errorf("events = %v, want nil for missing log", events)
	}
}

func TestEvents_SkipsMalformedLines(t *testing.T) {
	stateDir := t.TempDir()
	logger := NewLogger(stateDir)

	if err := logger.LogEvent(EventLaunch, "run", "id", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	path := filepath.Join(stateDir, "runs", "run.events.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("Failed to open log: %v", err)
	}
	if _, err := f.WriteString("garbage line\n"); err != nil {
		t.Fatalf("Failed to append garbage: %v", err)
	}
	f.Close()

	if err := logger.LogEvent(EventError, "run", "id", "exit status 1"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := logger.Events("run")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("len(events) = %d, want 2 (malformed line skipped)", len(events))
	}
}

func TestLog_PreservesExplicitTimestamp(t *testing.T) {
	logger := NewLogger(t.TempDir())

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := logger.Log(Event{Timestamp: ts, Type: EventLaunch, Run: "run"}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := logger.Events("run")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if !events[0].Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", events[0].Timestamp, ts)
	}
}

func TestRuns(t *testing.T) {
	logger := NewLogger(t.TempDir())

	if runs, err := logger.Runs(); err != nil || runs != nil {
		t.Errorf("Runs() = %v, %v, want nil, nil before any events", runs, err)
	}

	if err := logger.LogEvent(EventLaunch, "alpha", "", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	if err := logger.LogEvent(EventLaunch, "beta", "", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	runs, err := logger.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("len(Runs()) = %d, want 2", len(runs))
	}
}
