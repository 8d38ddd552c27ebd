// Package history provides structured event logging for launch attempts.
// Events are stored as JSON Lines (JSONL) files, one per run name.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EventType classifies a launch event.
type EventType string

const (
	EventLaunch    EventType = "launch"
	EventIteration EventType = "iteration"
	EventError     EventType = "error"
)

// Event represents a single history entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Run       string    `json:"run"`
	RunID     string    `json:"runId,omitempty"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads launch events.
// Events are stored in {stateDir}/runs/{run}.events.jsonl.
type Logger struct {
	stateDir string
}

// NewLogger creates a new history logger rooted at stateDir.
func NewLogger(stateDir string) *Logger {
	return &Logger{stateDir: stateDir}
}

// eventPath returns the path to the JSONL event log for a run name.
func (l *Logger) eventPath(run string) string {
	return filepath.Join(l.stateDir, "runs", run+".events.jsonl")
}

// Log appends an event to the run's history log.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	path := l.eventPath(event.Run)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, run, runID, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Run:       run,
		RunID:     runID,
		Details:   details,
	})
}

// Events reads all events for a run in chronological order.
func (l *Logger) Events(run string) ([]Event, error) {
	path := l.eventPath(run)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading history log: %w", err)
	}

	return events, nil
}

// Runs lists the run names that have history, in directory order.
func (l *Logger) Runs() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.stateDir, "runs"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	const suffix = ".events.jsonl"
	var runs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || len(name) <= len(suffix) || name[len(name)-len(suffix):] != suffix {
			continue
		}
		runs = append(runs, name[:len(name)-len(suffix)])
	}

	return runs, nil
}
