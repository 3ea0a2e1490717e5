package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Evaaaz/calendar-reminder-app/internal/sink"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "calrem.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListRuns(t *testing.T) {
	s := newTestStore(t)

	first := Run{
		StartedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Source:    "./data",
		Generated: 3,
		Delivered: 2,
	}
	delivered := []sink.Delivered{
		{UID: "uid-1", Path: "/cal/uid-1.ics", Summary: "Buy card", Date: "2025-06-01"},
		{UID: "uid-2", Path: "/cal/uid-2.ics", Summary: "Send card", Date: "2025-06-08"},
	}

	runID, err := s.RecordRun(first, delivered)
	if err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}

	second := Run{
		StartedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		Source:    "https://example.com/sheets",
		Generated: 1,
		Delivered: 1,
		DryRun:    true,
	}
	if _, err := s.RecordRun(second, nil); err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}

	runs, err := s.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Source != "https://example.com/sheets" {
		t.Errorf("newest run first: got %q", runs[0].Source)
	}
	if !runs[0].DryRun {
		t.Error("dry_run flag not round-tripped")
	}
	if runs[1].Generated != 3 || runs[1].Delivered != 2 {
		t.Errorf("counts = %d/%d, want 3/2", runs[1].Generated, runs[1].Delivered)
	}

	events, err := s.DeliveredEvents(runID)
	if err != nil {
		t.Fatalf("DeliveredEvents() error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d delivered events, want 2", len(events))
	}
	if events[0].Summary != "Buy card" || events[1].Summary != "Send card" {
		t.Errorf("delivered events out of order: %+v", events)
	}
}

func TestRecentRunsLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		run := Run{
			StartedAt: time.Date(2025, 6, 1+i, 8, 0, 0, 0, time.UTC),
			Source:    "./data",
		}
		if _, err := s.RecordRun(run, nil); err != nil {
			t.Fatalf("RecordRun() error: %v", err)
		}
	}

	runs, err := s.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want limit of 3", len(runs))
	}
}

func TestStoreReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calrem.db")

	s, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := s.RecordRun(Run{StartedAt: time.Now(), Source: "x"}, nil); err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}
	s.Close()

	s2, err := New(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s2.Close()

	runs, err := s2.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
