package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Evaaaz/calendar-reminder-app/internal/models"
)

func descriptor(summary, date string) models.EventDescriptor {
	d, _ := time.Parse("2006-01-02", date)
	return models.EventDescriptor{
		Summary:     summary,
		Description: "desc for " + summary,
		Date:        d,
		Metadata: models.EventMetadata{
			OriginalEvent: "origin of " + summary,
			OriginalDate:  date,
			DaysOffset:    -14,
			Category:      "bday",
		},
	}
}

func TestNewPayload(t *testing.T) {
	p := NewPayload(descriptor("Buy card", "2025-06-01"), "UTC")

	if p.Summary != "Buy card" {
		t.Errorf("summary = %q, want %q", p.Summary, "Buy card")
	}
	if p.Start.Date != "2025-06-01" || p.End.Date != "2025-06-01" {
		t.Errorf("start/end = %q/%q, want all-day 2025-06-01 for both", p.Start.Date, p.End.Date)
	}
	if p.Start.TimeZone != "UTC" || p.End.TimeZone != "UTC" {
		t.Errorf("time zones = %q/%q, want UTC", p.Start.TimeZone, p.End.TimeZone)
	}
	if !p.Reminders.UseDefault {
		t.Error("reminders.useDefault = false, want true")
	}
}

func TestPayloadStripsMetadata(t *testing.T) {
	p := NewPayload(descriptor("Buy card", "2025-06-01"), "UTC")

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if strings.Contains(string(data), "metadata") || strings.Contains(string(data), "origin of") {
		t.Errorf("sink payload leaks provenance metadata: %s", data)
	}
}

func TestCalDAVDeliverPartialFailure(t *testing.T) {
	var puts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			http.NotFound(w, r)
			return
		}
		body := new(bytes.Buffer)
		_, _ = body.ReadFrom(r.Body)
		puts = append(puts, body.String())

		// Fail the second event only.
		if strings.Contains(body.String(), "second event") {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewCalDAVSink(srv.URL, "user", "pass", "/calendars/user/default/", "UTC")
	events := []models.EventDescriptor{
		descriptor("first event", "2025-06-01"),
		descriptor("second event", "2025-06-02"),
		descriptor("third event", "2025-06-03"),
	}

	accepted := s.Deliver(context.Background(), events)

	if len(puts) != 3 {
		t.Fatalf("server saw %d PUTs, want 3 (each event attempted independently)", len(puts))
	}
	if len(accepted) != 2 {
		t.Fatalf("accepted %d events, want 2", len(accepted))
	}
	if accepted[0].Summary != "first event" || accepted[1].Summary != "third event" {
		t.Errorf("accepted = %q, %q; want first and third", accepted[0].Summary, accepted[1].Summary)
	}
	for _, d := range accepted {
		if d.UID == "" || !strings.HasSuffix(d.Path, ".ics") {
			t.Errorf("delivered entry missing uid/path: %+v", d)
		}
	}
}

func TestCalDAVDeliverEncodesAllDayEvent(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		body = buf.String()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewCalDAVSink(srv.URL, "user", "pass", "/cal/", "UTC")
	accepted := s.Deliver(context.Background(), []models.EventDescriptor{
		descriptor("All day", "2025-01-31"),
	})

	if len(accepted) != 1 {
		t.Fatalf("accepted %d, want 1", len(accepted))
	}
	if !strings.Contains(body, "SUMMARY:All day") {
		t.Errorf("VEVENT missing summary: %s", body)
	}
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20250131") {
		t.Errorf("DTSTART is not a date value: %s", body)
	}
	// Exclusive end: the next calendar day, crossing the month boundary.
	if !strings.Contains(body, "DTEND;VALUE=DATE:20250201") {
		t.Errorf("DTEND is not the exclusive next day: %s", body)
	}
	if strings.Contains(body, "VALARM") {
		t.Errorf("all-day event should carry no explicit alarm: %s", body)
	}
}

func TestPreviewSinkAcceptsEverything(t *testing.T) {
	var buf bytes.Buffer
	s := NewPreviewSink(&buf, "UTC")

	events := []models.EventDescriptor{
		descriptor("first", "2025-06-01"),
		descriptor("second", "2025-06-02"),
	}
	accepted := s.Deliver(context.Background(), events)

	if len(accepted) != len(events) {
		t.Errorf("preview accepted %d of %d", len(accepted), len(events))
	}
	out := buf.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("preview output missing event summaries: %s", out)
	}
	if !strings.Contains(out, "2025-06-01") {
		t.Errorf("preview output missing event dates: %s", out)
	}
}
