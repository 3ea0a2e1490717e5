package sink

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"

	"github.com/Evaaaz/calendar-reminder-app/internal/constants"
	"github.com/Evaaaz/calendar-reminder-app/internal/logger"
	"github.com/Evaaaz/calendar-reminder-app/internal/models"
)

// Calendar describes one calendar discovered on the server.
type Calendar struct {
	Path string
	Name string
}

// CalDAVSink writes events to a CalDAV calendar, one PUT per event at
// <calendar>/<uid>.ics.
type CalDAVSink struct {
	baseURL      string
	username     string
	password     string
	calendarPath string
	timeZone     string
	client       *caldav.Client
}

// NewCalDAVSink creates a sink for the given server and calendar path. The
// connection is established lazily on first use.
func NewCalDAVSink(baseURL, username, password, calendarPath, timeZone string) *CalDAVSink {
	if timeZone == "" {
		timeZone = constants.DefaultTimeZone
	}
	return &CalDAVSink{
		baseURL:      baseURL,
		username:     username,
		password:     password,
		calendarPath: calendarPath,
		timeZone:     timeZone,
	}
}

// basicAuthTransport adds Basic Auth to every request.
type basicAuthTransport struct {
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	return http.DefaultTransport.RoundTrip(req)
}

func (s *CalDAVSink) connect() (*caldav.Client, error) {
	if s.client != nil {
		return s.client, nil
	}

	httpClient := &http.Client{
		Transport: &basicAuthTransport{
			username: s.username,
			password: s.password,
		},
		Timeout: constants.CalDAVTimeout,
	}

	client, err := caldav.NewClient(httpClient, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to CalDAV: %w", err)
	}

	s.client = client
	return client, nil
}

// ListCalendars discovers the calendars available to the configured account.
func (s *CalDAVSink) ListCalendars(ctx context.Context) ([]Calendar, error) {
	client, err := s.connect()
	if err != nil {
		return nil, err
	}

	principal, err := client.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("find principal: %w", err)
	}

	homeSet, err := client.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("find home set: %w", err)
	}

	cals, err := client.FindCalendars(ctx, homeSet)
	if err != nil {
		return nil, fmt.Errorf("find calendars: %w", err)
	}

	result := make([]Calendar, 0, len(cals))
	for _, cal := range cals {
		result = append(result, Calendar{Path: cal.Path, Name: cal.Name})
	}

	return result, nil
}

// Deliver attempts each event independently. A failing PUT is logged and the
// loop continues; the returned slice holds only the accepted events.
func (s *CalDAVSink) Deliver(ctx context.Context, events []models.EventDescriptor) []Delivered {
	client, err := s.connect()
	if err != nil {
		logger.Error("CalDAV connection failed", "error", err)
		return nil
	}

	accepted := make([]Delivered, 0, len(events))

	for _, event := range events {
		payload := NewPayload(event, s.timeZone)
		uid := uuid.NewString()

		path := s.calendarPath
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		path += uid + constants.EventPathSuffix

		if _, err := client.PutCalendarObject(ctx, path, payloadToICS(payload, uid)); err != nil {
			logger.Error("event delivery failed",
				"summary", payload.Summary,
				"date", payload.Start.Date,
				"error", err)
			continue
		}

		logger.Info("event created", "summary", payload.Summary, "date", payload.Start.Date)
		accepted = append(accepted, Delivered{
			UID:     uid,
			Path:    path,
			Summary: payload.Summary,
			Date:    payload.Start.Date,
		})
	}

	return accepted
}

// payloadToICS encodes a payload as a VCALENDAR with a single all-day
// VEVENT. DTEND is exclusive in iCalendar, so the payload's single-day span
// becomes start date plus one day. No VALARM is attached: reminder behavior
// is left to the server/client default, which is what UseDefault requests.
func payloadToICS(p Payload, uid string) *ical.Calendar {
	start, err := time.ParseInLocation(constants.DateFormat, p.Start.Date, time.UTC)
	if err != nil {
		// Dates come from EventDescriptor.DateString and always parse; keep
		// a sane value if that ever changes.
		start = time.Now().UTC()
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, constants.CalendarProductID)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uid)
	event.Props.SetText(ical.PropSummary, p.Summary)
	if p.Description != "" {
		event.Props.SetText(ical.PropDescription, p.Description)
	}
	event.Props.SetDate(ical.PropDateTimeStart, start)
	event.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())

	cal.Children = append(cal.Children, event.Component)
	return cal
}
