// Package ics exports a single event as an iCalendar file.
package ics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kulevich/minsk-afisha/internal/event"
)

// DefaultDuration is assumed when the source gives only a start time.
const DefaultDuration = 2 * time.Hour

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)

// Generate renders an event as an iCalendar document. The event date is
// already normalized ISO; the free-text time field contributes a start time
// when it leads with HH:MM, otherwise the event is placed at 19:00.
func Generate(e event.Event, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Minsk Afisha//afisha//RU\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%d-%s@afisha.local\r\n", e.ID, e.Date))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))

	start := startTime(e)
	end := start.Add(DefaultDuration)
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(e.Title)))
	if e.Description != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(e.Description)))
	}

	location := e.Location
	if e.Address != "" {
		if location != "" {
			location += ", " + e.Address
		} else {
			location = e.Address
		}
	}
	if location != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(location)))
	}

	if e.Link != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", e.Link))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// startTime combines the ISO date with the leading HH:MM of the time field.
func startTime(e event.Event) time.Time {
	day, err := time.Parse(event.ISODate, e.Date)
	if err != nil {
		day = time.Now().UTC().Truncate(24 * time.Hour)
	}

	hour, minute := 19, 0
	if m := timePattern.FindStringSubmatch(strings.TrimSpace(e.Time)); m != nil {
		fmt.Sscanf(m[1], "%d", &hour)
		fmt.Sscanf(m[2], "%d", &minute)
		if hour > 23 || minute > 59 {
			hour, minute = 19, 0
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

// formatICSTime formats a time as an iCalendar UTC datetime.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes text per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
