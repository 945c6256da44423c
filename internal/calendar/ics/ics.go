// Package ics implements a tolerant line-oriented parser for iCalendar
// (RFC 5545) files. Only the VEVENT properties needed for schedule import
// are extracted; everything else is ignored.
package ics

import (
	"bufio"
	"io"
	"strings"
)

// Event represents one VEVENT with the properties schedule import cares
// about. DTStart keeps the raw property value; use Date and Time for the
// decoded parts.
type Event struct {
	Summary  string
	DTStart  string
	Location string
}

// Date returns the event's date in yyyy-mm-dd form, or "" if DTSTART does
// not start with an 8-digit date.
func (e Event) Date() string {
	v := e.DTStart
	if len(v) < 8 || !allDigits(v[:8]) {
		return ""
	}
	return v[0:4] + "-" + v[4:6] + "-" + v[6:8]
}

// Time returns the event's local time as HH:MM, or "" for all-day events.
func (e Event) Time() string {
	v := e.DTStart
	// 20250315T190000 at minimum
	if len(v) < 13 || v[8] != 'T' || !allDigits(v[9:13]) {
		return ""
	}
	return v[9:11] + ":" + v[11:13]
}

// Parse reads an iCalendar stream and returns its events. Lines outside
// BEGIN:VEVENT/END:VEVENT blocks and unknown properties are skipped.
// Folded lines (continuations starting with space or tab) are unfolded
// before property parsing.
func Parse(r io.Reader) ([]Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var events []Event
	var current *Event
	var pending string

	flush := func() {
		if pending == "" {
			return
		}
		line := pending
		pending = ""

		name, value, ok := splitProperty(line)
		if !ok {
			return
		}

		switch name {
		case "BEGIN":
			if strings.EqualFold(value, "VEVENT") {
				current = &Event{}
			}
		case "END":
			if strings.EqualFold(value, "VEVENT") && current != nil {
				events = append(events, *current)
				current = nil
			}
		case "SUMMARY":
			if current != nil {
				current.Summary = unescape(value)
			}
		case "DTSTART":
			if current != nil {
				current.DTStart = value
			}
		case "LOCATION":
			if current != nil {
				current.Location = unescape(value)
			}
		}
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		// Continuation lines extend the preceding property.
		if line[0] == ' ' || line[0] == '\t' {
			pending += line[1:]
			continue
		}
		flush()
		pending = line
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// splitProperty separates a content line into its upper-cased property name
// and value. Property parameters (";TZID=..." etc.) are dropped.
func splitProperty(line string) (name, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	name = line[:idx]
	value = line[idx+1:]
	if semi := strings.Index(name, ";"); semi >= 0 {
		name = name[:semi]
	}
	return strings.ToUpper(strings.TrimSpace(name)), value, true
}

// unescape reverses RFC 5545 TEXT escaping.
func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
