package query

import (
	"strings"
	"time"

	"fieldcore/pkg/domain"
)

// DateWindow is a relative date predicate computed against wall-clock now at
// query time.
type DateWindow int

// Supported windows. Day-granular: a window of n days starts at midnight
// n-1 days before now's day.
const (
	WindowAll DateWindow = iota
	WindowToday
	WindowLast7Days
	WindowLast30Days
)

// Contains reports whether t falls inside the window relative to now. The
// zero time (the decode result of an invalid date) never matches a bounded
// window, so corrupt timestamps drop out instead of comparing as garbage.
func (w DateWindow) Contains(now, t time.Time) bool {
	days := 0
	switch w {
	case WindowAll:
		return true
	case WindowToday:
		days = 1
	case WindowLast7Days:
		days = 7
	case WindowLast30Days:
		days = 30
	default:
		return true
	}
	if t.IsZero() {
		return false
	}
	cutoff := domain.StartOfDay(now).AddDate(0, 0, -(days - 1))
	return !t.Before(cutoff)
}

// LogFilter is a conjunction of independent predicates over log entries.
// Zero values disable their predicate.
type LogFilter struct {
	Search string     // case-insensitive substring across title, content, type, technician, location
	Type   string     // exact entry type
	Window DateWindow // relative window over the visit timestamp
}

// FilterLogs returns the entries satisfying every enabled predicate,
// preserving input order.
func FilterLogs(entries []domain.ServiceLogEntry, f LogFilter, now time.Time) []domain.ServiceLogEntry {
	out := make([]domain.ServiceLogEntry, 0, len(entries))
	for _, e := range entries {
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if !f.Window.Contains(now, e.Timestamp) {
			continue
		}
		if f.Search != "" && !logMatches(e, f.Search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func logMatches(e domain.ServiceLogEntry, search string) bool {
	needle := strings.ToLower(search)
	for _, hay := range []string{e.Title, e.Content, e.Type, e.Technician, e.Location} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// CaseFilter is a conjunction of independent predicates over service cases.
type CaseFilter struct {
	Search   string // case-insensitive substring across title, description, equipment type
	Status   domain.CaseStatus
	Priority domain.Priority
}

// FilterCases returns the cases satisfying every enabled predicate,
// preserving input order.
func FilterCases(cases []domain.ServiceCase, f CaseFilter) []domain.ServiceCase {
	out := make([]domain.ServiceCase, 0, len(cases))
	for _, c := range cases {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Priority != "" && c.Priority != f.Priority {
			continue
		}
		if f.Search != "" && !caseMatches(c, f.Search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func caseMatches(c domain.ServiceCase, search string) bool {
	needle := strings.ToLower(search)
	for _, hay := range []string{c.Title, c.Description, c.EquipmentType} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}
