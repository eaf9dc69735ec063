package query

import (
	"sort"

	"time"

	"fieldcore/pkg/domain"
)

// SortLogsByTimestamp orders entries by visit timestamp with no secondary
// key; equal timestamps keep their storage order.
func SortLogsByTimestamp(entries []domain.ServiceLogEntry, ascending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if ascending {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		}
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}

// SortRemindersByRelevance orders reminders the way the list screen shows
// them: overdue first, then due today, then everything else by ascending due
// date. Completed reminders carry no relevance boost; they sort by due date
// like any other non-urgent entry.
func SortRemindersByRelevance(reminders []domain.ServiceReminder, now time.Time) {
	sort.SliceStable(reminders, func(i, j int) bool {
		ri, rj := reminderRank(reminders[i], now), reminderRank(reminders[j], now)
		if ri != rj {
			return ri < rj
		}
		return reminders[i].DueDate.Before(reminders[j].DueDate)
	})
}

func reminderRank(r domain.ServiceReminder, now time.Time) int {
	switch {
	case r.IsOverdue(now):
		return 0
	case r.IsDueToday(now):
		return 1
	default:
		return 2
	}
}
