package query

import (
	"testing"
	"time"

	"fieldcore/pkg/domain"
)

var filterNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func logFixture() []domain.ServiceLogEntry {
	day := func(d int) time.Time { return filterNow.AddDate(0, 0, -d) }
	return []domain.ServiceLogEntry{
		{Base: domain.Base{ID: "l1"}, Title: "Boiler repair", Type: "repair", Technician: "Kim", Timestamp: day(0)},
		{Base: domain.Base{ID: "l2"}, Title: "Annual check", Type: "maintenance", Technician: "Lee", Timestamp: day(3)},
		{Base: domain.Base{ID: "l3"}, Title: "Boiler install", Type: "installation", Location: "Basement", Timestamp: day(10)},
		{Base: domain.Base{ID: "l4"}, Title: "Emergency repair", Type: "repair", Content: "burst pipe", Timestamp: day(40)},
		{Base: domain.Base{ID: "l5"}, Title: "Legacy entry", Type: "repair"},
	}
}

func ids(entries []domain.ServiceLogEntry) map[string]struct{} {
	out := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		out[e.ID] = struct{}{}
	}
	return out
}

func TestDateWindowContains(t *testing.T) {
	tests := []struct {
		name   string
		window DateWindow
		t      time.Time
		want   bool
	}{
		{"all matches anything", WindowAll, time.Time{}, true},
		{"today matches same day", WindowToday, filterNow.Add(-2 * time.Hour), true},
		{"today rejects yesterday", WindowToday, filterNow.AddDate(0, 0, -1), false},
		{"7 days includes boundary day", WindowLast7Days, domain.StartOfDay(filterNow).AddDate(0, 0, -6), true},
		{"7 days rejects day before boundary", WindowLast7Days, domain.StartOfDay(filterNow).AddDate(0, 0, -7), false},
		{"30 days includes recent", WindowLast30Days, filterNow.AddDate(0, 0, -20), true},
		{"zero time never matches bounded window", WindowLast30Days, time.Time{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.window.Contains(filterNow, tc.t); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFilterLogsConjunctionEqualsIntersection(t *testing.T) {
	entries := logFixture()
	f := LogFilter{Search: "repair", Type: "repair", Window: WindowLast30Days}

	combined := FilterLogs(entries, f, filterNow)

	bySearch := ids(FilterLogs(entries, LogFilter{Search: f.Search}, filterNow))
	byType := ids(FilterLogs(entries, LogFilter{Type: f.Type}, filterNow))
	byWindow := ids(FilterLogs(entries, LogFilter{Window: f.Window}, filterNow))

	for _, e := range combined {
		for name, set := range map[string]map[string]struct{}{"search": bySearch, "type": byType, "window": byWindow} {
			if _, ok := set[e.ID]; !ok {
				t.Fatalf("conjunction result %s missing from %s-only filter", e.ID, name)
			}
		}
	}
	// And the reverse: anything in all three singles is in the conjunction.
	combinedIDs := ids(combined)
	for id := range bySearch {
		_, inType := byType[id]
		_, inWindow := byWindow[id]
		_, inCombined := combinedIDs[id]
		if inType && inWindow && !inCombined {
			t.Fatalf("%s in every single filter but missing from conjunction", id)
		}
	}
	if len(combined) != 1 || combined[0].ID != "l1" {
		t.Fatalf("expected only l1 to satisfy all predicates, got %+v", combinedIDs)
	}
}

func TestFilterLogsSearchIsCaseInsensitive(t *testing.T) {
	got := FilterLogs(logFixture(), LogFilter{Search: "BOILER"}, filterNow)
	if len(got) != 2 {
		t.Fatalf("expected 2 boiler entries, got %d", len(got))
	}
}

func TestFilterLogsPreservesOrder(t *testing.T) {
	got := FilterLogs(logFixture(), LogFilter{Type: "repair"}, filterNow)
	want := []string{"l1", "l4", "l5"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("expected order %v, got %s at %d", want, got[i].ID, i)
		}
	}
}

func TestFilterCasesConjunction(t *testing.T) {
	cases := []domain.ServiceCase{
		{Base: domain.Base{ID: "s1"}, Title: "Boiler leak", Status: domain.CaseStatusOpen, Priority: domain.PriorityHigh},
		{Base: domain.Base{ID: "s2"}, Title: "Boiler noise", Status: domain.CaseStatusCompleted, Priority: domain.PriorityHigh},
		{Base: domain.Base{ID: "s3"}, Title: "Thermostat", Status: domain.CaseStatusOpen, Priority: domain.PriorityLow},
	}
	got := FilterCases(cases, CaseFilter{Search: "boiler", Status: domain.CaseStatusOpen, Priority: domain.PriorityHigh})
	if len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("expected only s1, got %+v", got)
	}
}
