package sessions

import (
	"sort"
	"time"
)

// Tab identifies a dashboard triage view.
type Tab string

const (
	TabAll      Tab = "all"
	TabAlerts   Tab = "alerts"
	TabActioned Tab = "actioned"
	TabExpired  Tab = "expired"
)

// ParseTab maps a query-string value to a Tab, defaulting to TabAll.
func ParseTab(value string) Tab {
	switch Tab(value) {
	case TabAlerts, TabActioned, TabExpired:
		return Tab(value)
	default:
		return TabAll
	}
}

// Filter returns the sessions visible on a tab, classified at the given
// instant:
//
//   - alerts: low score, not actioned, not yet expired
//   - actioned: fully resolved
//   - expired: ran out the clock without being actioned
//   - all: everything
func Filter(list []Session, tab Tab, now time.Time) []Session {
	if tab == TabAll {
		return list
	}

	var out []Session
	for _, s := range list {
		flags := Classify(s, now)
		switch tab {
		case TabAlerts:
			if flags.LowScore && !flags.IsActioned && !flags.IsExpired {
				out = append(out, s)
			}
		case TabActioned:
			if flags.IsActioned {
				out = append(out, s)
			}
		case TabExpired:
			if flags.IsExpired && !flags.IsActioned {
				out = append(out, s)
			}
		}
	}
	return out
}

// SortByCreatedAt orders sessions by start time. The sort is stable, so
// sessions sharing a timestamp keep their original relative order.
func SortByCreatedAt(list []Session, ascending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		if ascending {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
