// Package monitor watches operational and clinical health: facility and
// user activity levels, and follow-up performance metrics derived from
// the current dataset. State between runs lives in JSON blobs in the
// table store.
package monitor

import (
	"math"
	"time"
)

// State blob names.
const (
	stateActivityCounts  = "activity_state"
	stateActivityHistory = "activity_history"
	statePreviousMetrics = "previous_metrics"
	stateMetricsHistory  = "historical_metrics"
)

// DeclineThreshold is the percent change at or below which an activity
// decline fires. HighSeverityThreshold escalates the alert.
const (
	DeclineThreshold      = -5.0
	HighSeverityThreshold = -10.0
)

const activityHistoryLimit = 30

// ActivityCounts is one observation of active sites and users.
type ActivityCounts struct {
	ActiveSites int `json:"active_sites"`
	ActiveUsers int `json:"active_users"`
}

// HistoryPoint is a dated count in the activity history.
type HistoryPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ActivityHistory holds the trailing daily counts for sites and users.
type ActivityHistory struct {
	Sites []HistoryPoint `json:"sites"`
	Users []HistoryPoint `json:"users"`
}

// ActivityReport is the full result of one activity check.
type ActivityReport struct {
	Current            ActivityCounts  `json:"current"`
	Previous           ActivityCounts  `json:"previous"`
	SitesPercentChange float64         `json:"sites_percent_change"`
	UsersPercentChange float64         `json:"users_percent_change"`
	SiteDeclined       bool            `json:"site_activity_declined"`
	UserDeclined       bool            `json:"user_activity_declined"`
	History            ActivityHistory `json:"history"`
	LastChecked        time.Time       `json:"last_checked"`
}

// percentChange returns the relative change in percent, rounded to one
// decimal. A zero previous count yields zero so a first observation
// never reads as a decline.
func percentChange(previous, current int) float64 {
	if previous == 0 {
		return 0
	}
	change := float64(current-previous) / float64(previous) * 100
	return math.Round(change*10) / 10
}

func declined(change float64) bool {
	return change <= DeclineThreshold
}

// record appends today's counts to the history, overwriting an existing
// entry for the same date, and trims to the retention window.
func (h *ActivityHistory) record(date string, counts ActivityCounts) {
	if n := len(h.Sites); n > 0 && h.Sites[n-1].Date == date {
		h.Sites[n-1].Count = counts.ActiveSites
		h.Users[len(h.Users)-1].Count = counts.ActiveUsers
	} else {
		h.Sites = append(h.Sites, HistoryPoint{Date: date, Count: counts.ActiveSites})
		h.Users = append(h.Users, HistoryPoint{Date: date, Count: counts.ActiveUsers})
	}
	h.Sites = trimPoints(h.Sites, activityHistoryLimit)
	h.Users = trimPoints(h.Users, activityHistoryLimit)
}

func trimPoints(points []HistoryPoint, limit int) []HistoryPoint {
	if len(points) > limit {
		return points[len(points)-limit:]
	}
	return points
}
