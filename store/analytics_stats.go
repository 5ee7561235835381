package store

import (
	"net/url"
	"time"

	"spleux/api/models"
)

// Label fallbacks when an event arrives without its type-specific field.
const (
	UnknownButton  = "Unknown Button"
	UnknownLink    = "Unknown Link"
	UnknownForm    = "Unknown Form"
	UnknownSection = "Unknown Section"
)

const millisPerDay = 24 * 60 * 60 * 1000

// withinWindow reports whether a millisecond timestamp falls inside the
// rolling window ending at now. Windows are anchored to the query time,
// not calendar boundaries.
func withinWindow(tsMillis int64, now time.Time, days int) bool {
	return tsMillis >= now.UnixMilli()-int64(days)*millisPerDay
}

// ComputeStats makes a single pass over the full event log and produces
// the dashboard rollup. Nothing is cached: the log is capped at
// MaxStoredEvents, which is what bounds the cost of recomputing.
func ComputeStats(events []models.StoredEvent, now time.Time) models.AnalyticsStats {
	stats := models.AnalyticsStats{
		PageViews:    models.PageViewStats{Pages: map[string]int{}},
		ButtonClicks: models.ButtonClickStats{Buttons: map[string]int{}},
		LinkClicks:   models.LinkClickStats{Links: map[string]int{}},
		FormSubmits:  models.FormSubmitStats{Forms: map[string]int{}},
		SectionViews: models.SectionViewStats{Sections: map[string]int{}},
		TopReferrers: map[string]int{},
		LastUpdated:  now.UTC().Format(time.RFC3339),
	}

	// Unique visitors keyed by raw user-agent string, page views only.
	uaTotal := map[string]struct{}{}
	uaToday := map[string]struct{}{}
	uaWeek := map[string]struct{}{}
	uaMonth := map[string]struct{}{}

	for _, e := range events {
		switch e.DeviceType {
		case models.DeviceMobile:
			stats.DeviceStats.Mobile++
		case models.DeviceTablet:
			stats.DeviceStats.Tablet++
		default:
			stats.DeviceStats.Desktop++
		}

		switch e.Type {
		case models.EventPageView:
			stats.PageViews.Total++
			if withinWindow(e.Data.Timestamp, now, 1) {
				stats.PageViews.Today++
			}
			if withinWindow(e.Data.Timestamp, now, 7) {
				stats.PageViews.ThisWeek++
			}
			if withinWindow(e.Data.Timestamp, now, 30) {
				stats.PageViews.ThisMonth++
			}

			page := e.Data.Pathname
			if page == "" {
				page = "/"
			}
			stats.PageViews.Pages[page]++

			ua := e.Data.UserAgent
			uaTotal[ua] = struct{}{}
			if withinWindow(e.Data.Timestamp, now, 1) {
				uaToday[ua] = struct{}{}
			}
			if withinWindow(e.Data.Timestamp, now, 7) {
				uaWeek[ua] = struct{}{}
			}
			if withinWindow(e.Data.Timestamp, now, 30) {
				uaMonth[ua] = struct{}{}
			}

			if host := referrerHost(e.Data.Referrer); host != "" {
				stats.TopReferrers[host]++
			}

		case models.EventButtonClick:
			stats.ButtonClicks.Total++
			stats.ButtonClicks.Buttons[labelOr(e.Data.ButtonText, UnknownButton)]++

		case models.EventLinkClick:
			stats.LinkClicks.Total++
			label := e.Data.LinkText
			if label == "" {
				label = e.Data.LinkURL
			}
			stats.LinkClicks.Links[labelOr(label, UnknownLink)]++

		case models.EventFormSubmit:
			stats.FormSubmits.Total++
			stats.FormSubmits.Forms[labelOr(e.Data.FormName, UnknownForm)]++

		case models.EventSectionView:
			stats.SectionViews.Total++
			stats.SectionViews.Sections[labelOr(e.Data.SectionName, UnknownSection)]++
		}
	}

	stats.Visitors = models.VisitorStats{
		Total:     len(uaTotal),
		Today:     len(uaToday),
		ThisWeek:  len(uaWeek),
		ThisMonth: len(uaMonth),
	}

	return stats
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

// referrerHost extracts the hostname from a referrer URL. Empty and
// unparseable referrers are skipped entirely.
func referrerHost(referrer string) string {
	if referrer == "" {
		return ""
	}
	u, err := url.Parse(referrer)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
