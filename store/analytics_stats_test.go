package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"spleux/api/models"
)

var statsNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func storedEvent(typ models.EventType, device models.DeviceType, data models.EventData) models.StoredEvent {
	return models.StoredEvent{ID: "id", Type: typ, DeviceType: device, Data: data}
}

func daysAgoMillis(days float64) int64 {
	return statsNow.Add(-time.Duration(days * 24 * float64(time.Hour))).UnixMilli()
}

func TestComputeStatsEmptyLog(t *testing.T) {
	stats := ComputeStats(nil, statsNow)

	assert.Zero(t, stats.PageViews.Total)
	assert.Zero(t, stats.Visitors.Total)
	assert.Zero(t, stats.DeviceStats.Desktop)

	// Maps must be empty, never nil, so the dashboard never sees null.
	assert.NotNil(t, stats.PageViews.Pages)
	assert.NotNil(t, stats.ButtonClicks.Buttons)
	assert.NotNil(t, stats.LinkClicks.Links)
	assert.NotNil(t, stats.FormSubmits.Forms)
	assert.NotNil(t, stats.SectionViews.Sections)
	assert.NotNil(t, stats.TopReferrers)
	assert.Equal(t, statsNow.Format(time.RFC3339), stats.LastUpdated)
}

func TestComputeStatsRollingWindows(t *testing.T) {
	events := []models.StoredEvent{
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.5), UserAgent: "ua-a", Pathname: "/"}),
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(3), UserAgent: "ua-b", Pathname: "/"}),
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(20), UserAgent: "ua-c", Pathname: "/"}),
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(40), UserAgent: "ua-d", Pathname: "/"}),
	}

	stats := ComputeStats(events, statsNow)

	assert.Equal(t, 4, stats.PageViews.Total)
	assert.Equal(t, 1, stats.PageViews.Today)
	assert.Equal(t, 2, stats.PageViews.ThisWeek)
	assert.Equal(t, 3, stats.PageViews.ThisMonth)

	assert.Equal(t, 4, stats.Visitors.Total)
	assert.Equal(t, 1, stats.Visitors.Today)
	assert.Equal(t, 2, stats.Visitors.ThisWeek)
	assert.Equal(t, 3, stats.Visitors.ThisMonth)
}

func TestComputeStatsVisitorsCollapseByUserAgent(t *testing.T) {
	sameUA := "Mozilla/5.0 shared browser"
	events := []models.StoredEvent{
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), UserAgent: sameUA}),
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.2), UserAgent: sameUA}),
	}

	stats := ComputeStats(events, statsNow)

	assert.Equal(t, 2, stats.PageViews.Total)
	assert.Equal(t, 1, stats.Visitors.Total)
	assert.Equal(t, 1, stats.Visitors.Today)
}

func TestComputeStatsLabelFallbacks(t *testing.T) {
	events := []models.StoredEvent{
		storedEvent(models.EventButtonClick, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1)}),
		storedEvent(models.EventButtonClick, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), ButtonText: "Join Now"}),
		storedEvent(models.EventLinkClick, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), LinkURL: "https://t.me/spleux"}),
		storedEvent(models.EventLinkClick, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1)}),
		storedEvent(models.EventFormSubmit, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1)}),
		storedEvent(models.EventSectionView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1)}),
	}

	stats := ComputeStats(events, statsNow)

	assert.Equal(t, 1, stats.ButtonClicks.Buttons[UnknownButton])
	assert.Equal(t, 1, stats.ButtonClicks.Buttons["Join Now"])
	// Link label falls back to the URL before "Unknown Link".
	assert.Equal(t, 1, stats.LinkClicks.Links["https://t.me/spleux"])
	assert.Equal(t, 1, stats.LinkClicks.Links[UnknownLink])
	assert.Equal(t, 1, stats.FormSubmits.Forms[UnknownForm])
	assert.Equal(t, 1, stats.SectionViews.Sections[UnknownSection])
}

func TestComputeStatsPageDefaultsToRoot(t *testing.T) {
	events := []models.StoredEvent{
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), UserAgent: "ua"}),
	}

	stats := ComputeStats(events, statsNow)
	assert.Equal(t, 1, stats.PageViews.Pages["/"])
}

func TestComputeStatsReferrers(t *testing.T) {
	events := []models.StoredEvent{
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), UserAgent: "a", Referrer: "https://www.google.com/search?q=spleux"}),
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), UserAgent: "b", Referrer: "https://www.google.com/"}),
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), UserAgent: "c", Referrer: ""}),
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), UserAgent: "d", Referrer: "::not a url::"}),
	}

	stats := ComputeStats(events, statsNow)

	assert.Equal(t, map[string]int{"www.google.com": 2}, stats.TopReferrers)
}

func TestComputeStatsDeviceTallyCoversAllEventTypes(t *testing.T) {
	events := []models.StoredEvent{
		storedEvent(models.EventPageView, models.DeviceDesktop, models.EventData{Timestamp: daysAgoMillis(0.1), UserAgent: "a"}),
		storedEvent(models.EventButtonClick, models.DeviceMobile, models.EventData{Timestamp: daysAgoMillis(0.1), ButtonText: "x"}),
		storedEvent(models.EventSectionView, models.DeviceTablet, models.EventData{Timestamp: daysAgoMillis(0.1), SectionName: "faq"}),
	}

	stats := ComputeStats(events, statsNow)

	assert.Equal(t, 1, stats.DeviceStats.Desktop)
	assert.Equal(t, 1, stats.DeviceStats.Mobile)
	assert.Equal(t, 1, stats.DeviceStats.Tablet)
}
