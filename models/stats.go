package models

// AnalyticsStats is the rollup the admin dashboard renders. Every map is
// initialized so an empty event log serializes to empty objects, never null.
type AnalyticsStats struct {
	PageViews    PageViewStats    `json:"pageViews"`
	ButtonClicks ButtonClickStats `json:"buttonClicks"`
	LinkClicks   LinkClickStats   `json:"linkClicks"`
	FormSubmits  FormSubmitStats  `json:"formSubmits"`
	SectionViews SectionViewStats `json:"sectionViews"`
	Visitors     VisitorStats     `json:"visitors"`
	TopReferrers map[string]int   `json:"topReferrers"`
	DeviceStats  DeviceStats      `json:"deviceStats"`
	LastUpdated  string           `json:"lastUpdated"`
}

type PageViewStats struct {
	Total     int            `json:"total"`
	Today     int            `json:"today"`
	ThisWeek  int            `json:"thisWeek"`
	ThisMonth int            `json:"thisMonth"`
	Pages     map[string]int `json:"pages"`
}

type ButtonClickStats struct {
	Total   int            `json:"total"`
	Buttons map[string]int `json:"buttons"`
}

type LinkClickStats struct {
	Total int            `json:"total"`
	Links map[string]int `json:"links"`
}

type FormSubmitStats struct {
	Total int            `json:"total"`
	Forms map[string]int `json:"forms"`
}

type SectionViewStats struct {
	Total    int            `json:"total"`
	Sections map[string]int `json:"sections"`
}

// VisitorStats approximates unique visitors by raw user-agent string
// equality over page_view events. Visitors sharing a browser/OS/version
// combination collapse into one; that is the accepted semantics, not a
// bug to fix.
type VisitorStats struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
}

type DeviceStats struct {
	Desktop int `json:"desktop"`
	Mobile  int `json:"mobile"`
	Tablet  int `json:"tablet"`
}
