package models

// EventType classifies a tracked user interaction.
type EventType string

const (
	EventPageView    EventType = "page_view"
	EventButtonClick EventType = "button_click"
	EventLinkClick   EventType = "link_click"
	EventFormSubmit  EventType = "form_submit"
	EventSectionView EventType = "section_view"
)

// DeviceType is derived from the user-agent string at ingest.
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
)

// EventData carries the common fields plus the one type-specific field
// each event type fills in. Timestamp is Unix epoch milliseconds, set by
// the client.
type EventData struct {
	Page        string `json:"page,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
	LinkURL     string `json:"linkUrl,omitempty"`
	LinkText    string `json:"linkText,omitempty"`
	FormName    string `json:"formName,omitempty"`
	SectionName string `json:"sectionName,omitempty"`
	Timestamp   int64  `json:"timestamp" binding:"required"`
	UserAgent   string `json:"userAgent"`
	Referrer    string `json:"referrer"`
	Pathname    string `json:"pathname"`
}

// AnalyticsEvent is the payload the tracking script posts.
type AnalyticsEvent struct {
	Type EventType `json:"type" binding:"required,oneof=page_view button_click link_click form_submit section_view"`
	Data EventData `json:"data" binding:"required"`
}

// StoredEvent is an AnalyticsEvent as it sits in the event log, with the
// id and device type assigned at ingest. Immutable once written.
type StoredEvent struct {
	ID         string     `json:"id"`
	Type       EventType  `json:"type"`
	DeviceType DeviceType `json:"deviceType"`
	Data       EventData  `json:"data"`
}
