package utils

import (
	"regexp"

	"spleux/api/models"
)

// Tablet patterns must be checked before mobile patterns: many tablet
// user agents (iPad Silk, PlayBook) also match the mobile list.
var (
	tabletPattern = regexp.MustCompile(`(?i)tablet|ipad|playbook|silk`)
	mobilePattern = regexp.MustCompile(`(?i)mobile|iphone|ipod|android|blackberry|opera|mini|windows\sce|palm|smartphone|iemobile`)
)

// ClassifyDevice maps a raw user-agent string to a device type.
// Unrecognized or empty user agents count as desktop.
func ClassifyDevice(userAgent string) models.DeviceType {
	if tabletPattern.MatchString(userAgent) {
		return models.DeviceTablet
	}
	if mobilePattern.MatchString(userAgent) {
		return models.DeviceMobile
	}
	return models.DeviceDesktop
}
