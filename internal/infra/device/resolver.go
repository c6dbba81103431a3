// Package device derives session keys and display metadata from transport-level device hints.
package device

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"authcore/internal/domain/entity"
	"authcore/internal/domain/service"

	"github.com/mssola/useragent"
)

const (
	maxDeviceIDLength = 128
	fingerprintPrefix = "fp-"
	unknownDevice     = "Unknown Device"
)

type resolver struct{}

// NewResolver creates the device resolver.
func NewResolver() service.DeviceResolver {
	return resolver{}
}

// Fingerprint prefers the explicit client id. Without one it hashes ip and user agent, which is
// best-effort grouping and never an authentication factor.
func (resolver) Fingerprint(device entity.DeviceContext) string {
	if id := normalizeDeviceID(device.DeviceID); id != "" {
		return id
	}

	sum := sha256.Sum256([]byte(device.IP + "|" + device.UserAgent))

	return fingerprintPrefix + hex.EncodeToString(sum[:16])
}

// normalizeDeviceID trims the id, drops invalid UTF-8 and cuts it to maxDeviceIDLength bytes on a
// rune boundary, so it always fits the device_id column.
func normalizeDeviceID(raw string) string {
	id := strings.ToValidUTF8(strings.TrimSpace(raw), "")
	if len(id) <= maxDeviceIDLength {
		return id
	}

	cut := maxDeviceIDLength
	for cut > 0 && !utf8.RuneStart(id[cut]) {
		cut--
	}

	return id[:cut]
}

// Describe classifies the user agent into a display name and device class.
func (resolver) Describe(device entity.DeviceContext) entity.DeviceInfo {
	name, class := classify(device.UserAgent)

	return entity.DeviceInfo{
		DisplayName: name,
		Class:       class,
		UserAgent:   device.UserAgent,
		IP:          device.IP,
	}
}

// HTTP libraries and API tools do not look like browsers to a UA parser, so they are recognized
// by product token first.
//
//nolint:gochecknoglobals
var apiClients = []struct{ token, label string }{
	{"postmanruntime", "Postman"},
	{"insomnia", "Insomnia"},
	{"curl/", "curl"},
	{"wget/", "Wget"},
	{"httpie", "HTTPie"},
	{"python-requests", "Python Requests"},
	{"go-http-client", "Go HTTP Client"},
	{"okhttp", "OkHttp"},
	{"axios", "Axios"},
	{"node-fetch", "Node Fetch"},
}

func classify(userAgent string) (string, entity.DeviceClass) {
	raw := strings.TrimSpace(userAgent)
	if raw == "" {
		return unknownDevice, entity.DeviceClassUnknown
	}

	lower := strings.ToLower(raw)
	for _, client := range apiClients {
		if strings.Contains(lower, client.token) {
			return client.label, entity.DeviceClassAPIClient
		}
	}

	ua := useragent.New(raw)
	browser, _ := ua.Browser()
	if ua.Bot() {
		if browser == "" {
			browser = "Bot"
		}

		return browser, entity.DeviceClassAPIClient
	}

	// Anything else that is not a Mozilla-compatible browser string is opaque to us.
	if ua.Mozilla() == "" {
		return unknownDevice, entity.DeviceClassUnknown
	}

	os := osLabel(ua)

	class := entity.DeviceClassUnknown
	switch {
	case ua.Mobile():
		class = entity.DeviceClassMobile
	case os != "":
		class = entity.DeviceClassDesktop
	}

	switch {
	case browser != "" && os != "":
		return browser + " on " + os, class
	case browser != "":
		return browser, class
	case os != "":
		return os + " Device", class
	default:
		return unknownDevice, class
	}
}

// osLabel turns the parsed platform and OS into a short display name.
func osLabel(ua *useragent.UserAgent) string {
	switch platform := ua.Platform(); platform {
	case "iPhone", "iPad", "iPod":
		return platform
	}

	name := ua.OSInfo().Name
	switch lower := strings.ToLower(name); {
	case lower == "":
		return ""
	case strings.HasPrefix(lower, "mac os"):
		return "macOS"
	case strings.HasPrefix(lower, "windows"):
		return "Windows"
	case strings.HasPrefix(lower, "android"):
		return "Android"
	case strings.HasPrefix(lower, "cros"), strings.HasPrefix(lower, "chrome os"):
		return "ChromeOS"
	case strings.HasPrefix(lower, "linux"):
		return "Linux"
	default:
		return name
	}
}
