package device

import (
	"strings"
	"testing"
	"unicode/utf8"

	"authcore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolver_FingerprintPrefersExplicitID(t *testing.T) {
	r := NewResolver()

	id := r.Fingerprint(entity.DeviceContext{DeviceID: "  device-123 ", UserAgent: "curl/8.0", IP: "10.0.0.1"})

	assert.Equal(t, "device-123", id)
}

func TestResolver_FingerprintDerivedIsStable(t *testing.T) {
	r := NewResolver()
	device := entity.DeviceContext{UserAgent: "Mozilla/5.0 (X11; Linux x86_64) Firefox/120.0", IP: "10.0.0.1"}

	first := r.Fingerprint(device)
	second := r.Fingerprint(device)
	other := r.Fingerprint(entity.DeviceContext{UserAgent: device.UserAgent, IP: "10.0.0.2"})

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.True(t, strings.HasPrefix(first, fingerprintPrefix))
}

func TestResolver_FingerprintTruncatesLongIDs(t *testing.T) {
	r := NewResolver()

	id := r.Fingerprint(entity.DeviceContext{DeviceID: strings.Repeat("a", 500)})

	assert.Len(t, id, maxDeviceIDLength)
}

func TestResolver_FingerprintCutsOnRuneBoundary(t *testing.T) {
	r := NewResolver()

	// 127 ASCII bytes followed by three-byte runes: a byte cut at 128 would split a rune.
	raw := strings.Repeat("a", 127) + strings.Repeat("設備", 10)

	id := r.Fingerprint(entity.DeviceContext{DeviceID: raw})

	assert.True(t, utf8.ValidString(id))
	assert.Equal(t, strings.Repeat("a", 127), id)
}

func TestResolver_FingerprintDropsInvalidUTF8(t *testing.T) {
	r := NewResolver()

	id := r.Fingerprint(entity.DeviceContext{DeviceID: "phone-\xff\xfe-1"})

	assert.Equal(t, "phone--1", id)
}

func TestResolver_Describe(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name      string
		userAgent string
		wantName  string
		wantClass entity.DeviceClass
	}{
		{
			name:      "chrome on windows",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			wantName:  "Chrome on Windows",
			wantClass: entity.DeviceClassDesktop,
		},
		{
			name:      "safari on iphone",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			wantName:  "Safari on iPhone",
			wantClass: entity.DeviceClassMobile,
		},
		{
			name:      "chrome on android",
			userAgent: "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			wantName:  "Chrome on Android",
			wantClass: entity.DeviceClassMobile,
		},
		{
			name:      "firefox on linux",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			wantName:  "Firefox on Linux",
			wantClass: entity.DeviceClassDesktop,
		},
		{
			name:      "crawler",
			userAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			wantName:  "Googlebot",
			wantClass: entity.DeviceClassAPIClient,
		},
		{
			name:      "android okhttp app",
			userAgent: "okhttp/4.12.0",
			wantName:  "OkHttp",
			wantClass: entity.DeviceClassAPIClient,
		},
		{
			name:      "curl",
			userAgent: "curl/8.4.0",
			wantName:  "curl",
			wantClass: entity.DeviceClassAPIClient,
		},
		{
			name:      "postman",
			userAgent: "PostmanRuntime/7.36.0",
			wantName:  "Postman",
			wantClass: entity.DeviceClassAPIClient,
		},
		{
			name:      "empty",
			userAgent: "",
			wantName:  "Unknown Device",
			wantClass: entity.DeviceClassUnknown,
		},
		{
			name:      "gibberish",
			userAgent: "something-weird",
			wantName:  "Unknown Device",
			wantClass: entity.DeviceClassUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := r.Describe(entity.DeviceContext{UserAgent: tt.userAgent, IP: "1.2.3.4"})

			assert.Equal(t, tt.wantName, info.DisplayName)
			assert.Equal(t, tt.wantClass, info.Class)
			assert.Equal(t, tt.userAgent, info.UserAgent)
			assert.Equal(t, "1.2.3.4", info.IP)
		})
	}
}
