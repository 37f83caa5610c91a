package hostruntime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name        string
		ua          string
		wantName    string
		wantVersion string
	}{
		{
			name:        "chrome",
			ua:          chromeUA,
			wantName:    "Chrome",
			wantVersion: "91.0.4472.124",
		},
		{
			name:        "firefox",
			ua:          "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
			wantName:    "Firefox",
			wantVersion: "115.0",
		},
		{
			// Edge's user agent also contains the Chrome and Safari markers.
			name:        "edge before chrome",
			ua:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59",
			wantName:    "Edge",
			wantVersion: "91.0.864.59",
		},
		{
			// Safari's product version lives in the Version/ token.
			name:        "safari",
			ua:          "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.1 Safari/605.1.15",
			wantName:    "Safari",
			wantVersion: "16.1",
		},
		{
			name:        "unknown user agent",
			ua:          "curl/8.0.1",
			wantName:    "Unknown",
			wantVersion: "unknown",
		},
		{
			name:        "empty user agent",
			ua:          "",
			wantName:    "Unknown",
			wantVersion: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, version := ParseUserAgent(tt.ua)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantVersion, version)
		})
	}
}

func TestParseUserAgent_Idempotent(t *testing.T) {
	name1, version1 := ParseUserAgent(chromeUA)
	name2, version2 := ParseUserAgent(chromeUA)

	assert.Equal(t, name1, name2)
	assert.Equal(t, version1, version2)
}

func TestParseUserAgent_VersionAtEndOfString(t *testing.T) {
	name, version := ParseUserAgent("Mozilla/5.0 Gecko/20100101 Firefox/115.0")
	assert.Equal(t, "Firefox", name)
	assert.Equal(t, "115.0", version)
}
