package hostruntime

import "strings"

// Browser user-agent markers, checked in order. Edge's user agent also
// contains the Chrome marker and Chrome's also contains "Safari", so the
// check order is load-bearing.
const (
	markerFirefox = "Firefox/"
	markerEdge    = "Edg/"
	markerChrome  = "Chrome/"
	markerSafari  = "Safari/"
	markerVersion = "Version/"
)

// ParseUserAgent extracts the browser product name and version from a
// user-agent string. Unknown user agents yield ("Unknown", "unknown");
// it never fails.
func ParseUserAgent(ua string) (name, version string) {
	switch {
	case strings.Contains(ua, markerFirefox):
		return "Firefox", uaVersion(ua, markerFirefox)
	case strings.Contains(ua, markerEdge):
		return "Edge", uaVersion(ua, markerEdge)
	case strings.Contains(ua, markerChrome):
		return "Chrome", uaVersion(ua, markerChrome)
	case strings.Contains(ua, markerSafari):
		// Safari reports its product version in a separate Version/ token.
		return "Safari", uaVersion(ua, markerVersion)
	}
	return BrowserUnknown, VersionUnknown
}

// uaVersion returns the token following marker, up to the next space.
func uaVersion(ua, marker string) string {
	i := strings.Index(ua, marker)
	if i < 0 {
		return VersionUnknown
	}
	rest := ua[i+len(marker):]
	if j := strings.IndexByte(rest, ' '); j >= 0 {
		rest = rest[:j]
	}
	if rest == "" {
		return VersionUnknown
	}
	return rest
}
