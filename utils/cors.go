package utils

import (
	"net/url"
	"strings"
)

// IsAllowedOrigin checks whether an Origin header value should be
// trusted. The configured site origin is always allowed; localhost and
// loopback addresses cover frontend dev servers on any port. Other
// public origins are blocked.
func IsAllowedOrigin(origin, siteURL string) bool {
	if origin == "" {
		return false
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}

	if site, err := url.Parse(siteURL); err == nil && site.Host != "" {
		if strings.EqualFold(parsed.Scheme, site.Scheme) && strings.EqualFold(parsed.Host, site.Host) {
			return true
		}
	}

	hostname := parsed.Hostname()
	return hostname == "localhost" || hostname == "127.0.0.1" || hostname == "::1"
}
