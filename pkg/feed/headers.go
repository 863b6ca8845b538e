package feed

import "net/http"

// feedAccept covers feed content types with sensible fallbacks, some servers
// refuse requests without a browser-like Accept header
const feedAccept = "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5"

// setFeedHeaders adds the user agent and accept headers used for all
// outbound feed requests
func setFeedHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", feedAccept)
	req.Header.Set("Cache-Control", "no-cache")
}
