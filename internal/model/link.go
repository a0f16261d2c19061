package model

import "net/url"

// ParseLink parses an item link. Only absolute URLs are accepted; anything
// else, including links with stray leading whitespace, is rejected.
func ParseLink(raw string) (*url.URL, bool) {
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	return u, true
}
