package jikan

import (
	"net/url"
	"sort"
	"strings"
)

// RequestKey builds the canonical cache key for an endpoint path and its
// query parameters. Parameter names and the values of a repeated parameter
// are sorted, so insertion order never changes the key.
func RequestKey(path string, params url.Values) string {
	path = "/" + strings.Trim(path, "/")
	if len(params) == 0 {
		return path
	}
	norm := make(url.Values, len(params))
	for k, vs := range params {
		if len(vs) == 0 {
			continue
		}
		cp := append([]string(nil), vs...)
		sort.Strings(cp)
		norm[k] = cp
	}
	if len(norm) == 0 {
		return path
	}
	// Encode sorts by key.
	return path + "?" + norm.Encode()
}
