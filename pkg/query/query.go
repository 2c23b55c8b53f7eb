// Package query provides small helpers for parsing URL query parameters.
package query

import "strings"

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// SortOrder validates a sort parameter against the allowed values for the
// endpoint. The first allowed value doubles as the default when the
// parameter is empty or unknown.
func SortOrder(val string, allowed ...string) string {
	for _, a := range allowed {
		if val == a {
			return val
		}
	}
	if len(allowed) == 0 {
		return ""
	}
	return allowed[0]
}
