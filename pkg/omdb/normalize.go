package omdb

import (
	"strconv"
	"strings"
)

// isMissing reports whether a field value is the OMDb "no data" sentinel.
func isMissing(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || strings.EqualFold(trimmed, "N/A")
}

func parseOptional(value string) *string {
	if isMissing(value) {
		return nil
	}
	trimmed := strings.TrimSpace(value)
	return &trimmed
}

// parseYear extracts the leading year from values like "2010", "2010–" or
// "2010-2012". Anything unparseable becomes nil, never zero.
func parseYear(value string) *int {
	if isMissing(value) {
		return nil
	}
	trimmed := strings.TrimSpace(value)

	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}

	year, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return nil
	}
	return &year
}

// parseRating normalizes ratings that arrive as strings, with trailing ".0"
// or as "8.5/10". Unparseable values become nil, never zero, so a missing
// rating stays distinguishable from "rated zero".
func parseRating(value string) *float64 {
	if isMissing(value) {
		return nil
	}
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimSuffix(trimmed, "/10")

	rating, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &rating
}
