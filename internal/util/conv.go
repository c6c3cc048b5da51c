package util

import (
	"strconv"
	"strings"
)

// ParseLimitOffset reads pagination query values, falling back to defaults on
// bad input and clamping limit to [1, MaxPageLimit].
func ParseLimitOffset(limitRaw, offsetRaw string) (int, int) {
	limit, err := strconv.Atoi(strings.TrimSpace(limitRaw))
	if err != nil || limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	offset, err := strconv.Atoi(strings.TrimSpace(offsetRaw))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ParseBoolFlag accepts the usual spellings (1/0, true/false, yes/no, on/off).
func ParseBoolFlag(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y", "on":
		return true
	case "0", "f", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
