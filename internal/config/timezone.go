package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseLocation resolves a clock.timezone value. It accepts "Local" or an
// empty string for the machine zone, "UTC"/"GMT", IANA names like
// "Asia/Riyadh", and fixed offsets like "UTC+3", "+05:30" or "-7".
// Fixed offsets never observe daylight saving time.
func ParseLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	switch {
	case tz == "" || strings.EqualFold(tz, "Local"):
		return time.Local, nil
	case strings.EqualFold(tz, "UTC") || strings.EqualFold(tz, "GMT") || strings.EqualFold(tz, "Etc/UTC"):
		return time.UTC, nil
	}

	if loc, err := time.LoadLocation(tz); err == nil {
		return loc, nil
	}

	offset, ok := parseUTCOffset(tz)
	if !ok {
		return nil, fmt.Errorf("unsupported timezone %q", tz)
	}
	return time.FixedZone(offsetName(offset), offset), nil
}

// parseUTCOffset returns the offset in seconds of "+3", "-03:30" or "UTC+5:30".
func parseUTCOffset(tz string) (int, bool) {
	s := tz
	if strings.HasPrefix(strings.ToUpper(s), "UTC") {
		s = strings.TrimSpace(s[3:])
	}
	if len(s) < 2 {
		return 0, false
	}

	var sign int
	switch s[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, false
	}

	hh, mm, found := strings.Cut(s[1:], ":")
	if !found {
		mm = "0"
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 14 || m < 0 || m >= 60 {
		return 0, false
	}
	return sign * (h*3600 + m*60), true
}

func offsetName(offset int) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offset/3600, (offset%3600)/60)
}
