package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Duration is an ISO-8601 period broken into clock components. Missing
// components default to zero, so "PT2M3S" has Hours 0.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration parses the PT#H#M#S period strings used by the videos
// endpoint. Day components (rare, live archives over 24h) fold into hours.
func ParseISODuration(s string) (Duration, error) {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}
	days, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	hours, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[4]))

	return Duration{
		Hours:   days*24 + hours,
		Minutes: minutes,
		Seconds: seconds,
	}, nil
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// Fixed renders HH:MM:SS with a zero-padded hour field even for short clips.
func (d Duration) Fixed() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// Compact renders H:MM:SS, or MM:SS when there is no hour component.
func (d Duration) Compact() string {
	if d.Hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
	}
	return fmt.Sprintf("%02d:%02d", d.Minutes, d.Seconds)
}
