package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const OpeningHoursConstraints = "Opening hours should be two 24-hour times HH:MM-HH:MM (e.g. 09:00-17:30); " +
	"a closing time earlier than the opening time means the attraction is open past midnight"

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// OpeningHours is a daily open interval. When ClosesAt is earlier than OpensAt
// the interval spans midnight; equal times mean open around the clock.
type OpeningHours struct {
	set      bool
	opensAt  int // minutes after midnight
	closesAt int
}

// NewOpeningHours parses "HH:MM-HH:MM". An en dash is accepted as separator.
func NewOpeningHours(s string) (OpeningHours, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), "–", "-")
	opens, closes, ok := strings.Cut(normalized, "-")
	if !ok {
		return OpeningHours{}, invalid("opening hours", s, OpeningHoursConstraints)
	}
	opensAt, ok := parseClock(strings.TrimSpace(opens))
	if !ok {
		return OpeningHours{}, invalid("opening hours", s, OpeningHoursConstraints)
	}
	closesAt, ok := parseClock(strings.TrimSpace(closes))
	if !ok {
		return OpeningHours{}, invalid("opening hours", s, OpeningHoursConstraints)
	}
	return OpeningHours{set: true, opensAt: opensAt, closesAt: closesAt}, nil
}

func parseClock(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsSet reports whether opening hours were provided.
func (h OpeningHours) IsSet() bool { return h.set }

func (h OpeningHours) OpensAt() string  { return formatClock(h.opensAt) }
func (h OpeningHours) ClosesAt() string { return formatClock(h.closesAt) }

// SpansMidnight reports whether the attraction closes on the following day.
func (h OpeningHours) SpansMidnight() bool { return h.set && h.closesAt < h.opensAt }

// IsOpenAt reports whether t's wall-clock time falls inside the interval.
// Unset hours are treated as always open.
func (h OpeningHours) IsOpenAt(t time.Time) bool {
	if !h.set || h.opensAt == h.closesAt {
		return true
	}
	now := t.Hour()*60 + t.Minute()
	if h.opensAt < h.closesAt {
		return now >= h.opensAt && now < h.closesAt
	}
	return now >= h.opensAt || now < h.closesAt
}

func (h OpeningHours) String() string {
	if !h.set {
		return ""
	}
	return h.OpensAt() + "-" + h.ClosesAt()
}
