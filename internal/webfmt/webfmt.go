// Package webfmt holds the pure formatting and ordering rules shared by the
// public renderer and the admin panel: 12-hour clock formatting, calendar-date
// formatting, HTML escaping, order-field sorting and past/upcoming bucketing.
// Nothing here touches the store or the clock; "today" is always a parameter.
package webfmt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tigerwc/clubsite/internal/content"
)

// FormatTime converts a 24-hour "HH:MM" string to "h:mm AM/PM".
// Empty or malformed input yields an empty string.
func FormatTime(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ""
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ""
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	hour := h % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, m, suffix)
}

// htmlEscaper replaces the five reserved characters with named entities.
// A single Replacer pass never rescans its own output, so one application
// escapes exactly once; callers must not re-escape already-escaped text.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes text for interpolation into markup.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// ParseDate parses a calendar-date string at local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(content.DateLayout, s, time.Local)
}

// Midnight normalizes t to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDateShort renders a calendar-date string as e.g. "Jun 1, 2025".
// Malformed input yields an empty string.
func FormatDateShort(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateLong renders a timestamp as e.g. "June 1, 2025".
func FormatDateLong(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatMonth renders the abbreviated month of a calendar-date string.
func FormatMonth(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return t.Format("Jan")
}

// FormatDay renders the day-of-month of a calendar-date string.
func FormatDay(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return strconv.Itoa(t.Day())
}

// FormatCompetitionRange renders a single date, or "start – end" with an
// en-dash when endDate differs from date.
func FormatCompetitionRange(date, endDate string) string {
	if endDate == "" || endDate == date {
		return FormatDateShort(date)
	}
	return FormatDateShort(date) + " – " + FormatDateShort(endDate)
}

// SortSlotsByOrder returns the slots sorted ascending by order. The sort is
// stable: equal order values keep their input order.
func SortSlotsByOrder(slots []content.ScheduleSlot) []content.ScheduleSlot {
	out := append([]content.ScheduleSlot(nil), slots...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// SortSponsorsByOrder returns the sponsors sorted ascending by order, stable.
func SortSponsorsByOrder(sponsors []content.Sponsor) []content.Sponsor {
	out := append([]content.Sponsor(nil), sponsors...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// EffectiveEnd returns the event's end date when set, else its start date.
func EffectiveEnd(e content.CompetitionEvent) string {
	if e.EndDate != "" {
		return e.EndDate
	}
	return e.Date
}

// IsPast reports whether the event's effective end date is strictly before
// today's calendar day. Time-of-day is ignored.
func IsPast(e content.CompetitionEvent, today time.Time) bool {
	end, err := ParseDate(EffectiveEnd(e))
	if err != nil {
		return false
	}
	return end.Before(Midnight(today))
}

// BucketByDate partitions events into upcoming (effective end date on or
// after today) and past. Upcoming keeps the input order; past is returned
// most recently past first.
func BucketByDate(events []content.CompetitionEvent, today time.Time) (upcoming, past []content.CompetitionEvent) {
	for _, e := range events {
		if IsPast(e, today) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(past, func(i, j int) bool {
		return EffectiveEnd(past[i]) > EffectiveEnd(past[j])
	})
	return upcoming, past
}
