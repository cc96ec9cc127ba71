// Package availability decides whether a resource (furniture item or
// professional) is free for a requested date range, given its existing
// reservations or bookings.
package availability

import "time"

// DateRange is an inclusive calendar date range. Both endpoints are
// date-only values (midnight UTC).
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Booking is a reserved date range labelled with the event it belongs to.
type Booking struct {
	EventName string `json:"event_name"`
	DateRange
}

// Valid reports whether the range's end does not precede its start.
func (r DateRange) Valid() bool {
	return !r.End.Before(r.Start)
}

// Overlaps reports whether two ranges share at least one day. Boundaries
// are inclusive: a range ending on day X conflicts with one starting on
// day X.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// IsAvailable reports whether candidate is free against every range in
// existing. An inverted candidate (end before start) is never available.
func IsAvailable(candidate DateRange, existing []DateRange) bool {
	if !candidate.Valid() {
		return false
	}
	for _, r := range existing {
		if candidate.Overlaps(r) {
			return false
		}
	}
	return true
}

// BookingRanges extracts the plain date ranges from a booking list so the
// same check serves furniture reservations and professional bookings.
func BookingRanges(bookings []Booking) []DateRange {
	ranges := make([]DateRange, len(bookings))
	for i, b := range bookings {
		ranges[i] = b.DateRange
	}
	return ranges
}

// ParseDate parses a date-only string in the form "2006-01-02".
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// MustDate parses a date-only string, panicking on malformed input.
// Intended for static catalog data and tests.
func MustDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseRange parses a pair of date-only strings into a DateRange.
func ParseRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: s, End: e}, nil
}
