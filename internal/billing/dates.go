package billing

import (
	"math"
	"time"
)

// MonthsBetween returns the signed fractional number of calendar months
// from original to target. The whole part is counted in calendar months
// with month-end clamping (Jan 31 plus one month anchors at Feb 28);
// the remainder is expressed as a fraction of the anchor-to-anchor span.
func MonthsBetween(target, original time.Time) float64 {
	if target.Before(original) {
		return -MonthsBetween(original, target)
	}

	whole := (target.Year()-original.Year())*12 + int(target.Month()) - int(original.Month())
	anchor := addMonthsClamped(original, whole)

	if target.Before(anchor) {
		prev := addMonthsClamped(original, whole-1)
		span := anchor.Sub(prev)
		if span <= 0 {
			return float64(whole)
		}
		return float64(whole) - float64(anchor.Sub(target))/float64(span)
	}

	next := addMonthsClamped(original, whole+1)
	span := next.Sub(anchor)
	if span <= 0 {
		return float64(whole)
	}
	return float64(whole) + float64(target.Sub(anchor))/float64(span)
}

// addMonthsClamped adds months to t, clamping the day to the last day
// of the destination month instead of letting it spill into the next
// one (Jan 31 plus one month is Feb 28, not Mar 3).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, h, min, sec, t.Nanosecond(), t.Location())
}

// IsWithinOneMonthDiff reports whether the two dates are at most one
// fractional month apart. Used to gate move-in-date edits: shifting a
// billing anchor by more than one cycle requires an explicit migration,
// not an edit.
func IsWithinOneMonthDiff(target, original time.Time) bool {
	return math.Abs(MonthsBetween(target, original)) <= 1.0
}
