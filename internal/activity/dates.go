package activity

import "time"

// Date helpers for the generators. All comparisons are done at calendar-day
// granularity so that time-of-day and zone offsets on stored dates never
// shift a reminder across a day boundary.

// compareDay orders two instants by calendar day: -1 if a is an earlier
// day than b, 0 if they fall on the same day, 1 otherwise.
func compareDay(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	if ay != by {
		if ay < by {
			return -1
		}
		return 1
	}
	if am != bm {
		if am < bm {
			return -1
		}
		return 1
	}
	if ad != bd {
		if ad < bd {
			return -1
		}
		return 1
	}
	return 0
}

// sameDay reports whether a and b fall on the same calendar day
func sameDay(a, b time.Time) bool {
	return compareDay(a, b) == 0
}

// onOrAfterDay reports whether a falls on the same calendar day as b or later
func onOrAfterDay(a, b time.Time) bool {
	return compareDay(a, b) >= 0
}

// firstOfMonth returns midnight on the first day of t's month, offset by
// the given number of calendar months. time.Date normalizes month
// overflow, so an offset past December rolls into the next year.
func firstOfMonth(t time.Time, offsetMonths int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offsetMonths), 1, 0, 0, 0, 0, time.UTC)
}

// monthDiff returns the calendar month difference a - b, ignoring the day
// of month. December 2024 minus October 2024 is 2 regardless of the days.
func monthDiff(a, b time.Time) int {
	return (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
}
