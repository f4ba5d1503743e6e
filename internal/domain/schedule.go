package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// DateWindow is an inclusive range of calendar days.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days in the window, both ends included.
func (w DateWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// ReleaseSchedule holds the four working windows that precede a release.
type ReleaseSchedule struct {
	ReleaseDate time.Time
	Drafting    DateWindow
	Prototyping DateWindow
	Development DateWindow
	Testing     DateWindow
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ComputeSchedule derives the release schedule from a release date.
// Weeks start on Monday. Only the calendar date of releaseDate is used.
//
//	drafting     Mon..Wed of the week 4 weeks before release
//	prototyping  Mon..Fri of the week 3 weeks before release
//	development  Mon..Fri of the week before release
//	testing      Mon of the release week..release date
func ComputeSchedule(releaseDate time.Time) ReleaseSchedule {
	d := DateOf(releaseDate)

	drafting := weekStart(weeksBefore(d, 4))
	prototyping := weekStart(weeksBefore(d, 3))
	development := weekStart(weeksBefore(d, 1))

	return ReleaseSchedule{
		ReleaseDate: d,
		Drafting:    DateWindow{Start: drafting, End: drafting.AddDate(0, 0, 2)},
		Prototyping: DateWindow{Start: prototyping, End: prototyping.AddDate(0, 0, 4)},
		Development: DateWindow{Start: development, End: development.AddDate(0, 0, 4)},
		Testing:     DateWindow{Start: weekStart(d), End: d},
	}
}

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func weeksBefore(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, -7*n)
}

// weekStart returns the Monday of the week containing d.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
