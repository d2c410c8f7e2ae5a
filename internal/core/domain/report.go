package domain

import "time"

// DayKeyLayout is the calendar-date key used for reports and history entries.
const DayKeyLayout = "2006-01-02"

// DayKey returns the calendar date of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DayKeyLayout)
}

type Report struct {
	Date       string
	Summary    string
	ReportTime *time.Time
}

func (r Report) IsEmpty() bool {
	return r.Summary == ""
}
