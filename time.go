package faker

import (
	"strconv"
	"time"
)

// Formats accepted by Time.RecentFormat.
const (
	TimeFormatAbbr = "abbr"
	TimeFormatDate = "date"
	TimeFormatWide = "wide"
	TimeFormatUnix = "unix"
)

const (
	abbrTimeLayout = "3:04:05 PM"
	wideTimeLayout = "15:04:05 GMT-0700 (MST)"
)

// Time reports the current time in several shapes. It reads the clock set
// with WithClock and draws nothing.
type Time struct {
	f *Faker
}

// Recent returns the current time.
func (t *Time) Recent() time.Time {
	return t.f.now()
}

// RecentFormat returns the current time as text:
//
//	abbr  "12:34:07 AM"
//	wide  "00:34:11 GMT+0100 (CET)"
//	unix  milliseconds since the epoch, "1643067231856"
//	date  RFC 3339 with nanoseconds
//
// An empty format means unix; any other format falls back to date.
func (t *Time) RecentFormat(format string) string {
	now := t.Recent()
	switch format {
	case TimeFormatAbbr:
		return now.Format(abbrTimeLayout)
	case TimeFormatWide:
		return now.Format(wideTimeLayout)
	case TimeFormatUnix, "":
		return strconv.FormatInt(now.UnixMilli(), 10)
	default:
		return now.Format(time.RFC3339Nano)
	}
}

// past returns a time up to years before ref, at least one second earlier.
func (t *Time) past(years int, ref time.Time) time.Time {
	ms := t.f.between(1000, max(years, 1)*365*24*3600*1000)
	return ref.Add(-time.Duration(ms) * time.Millisecond)
}
