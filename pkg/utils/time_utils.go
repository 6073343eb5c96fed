package utils

import "time"

// Darwin time (ACST, +09:30, no daylight saving)
var darwinLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Australia/Darwin"); err == nil {
		return loc
	}
	return time.FixedZone("ACST", 9*3600+30*60)
}()

func DarwinLocation() *time.Location { return darwinLoc }

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsDarwin returns the zero time for t <= 0.
func FromUnixSecondsDarwin(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(darwinLoc)
}

func FormatRFC3339Darwin(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(darwinLoc).Format(time.RFC3339)
}

func FormatDateDarwin(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(darwinLoc).Format("2006-01-02")
}
