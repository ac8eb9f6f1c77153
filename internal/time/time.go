package time

import "time"

const stampLayout = "20060102150405"

// Stamp formats the time as a compact, sortable local time stamp e.g. 20161225134501.
func Stamp(t time.Time) string {
	return t.Local().Format(stampLayout)
}
