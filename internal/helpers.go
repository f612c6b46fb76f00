package internal

import "time"

// FormatTimestamp renders a vote or status timestamp as ISO-8601 UTC.
func FormatTimestamp(date time.Time) string {
	return date.UTC().Format(time.RFC3339)
}

// FormatOptionalTimestamp returns "" for a nil timestamp.
func FormatOptionalTimestamp(date *time.Time) string {
	if date == nil {
		return ""
	}
	return FormatTimestamp(*date)
}
