package repository

import "time"

// nowUTC truncates to the microsecond precision of DATETIME(6) columns.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
