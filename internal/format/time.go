package format

import (
	"fmt"
	"time"
)

// CreatedAt converts the header's raw Unix-seconds timestamp to a UTC time.
// It panics on a timestamp that does not fit the platform's time
// representation, per the query-time corruption policy.
func CreatedAt(raw uint64) time.Time {
	if raw > 1<<62 {
		panic(fmt.Sprintf("locdb: corrupt database: invalid created_at header value %d", raw))
	}
	return time.Unix(int64(raw), 0).UTC()
}
