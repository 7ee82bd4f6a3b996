package appointment

import "time"

// ParseDate accepts RFC 3339 or a shop-local "2006-01-02 15:04" timestamp.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, loc)
}
