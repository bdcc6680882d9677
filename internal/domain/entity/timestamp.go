package entity

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is the wire layout for timestamps. Values carry no zone.
const TimestampLayout = "2006-01-02T15:04:05.999999"

var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02",
}

// Timestamp is a date and time without timezone, stored as a TIMESTAMP column.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp accepts the wire layout, a space separated variant, RFC 3339 and a bare date.
// Zone offsets are dropped and the wall clock is kept.
func ParseTimestamp(value string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: wallClock(t)}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", value)
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func (t Timestamp) String() string {
	return t.Time.Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimePtr returns the underlying time or nil, for use as a nullable query argument.
func (t *Timestamp) TimePtr() *time.Time {
	if t == nil {
		return nil
	}
	wall := wallClock(t.Time)
	return &wall
}

// TimestampFromPtr is the inverse of TimePtr.
func TimestampFromPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := Timestamp{Time: wallClock(*t)}
	return &ts
}
