// Package dates decodes the loosely formatted date values clients send
// ("2024-01-31", RFC 3339 timestamps, epoch milliseconds, ...).
package dates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

var null = []byte("null")

// Date is a point in time decoded leniently from JSON.
type Date struct {
	time.Time
}

// New wraps t.
func New(t time.Time) Date {
	return Date{Time: t.UTC()}
}

// Parse interprets s as a date; zone-less inputs are read as UTC.
func Parse(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// UnmarshalJSON accepts a date string or epoch milliseconds.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return fmt.Errorf("date must not be null")
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t, err := Parse(s)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	}

	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("date must be a string or epoch milliseconds")
	}
	d.Time = time.UnixMilli(ms).UTC()
	return nil
}

// MarshalJSON renders the date as an RFC 3339 timestamp.
func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}

// NullableDate distinguishes an absent field, an explicit null and a value.
// It is meant for partial updates where null clears a column.
type NullableDate struct {
	Set   bool
	Valid bool
	Time  time.Time
}

// UnmarshalJSON is only invoked when the key is present.
func (n *NullableDate) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, null) {
		n.Valid = false
		n.Time = time.Time{}
		return nil
	}

	var d Date
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	n.Time = d.Time
	return nil
}

// Ptr returns nil for null and a pointer to the time otherwise.
func (n NullableDate) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}
