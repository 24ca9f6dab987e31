// Copyright (c) 2026 Filmorate. All rights reserved.

/*
Package date provides a calendar date type serialized as "YYYY-MM-DD".

It wraps [time.Time] so that JSON payloads and database columns exchange plain
dates without a time-of-day or timezone component.
*/
package date

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format for dates, both in JSON and in SQL DATE columns.
const Layout = "2006-01-02"

// Date is a calendar date with day precision. The zero value is the zero time.
type Date struct {
	time.Time
}

// New constructs a Date from year, month, and day in UTC.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a [time.Time] to day precision in UTC.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current date in UTC.
func Today() Date {
	return FromTime(time.Now().UTC())
}

// Parse converts a "YYYY-MM-DD" string into a Date.
func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("date: invalid value %q: %w", value, err)
	}
	return Date{Time: t}, nil
}

// String returns the date in "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.Format(Layout)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(Layout) + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan implements [database/sql.Scanner] so pgx can read DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = FromTime(v)
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
}

// Value implements [driver.Valuer] so pgx can write DATE columns.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}
