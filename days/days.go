// Package days classifies days of the week.
package days

import (
	"errors"
	"fmt"
	"strings"
)

// Day is a day of the week, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Results of GetDayType.
const (
	Weekday = "Weekday"
	Weekend = "Weekend"
)

// ErrUnknownDay is returned by Parse for names that are not a day.
var ErrUnknownDay = errors.New("unknown day")

var names = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Valid reports whether d is one of Monday..Sunday.
func (d Day) Valid() bool { return d >= Monday && d <= Sunday }

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return names[d]
}

// Parse returns the Day with the given name, ignoring case and
// surrounding space.
func Parse(name string) (Day, error) {
	name = strings.TrimSpace(name)
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", name, ErrUnknownDay)
}

// GetDayType returns Weekend for Saturday and Sunday and Weekday for any
// other day.
func GetDayType(d Day) string {
	if d == Saturday || d == Sunday {
		return Weekend
	}
	return Weekday
}
