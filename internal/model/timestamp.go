package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Timestamp is a time of day on a 24-hour clock.
// A Timestamp obtained from ParseTimestamp is always legal.
type Timestamp struct {
	Hour, Minute int
}

// ParseTimestamp interprets s as an 'H:M' time of day.
//
// Hour and minute do not need to be padded, but each has to be an integer and
// they have to be in range (0-23, 0-59). For anything else the second return
// value is false; there is no distinction between malformed and out-of-range
// input.
func ParseTimestamp(s string) (Timestamp, bool) {
	components := strings.Split(s, ":")
	if len(components) != 2 {
		return Timestamp{}, false
	}
	h, err := strconv.Atoi(components[0])
	if err != nil {
		return Timestamp{}, false
	}
	m, err := strconv.Atoi(components[1])
	if err != nil {
		return Timestamp{}, false
	}
	t := Timestamp{Hour: h, Minute: m}
	if !t.Legal() {
		return Timestamp{}, false
	}
	return t, true
}

// String returns the timestamp as 'HH:MM'.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Legal reports whether hour and minute are both in range.
func (t Timestamp) Legal() bool {
	return (t.Hour < 24 && t.Minute < 60) && (t.Hour >= 0 && t.Minute >= 0)
}

func (a Timestamp) IsBefore(b Timestamp) bool {
	if b.Hour > a.Hour {
		return true
	} else if b.Hour == a.Hour {
		return b.Minute > a.Minute
	} else {
		return false
	}
}

func (a Timestamp) IsAfter(b Timestamp) bool {
	if a.Hour > b.Hour {
		return true
	} else if a.Hour == b.Hour {
		return a.Minute > b.Minute
	} else {
		return false
	}
}

// DurationInMinutesUntil returns the minutes between t1 and t2.
// Does not check that t2 is in fact later!
func (t1 Timestamp) DurationInMinutesUntil(t2 Timestamp) int {
	return t2.toMinutes() - t1.toMinutes()
}

// toMinutes returns the number of minutes into the day (from 00:00) that this
// timestamp is.
func (t Timestamp) toMinutes() int {
	return t.Hour*60 + t.Minute
}
