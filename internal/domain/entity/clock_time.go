package entity

import (
	"fmt"
	"time"
)

// ClockTime hora del día sin fecha (columna TIME).
type ClockTime struct {
	Hour, Minute, Second int
}

// ParseClockTime acepta "HH:MM" o "HH:MM:SS".
func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("hora inválida %q", s)
}

// Seconds segundos desde medianoche.
func (c ClockTime) Seconds() int { return c.Hour*3600 + c.Minute*60 + c.Second }

// String formato HH:MM:SS.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// FormatClock devuelve "" para nil, HH:MM:SS en otro caso.
func FormatClock(c *ClockTime) string {
	if c == nil {
		return ""
	}
	return c.String()
}
