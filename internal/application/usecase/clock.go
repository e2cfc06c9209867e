package usecase

import "time"

// Clock devuelve la hora actual. Los tests inyectan una fija.
type Clock func() time.Time

// SystemClock hora del servidor en UTC.
func SystemClock() time.Time { return time.Now().UTC() }

func orSystem(c Clock) Clock {
	if c == nil {
		return SystemClock
	}
	return c
}

// today fecha UTC (00:00) del instante dado.
func today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
