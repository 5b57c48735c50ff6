package entity

import "time"

// DayRange devuelve el inicio (00:00:00.000) y el fin (23:59:59.999) del día
// calendario de d en su zona horaria. Ambos extremos son inclusivos.
func DayRange(d time.Time) (start, end time.Time) {
	y, m, day := d.Date()
	start = time.Date(y, m, day, 0, 0, 0, 0, d.Location())
	end = time.Date(y, m, day, 23, 59, 59, int(999*time.Millisecond), d.Location())
	return start, end
}

// InRange indica si t cae en [from, to].
func InRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
