package ports

import "time"

// Clock define el puerto de reloj para los cálculos anclados a "hoy"
// (crecimiento MoM/YoY, siembra de histórico). Inyectable para que los
// tests fijen la fecha de referencia.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapta una función a Clock.
type ClockFunc func() time.Time

// Now implementa Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reloj de producción (time.Now).
func SystemClock() Clock { return ClockFunc(time.Now) }
