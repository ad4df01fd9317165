package control

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/lvheat/core"
)

// SecondsPerDay is the default period of DiurnalWeather.
const SecondsPerDay = 86400.0

// Weather reports the outdoor air temperature, K, at simulated time t, s.
type Weather interface {
	Temperature(t float64) float64
}

// ConstantWeather is the same temperature all day.
type ConstantWeather float64

// Temperature implements Weather.
func (w ConstantWeather) Temperature(float64) float64 { return float64(w) }

// DiurnalWeather is a cosine day: Mean ± Swing, warmest at PeakAt seconds
// into each Period (0 → SecondsPerDay).
type DiurnalWeather struct {
	Mean   float64
	Swing  float64
	Period float64
	PeakAt float64
}

// Temperature implements Weather.
func (w DiurnalWeather) Temperature(t float64) float64 {
	p := w.Period
	if p == 0 {
		p = SecondsPerDay
	}
	return w.Mean + w.Swing*math.Cos(2*math.Pi*(t-w.PeakAt)/p)
}

// Clock holds simulated time in seconds. Reads are safe from any goroutine;
// only the loop that owns it should advance it.
type Clock struct {
	bits atomic.Uint64
}

// Now returns the current simulated time, s.
func (c *Clock) Now() float64 { return math.Float64frombits(c.bits.Load()) }

// Set moves the clock to t.
func (c *Clock) Set(t float64) { c.bits.Store(math.Float64bits(t)) }

// Advance moves the clock forward by dt.
func (c *Clock) Advance(dt float64) { c.Set(c.Now() + dt) }

// Outdoor returns a TemperatureFunc reporting w at the clock's current time,
// for use as the functor of a Fixed outdoor-air vertex.
func Outdoor(c *Clock, w Weather) core.TemperatureFunc {
	return func() float64 { return w.Temperature(c.Now()) }
}
