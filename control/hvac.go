// SPDX-License-Identifier: MIT
//
// File: hvac.go
// Role: Switchable HVAC output, thermostat hysteresis and setpoint schedules.

package control

import (
	"errors"
	"fmt"
)

// ErrBadBand indicates a thermostat with Low > High.
var ErrBadBand = errors.New("control: thermostat low setpoint above high")

// Switch is an on/off HVAC unit. Output is the heat it delivers while on,
// W (negative for cooling).
type Switch struct {
	output   float64
	on       bool
	switches int
}

// NewSwitch returns a unit with the given output, initially on or off.
func NewSwitch(output float64, on bool) *Switch {
	return &Switch{output: output, on: on}
}

// Heat is the unit's current output, W. It has the core.HeatFunc signature.
func (s *Switch) Heat() float64 {
	if s.on {
		return s.output
	}
	return 0
}

// On reports whether the unit is running.
func (s *Switch) On() bool { return s.on }

// Output returns the delivered heat while on, W.
func (s *Switch) Output() float64 { return s.output }

// Switches counts state changes made through Set.
func (s *Switch) Switches() int { return s.switches }

// Set turns the unit on or off and reports whether the state changed.
func (s *Switch) Set(on bool) bool {
	if s.on == on {
		return false
	}
	s.on = on
	s.switches++
	return true
}

// Mode says which side of the band the HVAC unit fights.
type Mode int

const (
	// Cooling runs above High and stops below Low.
	Cooling Mode = iota
	// Heating runs below Low and stops above High.
	Heating
)

// String returns "cooling" or "heating".
func (m Mode) String() string {
	switch m {
	case Cooling:
		return "cooling"
	case Heating:
		return "heating"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "cooling" or "heating" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "cooling", "":
		return Cooling, nil
	case "heating":
		return Heating, nil
	}
	return Cooling, fmt.Errorf("control: unknown mode %q", s)
}

// Thermostat is a two-setpoint controller with a dead band, K.
type Thermostat struct {
	Low  float64
	High float64
	Mode Mode
}

// Validate reports ErrBadBand for an inverted band.
func (t Thermostat) Validate() error {
	if t.Low > t.High {
		return fmt.Errorf("%w: low %g, high %g", ErrBadBand, t.Low, t.High)
	}
	return nil
}

// Decide returns the next on/off state for a sensed temperature given the
// current state. Inside the band the current state is kept.
func (t Thermostat) Decide(temp float64, on bool) bool {
	below, above := temp < t.Low, temp > t.High
	if t.Mode == Heating {
		below, above = above, below
	}
	switch {
	case below:
		return false
	case above:
		return true
	default:
		return on
	}
}

// Shift returns the thermostat with both setpoints moved by offset.
func (t Thermostat) Shift(offset float64) Thermostat {
	t.Low += offset
	t.High += offset
	return t
}

// Schedule returns the setpoint offset, K, for control cycle i.
type Schedule func(cycle int) float64

// Window offsets the setpoints by Offset for cycles in [From, To).
type Window struct {
	From, To int
	Offset   float64
}

// Windows returns a Schedule applying the first window containing the cycle,
// or no offset.
func Windows(ws ...Window) Schedule {
	ws = append([]Window(nil), ws...)
	return func(cycle int) float64 {
		for _, w := range ws {
			if cycle >= w.From && cycle < w.To {
				return w.Offset
			}
		}
		return 0
	}
}
