// Package control closes the loop around a thermal network: outdoor weather
// drives the Fixed boundaries, a thermostat with a dead band switches an
// HVAC unit, and the unit's output feeds a Source vertex.
//
// The pieces:
//
//   - Weather and Clock: the core never passes time to its functors, so a
//     Clock carries simulated time and Outdoor adapts a Weather model into a
//     core.TemperatureFunc that reads it.
//   - Switch: an on/off HVAC unit whose Heat method is a core.HeatFunc.
//   - Thermostat: hysteresis between Low and High in Cooling or Heating mode.
//   - Schedule: setpoint offsets by control cycle (precooling, setbacks).
//   - Loop: warm-up, then Cycles control intervals of StepsPerControl steps.
//     After each interval it reads the sensor vertex, updates the switch
//     and reports a Sample. Run returns a Summary with the duty cycle,
//     temperature range, switch count and per-cycle power.
//
// A Loop owns its graph for the duration of Run, like a simulate.Stepper.
package control
