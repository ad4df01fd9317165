package control

import "math"

// Summary aggregates one control run.
type Summary struct {
	Cycles int
	// Interval is the length of one control interval, s.
	Interval float64
	// OnCycles counts intervals during which the unit ran.
	OnCycles int
	// Min, Max and Final sensed temperatures, K.
	Min, Max, Final float64
	// Switches counts on/off changes of the unit over its lifetime.
	Switches int
	// Power is the HVAC output of each interval, W.
	Power []float64
}

func newSummary(interval float64, cycles int) *Summary {
	return &Summary{
		Interval: interval,
		Min:      math.Inf(1),
		Max:      math.Inf(-1),
		Power:    make([]float64, 0, cycles),
	}
}

func (s *Summary) add(x Sample) {
	s.Cycles++
	if x.Running {
		s.OnCycles++
	}
	s.Min = math.Min(s.Min, x.Sensed)
	s.Max = math.Max(s.Max, x.Sensed)
	s.Final = x.Sensed
	s.Power = append(s.Power, x.Power)
}

// DutyCycle is the fraction of intervals the unit ran (0 for an empty run).
func (s *Summary) DutyCycle() float64 {
	if s.Cycles == 0 {
		return 0
	}
	return float64(s.OnCycles) / float64(s.Cycles)
}

// EnergyKWh returns the HVAC energy, kWh, summed over consecutive groups
// of cycles (60 one-minute cycles gives hourly totals). A trailing partial
// group is included. Cooling energy is negative.
func (s *Summary) EnergyKWh(cyclesPerPeriod int) []float64 {
	if cyclesPerPeriod <= 0 {
		return nil
	}
	out := make([]float64, 0, (len(s.Power)+cyclesPerPeriod-1)/cyclesPerPeriod)
	for i, p := range s.Power {
		if i%cyclesPerPeriod == 0 {
			out = append(out, 0)
		}
		out[len(out)-1] += p * s.Interval / 3.6e6
	}
	return out
}

// TotalKWh is the HVAC energy of the whole run, kWh.
func (s *Summary) TotalKWh() float64 {
	total := 0.0
	for _, p := range s.Power {
		total += p * s.Interval / 3.6e6
	}
	return total
}
