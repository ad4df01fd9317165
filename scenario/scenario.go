// Package scenario loads thermal simulation scenarios from YAML and builds
// them into a graph plus the control wiring that drives it.
//
// A scenario either describes its network node by node (nodes, edges,
// layered assemblies, rod and grid meshes) or asks for a built-in house model. Weather, the
// HVAC unit, the thermostat and the run lengths are shared by both.
//
// Files are read with Load, bytes with Parse. Both decode strictly
// (unknown keys are errors), fill defaults and validate.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/control"
)

// ErrInvalid wraps every validation problem.
var ErrInvalid = errors.New("scenario: invalid")

// Scenario is the root of a scenario file.
type Scenario struct {
	Name       string         `yaml:"name"`
	Materials  []MaterialSpec `yaml:"materials,omitempty"`
	Weather    WeatherSpec    `yaml:"weather"`
	Nodes      []NodeSpec     `yaml:"nodes,omitempty"`
	Edges      []EdgeSpec     `yaml:"edges,omitempty"`
	Assemblies []AssemblySpec `yaml:"assemblies,omitempty"`
	Meshes     []MeshSpec     `yaml:"meshes,omitempty"`
	House      *HouseSpec     `yaml:"house,omitempty"`
	HVAC       *HVACSpec      `yaml:"hvac,omitempty"`
	Thermostat ThermostatSpec `yaml:"thermostat"`
	Run        RunSpec        `yaml:"run"`
}

// MaterialSpec declares a material beyond the built-in catalog.
type MaterialSpec struct {
	Name string  `yaml:"name"`
	K    float64 `yaml:"k"`   // W/(m·K)
	Rho  float64 `yaml:"rho"` // kg/m³
	Cp   float64 `yaml:"cp"`  // J/(kg·K)
}

// WeatherSpec selects the outdoor temperature model.
type WeatherSpec struct {
	// Kind is "constant" (default) or "diurnal".
	Kind   string   `yaml:"kind"`
	Mean   float64  `yaml:"mean"`  // K
	Swing  float64  `yaml:"swing"` // K, diurnal only
	Period Duration `yaml:"period"`
	PeakAt Duration `yaml:"peak_at"`
}

// NodeSpec is one vertex of a hand-built network.
type NodeSpec struct {
	Name      string  `yaml:"name"`
	Kind      string  `yaml:"kind"` // free (default), fixed, source
	Material  string  `yaml:"material"`
	Thickness float64 `yaml:"thickness"` // m
	Area      float64 `yaml:"area"`      // m²
	// Temperature is the initial value, or the constant value of a fixed
	// node that does not follow the weather.
	Temperature float64 `yaml:"temperature"`
	// Weather makes a fixed node report the outdoor temperature.
	Weather bool `yaml:"weather"`
	// Heat is a constant generation of a source node, W.
	Heat float64 `yaml:"heat"`
	// HVAC adds the HVAC unit's output to a source node.
	HVAC bool `yaml:"hvac"`
}

// EdgeSpec is a direct conduction path.
type EdgeSpec struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Area float64 `yaml:"area"`
}

// AssemblySpec builds layers between two declared nodes.
type AssemblySpec struct {
	From   string      `yaml:"from"`
	To     string      `yaml:"to"`
	Area   float64     `yaml:"area"`
	Layers []LayerSpec `yaml:"layers"`
}

// LayerSpec is one slab, or a parallel group when Parallel is set.
type LayerSpec struct {
	Name        string      `yaml:"name"`
	Material    string      `yaml:"material,omitempty"`
	Thickness   float64     `yaml:"thickness,omitempty"`
	Fraction    float64     `yaml:"fraction,omitempty"`
	Split       int         `yaml:"split,omitempty"`
	Temperature float64     `yaml:"temperature,omitempty"`
	Heat        float64     `yaml:"heat,omitempty"`
	Parallel    []LayerSpec `yaml:"parallel,omitempty"`
}

// HouseSpec selects and tunes a built-in house model.
type HouseSpec struct {
	FloorArea       float64 `yaml:"floor_area"`
	WallHeight      float64 `yaml:"wall_height"`
	Roof            string  `yaml:"roof"`    // none, plain, sky, solar
	Wall            string  `yaml:"wall"`    // stud (default), sheetrock
	Ceiling         string  `yaml:"ceiling"` // roof default, framed, insulated
	WindowArea      float64 `yaml:"window_area"`
	Insolation      float64 `yaml:"insolation"`
	Absorptivity    float64 `yaml:"absorptivity"`
	SkyDepression   float64 `yaml:"sky_depression"`
	ACH             float64 `yaml:"ach"`
	Floor           bool    `yaml:"floor"`
	SoilTemperature float64 `yaml:"soil_temperature"`
}

// HVACSpec is the switchable unit.
type HVACSpec struct {
	Output float64 `yaml:"output"` // W, negative cools
	On     bool    `yaml:"on"`
}

// ThermostatSpec configures the dead-band controller.
type ThermostatSpec struct {
	Low      float64      `yaml:"low"`
	High     float64      `yaml:"high"`
	Mode     string       `yaml:"mode"`
	Sensor   string       `yaml:"sensor"`
	Schedule []WindowSpec `yaml:"schedule,omitempty"`
}

// WindowSpec offsets the setpoints for control cycles [from, to).
type WindowSpec struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Offset float64 `yaml:"offset"`
}

// RunSpec sets the step size and run lengths.
type RunSpec struct {
	Timestep        float64  `yaml:"timestep"`
	StepsPerControl int      `yaml:"steps_per_control"`
	Cycles          int      `yaml:"cycles"`
	Warmup          *int     `yaml:"warmup"`
	Workers         int      `yaml:"workers"`
	Record          []string `yaml:"record,omitempty"`
}

// Duration reads "90m", "24h" or a plain number of seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		*d = Duration(secs * float64(time.Second))
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Seconds returns the duration in seconds.
func (d Duration) Seconds() float64 { return time.Duration(d).Seconds() }

// Load reads, decodes, defaults and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario document strictly, applies defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Complete(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Complete fills in defaults and validates; Parse calls it, and callers that
// assemble a Scenario in code should too.
func (s *Scenario) Complete() error {
	s.applyDefaults()
	return s.Validate()
}

// Marshal renders the scenario back to YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// applyDefaults fills in missing values with defaults.
func (s *Scenario) applyDefaults() {
	if s.Name == "" {
		s.Name = "scenario"
	}
	if s.Weather.Kind == "" {
		s.Weather.Kind = "constant"
	}
	if s.Weather.Mean == 0 {
		s.Weather.Mean = builder.DefaultOutsideAir
	}
	if s.Thermostat.Low == 0 && s.Thermostat.High == 0 {
		s.Thermostat.Low, s.Thermostat.High = 294, 298
	}
	if s.Thermostat.Mode == "" {
		s.Thermostat.Mode = control.Cooling.String()
	}
	if s.Thermostat.Sensor == "" {
		s.Thermostat.Sensor = s.defaultSensor()
	}
	if s.Run.Timestep == 0 {
		s.Run.Timestep = control.DefaultTimestep
	}
	if s.Run.StepsPerControl == 0 {
		s.Run.StepsPerControl = control.DefaultStepsPerControl
	}
	if s.Run.Cycles == 0 {
		s.Run.Cycles = control.DefaultCycles
	}
	if s.Run.Warmup == nil {
		w := control.DefaultWarmupSteps
		s.Run.Warmup = &w
	}
	if s.Run.Workers == 0 {
		s.Run.Workers = 1
	}
	for i := range s.Nodes {
		if s.Nodes[i].Kind == "" {
			s.Nodes[i].Kind = "free"
		}
	}
	if s.House != nil && s.House.Roof == "" {
		s.House.Roof = builder.NoRoof.String()
	}
}

// defaultSensor is the house interior, else the first HVAC node, else the
// first source.
func (s *Scenario) defaultSensor() string {
	if s.House != nil {
		return houseInterior
	}
	for _, n := range s.Nodes {
		if n.HVAC {
			return n.Name
		}
	}
	for _, n := range s.Nodes {
		if n.Kind == "source" {
			return n.Name
		}
	}
	return ""
}
