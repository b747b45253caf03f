package experiment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AgentTopology selects between a single-agent and a multi-agent setup.
type AgentTopology string

const (
	TopologySingle AgentTopology = "single"
	TopologyMulti  AgentTopology = "multi"
)

// ReprTool is the external representation tool the agent uses to render
// numerosity during the task (e.g. drawing coordinates or an abacus tally).
type ReprTool string

const (
	ToolMoveAndWrite ReprTool = "MoveAndWrite"
	ToolWriteCoord   ReprTool = "WriteCoord"
	ToolAbacus       ReprTool = "Abacus"
)

// Observation is the numerosity presentation modality: all objects at once
// (spatial) or one at a time (temporal).
type Observation string

const (
	ObservationSpatial  Observation = "spatial"
	ObservationTemporal Observation = "temporal"
)

// Shape is a two-dimensional extent governing the observation and external
// representation layers. Its textual form is "RxC", e.g. "10x1".
type Shape struct {
	Rows int
	Cols int
}

// ParseShape parses the "RxC" form.
func ParseShape(s string) (Shape, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return Shape{}, fmt.Errorf("invalid shape %q: want ROWSxCOLS, e.g. 10x1", s)
	}
	rows, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Shape{}, fmt.Errorf("invalid shape rows in %q: %w", s, err)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Shape{}, fmt.Errorf("invalid shape cols in %q: %w", s, err)
	}
	return Shape{Rows: rows, Cols: cols}, nil
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// MarshalYAML renders the shape in its "RxC" form.
func (s Shape) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// MarshalJSON renders the shape in its "RxC" form.
func (s Shape) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

// UnmarshalJSON accepts the "RxC" form.
func (s *Shape) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid shape value %s: %w", data, err)
	}
	parsed, err := ParseShape(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalYAML accepts the "RxC" form.
func (s *Shape) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseShape(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Config is the full set of hyperparameters for one experiment launch. It is
// built once, validated, and never mutated afterwards; a Config fully
// determines a single child invocation of the experiment runner.
type Config struct {
	Topology           AgentTopology `yaml:"single_or_multi_agent" json:"single_or_multi_agent" jsonschema:"enum=single,enum=multi"`
	Task               string        `yaml:"task" json:"task"`
	ExternalReprTool   ReprTool      `yaml:"external_repr_tool" json:"external_repr_tool" jsonschema:"enum=MoveAndWrite,enum=WriteCoord,enum=Abacus"`
	Observation        Observation   `yaml:"observation" json:"observation" jsonschema:"enum=spatial,enum=temporal"`
	MaxObjects         int           `yaml:"max_objects" json:"max_objects"`
	MaxMaxObjects      int           `yaml:"max_max_objects" json:"max_max_objects"`
	CurriculumLearning bool          `yaml:"curriculum_learning" json:"curriculum_learning"`
	NumIterations      int           `yaml:"num_iterations" json:"num_iterations"`
	ObsExtShape        Shape         `yaml:"obs_ext_shape" json:"obs_ext_shape" jsonschema:"type=string,pattern=^[0-9]+x[0-9]+$"`
	ExpName            string        `yaml:"exp_name" json:"exp_name"`
}

// Default returns the reference temporal counting configuration: a single
// agent classifying temporally presented objects with the WriteCoord tool,
// growing from 1 to 9 objects under curriculum learning.
func Default() Config {
	return Config{
		Topology:           TopologySingle,
		Task:               "classify",
		ExternalReprTool:   ToolWriteCoord,
		Observation:        ObservationTemporal,
		MaxObjects:         1,
		MaxMaxObjects:      9,
		CurriculumLearning: true,
		NumIterations:      100000,
		ObsExtShape:        Shape{Rows: 10, Cols: 1},
		ExpName:            "temporal_1",
	}
}

// Validate checks enum membership and numeric bounds. All violations are
// reported at once so a bad config file can be fixed in one pass.
func (c Config) Validate() error {
	var errs []error

	switch c.Topology {
	case TopologySingle, TopologyMulti:
	default:
		errs = append(errs, fmt.Errorf("single_or_multi_agent must be %q or %q, got %q", TopologySingle, TopologyMulti, c.Topology))
	}

	if c.Task == "" {
		errs = append(errs, errors.New("task must not be empty"))
	}

	switch c.ExternalReprTool {
	case ToolMoveAndWrite, ToolWriteCoord, ToolAbacus:
	default:
		errs = append(errs, fmt.Errorf("external_repr_tool must be one of %q, %q, %q, got %q", ToolMoveAndWrite, ToolWriteCoord, ToolAbacus, c.ExternalReprTool))
	}

	switch c.Observation {
	case ObservationSpatial, ObservationTemporal:
	default:
		errs = append(errs, fmt.Errorf("observation must be %q or %q, got %q", ObservationSpatial, ObservationTemporal, c.Observation))
	}

	if c.MaxObjects < 1 {
		errs = append(errs, fmt.Errorf("max_objects must be at least 1, got %d", c.MaxObjects))
	}
	if c.MaxMaxObjects < c.MaxObjects {
		errs = append(errs, fmt.Errorf("max_max_objects (%d) must not be below max_objects (%d)", c.MaxMaxObjects, c.MaxObjects))
	}
	if c.NumIterations <= 0 {
		errs = append(errs, fmt.Errorf("num_iterations must be positive, got %d", c.NumIterations))
	}
	if c.ObsExtShape.Rows <= 0 || c.ObsExtShape.Cols <= 0 {
		errs = append(errs, fmt.Errorf("obs_ext_shape must have positive dimensions, got %s", c.ObsExtShape))
	}
	if c.ExpName == "" {
		errs = append(errs, errors.New("exp_name must not be empty"))
	}

	return errors.Join(errs...)
}
