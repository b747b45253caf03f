package experiment

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad topology",
			mutate:  func(c *Config) { c.Topology = "swarm" },
			wantErr: "single_or_multi_agent",
		},
		{
			name:    "empty task",
			mutate:  func(c *Config) { c.Task = "" },
			wantErr: "task must not be empty",
		},
		{
			name:    "bad repr tool",
			mutate:  func(c *Config) { c.ExternalReprTool = "Chalkboard" },
			wantErr: "external_repr_tool",
		},
		{
			name:    "bad observation",
			mutate:  func(c *Config) { c.Observation = "auditory" },
			wantErr: "observation",
		},
		{
			name:    "zero max objects",
			mutate:  func(c *Config) { c.MaxObjects = 0 },
			wantErr: "max_objects must be at least 1",
		},
		{
			name: "start above ceiling",
			mutate: func(c *Config) {
				c.MaxObjects = 10
				c.MaxMaxObjects = 9
			},
			wantErr: "must not be below max_objects",
		},
		{
			name:    "start equal to ceiling is fine",
			mutate:  func(c *Config) { c.MaxObjects = 9 },
			wantErr: "",
		},
		{
			name:    "zero iterations",
			mutate:  func(c *Config) { c.NumIterations = 0 },
			wantErr: "num_iterations must be positive",
		},
		{
			name:    "zero shape dimension",
			mutate:  func(c *Config) { c.ObsExtShape = Shape{Rows: 10, Cols: 0} },
			wantErr: "obs_ext_shape",
		},
		{
			name:    "empty exp name",
			mutate:  func(c *Config) { c.ExpName = "" },
			wantErr: "exp_name must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := Default()
	cfg.Topology = "swarm"
	cfg.NumIterations = -1
	cfg.ExpName = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"single_or_multi_agent", "num_iterations", "exp_name"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error should mention %q, got: %v", want, err)
		}
	}
}

func TestParseShape(t *testing.T) {
	shape, err := ParseShape("10x1")
	if err != nil {
		t.Fatalf("ParseShape(10x1) error = %v", err)
	}
	if shape.Rows != 10 || shape.Cols != 1 {
		t.Errorf("ParseShape(10x1) = %v, want {10 1}", shape)
	}
	if shape.String() != "10x1" {
		t.Errorf("Shape.String() = %q, want 10x1", shape.String())
	}

	for _, bad := range []string{"", "10", "x", "10x", "ax1", "10xb"} {
		if _, err := ParseShape(bad); err == nil {
			t.Errorf("ParseShape(%q) = nil error, want failure", bad)
		}
	}
}
