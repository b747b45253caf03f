package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// RunStatus is the lifecycle state of a recorded run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// RunRecord is one entry in the run registry: the configuration that was
// launched, when, and how the child exited.
type RunRecord struct {
	ID        string    `yaml:"id" json:"id"`
	ExpName   string    `yaml:"exp_name" json:"exp_name"`
	Status    RunStatus `yaml:"status" json:"status"`
	StartTime time.Time `yaml:"start_time" json:"start_time"`
	EndTime   time.Time `yaml:"end_time,omitempty" json:"end_time"`
	ExitCode  int       `yaml:"exit_code" json:"exit_code"`
	Config    Config    `yaml:"config" json:"config"`
}

// Registry persists launch history to a runs.yml file under the results
// root. Updates are serialized so concurrent launches in the same results
// tree do not clobber each other's records.
type Registry struct {
	mu   sync.Mutex
	path string
}

// NewRegistry creates a registry stored under the given results root.
func NewRegistry(resultsRoot string) *Registry {
	return &Registry{path: filepath.Join(resultsRoot, "runs.yml")}
}

// Load reads all recorded runs. A missing registry file yields an empty
// history.
func (r *Registry) Load() ([]RunRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *Registry) load() ([]RunRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading run registry: %w", err)
	}

	var records []RunRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing run registry: %w", err)
	}
	return records, nil
}

func (r *Registry) save(records []RunRecord) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling run registry: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("writing run registry: %w", err)
	}
	return nil
}

// Append adds a new run record to the registry.
func (r *Registry) Append(rec RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	records = append(records, rec)
	return r.save(records)
}

// Complete marks a recorded run as finished with the given exit code.
func (r *Registry) Complete(id string, exitCode int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		records[i].EndTime = time.Now()
		records[i].ExitCode = exitCode
		if exitCode == 0 {
			records[i].Status = RunStatusCompleted
		} else {
			records[i].Status = RunStatusFailed
		}
		return r.save(records)
	}

	return fmt.Errorf("run %s not found in registry", id)
}
