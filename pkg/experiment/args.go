package experiment

import (
	"fmt"
	"strconv"
)

// Option names understood by the experiment runner. Each launch passes every
// option exactly once.
const (
	OptTopology           = "--single_or_multi_agent"
	OptTask               = "--task"
	OptExternalReprTool   = "--external_repr_tool"
	OptObservation        = "--observation"
	OptMaxObjects         = "--max_objects"
	OptMaxMaxObjects      = "--max_max_objects"
	OptCurriculumLearning = "--curriculum_learning"
	OptNumIterations      = "--num_iterations"
	OptObsExtShape        = "--obs_ext_shape"
	OptExpName            = "--exp_name"
)

// Args renders the configuration as the argument list for the runner: one
// "--option value" pair per field. The order is stable but carries no
// meaning to the consumer.
func (c Config) Args() []string {
	return []string{
		OptTopology, string(c.Topology),
		OptTask, c.Task,
		OptExternalReprTool, string(c.ExternalReprTool),
		OptObservation, string(c.Observation),
		OptMaxObjects, strconv.Itoa(c.MaxObjects),
		OptMaxMaxObjects, strconv.Itoa(c.MaxMaxObjects),
		OptCurriculumLearning, strconv.FormatBool(c.CurriculumLearning),
		OptNumIterations, strconv.Itoa(c.NumIterations),
		OptObsExtShape, c.ObsExtShape.String(),
		OptExpName, c.ExpName,
	}
}

// ParseArgs is the inverse of Args. It reconstructs a Config from an argument
// list, requiring every documented option to appear exactly once, in any
// order. The result is not validated; callers decide whether to call
// Validate on it.
func ParseArgs(args []string) (Config, error) {
	var cfg Config
	seen := make(map[string]bool)

	if len(args)%2 != 0 {
		return Config{}, fmt.Errorf("argument list has odd length %d: every option needs a value", len(args))
	}

	for i := 0; i < len(args); i += 2 {
		opt, val := args[i], args[i+1]
		if seen[opt] {
			return Config{}, fmt.Errorf("option %s given more than once", opt)
		}
		seen[opt] = true

		var err error
		switch opt {
		case OptTopology:
			cfg.Topology = AgentTopology(val)
		case OptTask:
			cfg.Task = val
		case OptExternalReprTool:
			cfg.ExternalReprTool = ReprTool(val)
		case OptObservation:
			cfg.Observation = Observation(val)
		case OptMaxObjects:
			cfg.MaxObjects, err = strconv.Atoi(val)
		case OptMaxMaxObjects:
			cfg.MaxMaxObjects, err = strconv.Atoi(val)
		case OptCurriculumLearning:
			cfg.CurriculumLearning, err = strconv.ParseBool(val)
		case OptNumIterations:
			cfg.NumIterations, err = strconv.Atoi(val)
		case OptObsExtShape:
			cfg.ObsExtShape, err = ParseShape(val)
		case OptExpName:
			cfg.ExpName = val
		default:
			return Config{}, fmt.Errorf("unknown option %s", opt)
		}
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s value %q: %w", opt, val, err)
		}
	}

	for _, opt := range []string{
		OptTopology, OptTask, OptExternalReprTool, OptObservation,
		OptMaxObjects, OptMaxMaxObjects, OptCurriculumLearning,
		OptNumIterations, OptObsExtShape, OptExpName,
	} {
		if !seen[opt] {
			return Config{}, fmt.Errorf("missing required option %s", opt)
		}
	}

	return cfg, nil
}
