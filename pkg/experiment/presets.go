package experiment

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed presets/*.yml
var presetFS embed.FS

// Presets stores the built-in experiment configurations loaded from
// embedded files, keyed by preset name.
var Presets map[string]Config

func init() {
	Presets = make(map[string]Config)

	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		// This should never happen with embed
		panic(fmt.Sprintf("failed to read builtin presets directory: %v", err))
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".yml")

		data, err := presetFS.ReadFile(filepath.Join("presets", entry.Name()))
		if err != nil {
			panic(fmt.Sprintf("failed to load builtin preset %s: %v", name, err))
		}

		cfg, err := decodeConfig(data)
		if err != nil {
			panic(fmt.Sprintf("invalid builtin preset %s: %v", name, err))
		}

		Presets[name] = cfg
	}
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPreset returns the named built-in configuration.
func LoadPreset(name string) (Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return cfg, nil
}
