package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a request document. The file's preset seeds every default,
// then the document's own fields overlay them, so a request only has to
// name the values it changes. An empty path returns the defaults.
func Load(path string) (*Request, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading request from %s: %w", path, err)
	}

	// First pass reads only the preset name so the right defaults can
	// be in place before the real unmarshal overlays them.
	var probe struct {
		Flower struct {
			Preset string `yaml:"preset"`
		} `yaml:"flower"`
		Inflorescence *struct{} `yaml:"inflorescence"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("loading request from %s: %w", path, err)
	}

	if _, ok := presetParams(probe.Flower.Preset); !ok {
		return nil, fmt.Errorf("loading request from %s: unknown preset %q",
			path, probe.Flower.Preset)
	}

	req := DefaultForPreset(probe.Flower.Preset)
	if probe.Inflorescence != nil {
		defaults := DefaultInflorescence()
		req.Inflorescence = &defaults
	}

	if err := yaml.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("loading request from %s: %w", path, err)
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("loading request from %s: %w", path, err)
	}

	return req, nil
}

// Validate rejects requests that cannot produce a mesh.
func (r *Request) Validate() error {
	if err := r.Flower.validate(); err != nil {
		return err
	}

	if r.Inflorescence != nil {
		if err := r.Inflorescence.InflorescenceParams().Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (f Flower) validate() error {
	for _, whorls := range [][]Whorl{
		f.Diagram.Petals, f.Diagram.Stamens, f.Diagram.Pistils, f.Diagram.Sepals,
	} {
		for _, w := range whorls {
			if w.Count < 1 {
				return fmt.Errorf("whorl count must be at least 1, got %d", w.Count)
			}
			switch w.Pattern {
			case "", "evenly-spaced", "golden-spiral", "custom-offset":
			default:
				return fmt.Errorf("unknown arrangement pattern %q", w.Pattern)
			}
		}
	}

	if f.Petal.Resolution < 1 {
		return fmt.Errorf("petal resolution must be at least 1, got %d", f.Petal.Resolution)
	}
	if len(f.Diagram.Sepals) > 0 && f.Sepal.Resolution < 1 {
		return fmt.Errorf("sepal resolution must be at least 1, got %d", f.Sepal.Resolution)
	}
	if f.Receptacle.Segments < 3 {
		return fmt.Errorf("receptacle segments must be at least 3, got %d", f.Receptacle.Segments)
	}

	return nil
}
