package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/gridstorm/internal/input"
)

// keymapFile is the YAML shape of a keymap file.
type keymapFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// LoadKeymap returns the input bindings: defaults overridden by the YAML
// keymap file at path, if any. A missing file yields the defaults; a file
// with an unknown action or chord is rejected as a whole.
func LoadKeymap(path string) (*input.Bindings, error) {
	bindings := input.DefaultBindings()
	if path == "" {
		return bindings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bindings, nil
		}
		return nil, fmt.Errorf("reading keymap file %s: %w", path, err)
	}

	var file keymapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing keymap file %s: %w", path, err)
	}

	for chord, name := range file.Bindings {
		action, ok := input.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q for chord %q", ErrInvalidKeymap, name, chord)
		}
		if err := bindings.Bind(chord, action); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeymap, err)
		}
	}

	return bindings, nil
}
