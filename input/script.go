package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScriptStep holds a set of keys for ticks in [From, To).
type ScriptStep struct {
	From int32 `yaml:"from"`
	To   int32 `yaml:"to"`
	Hold []Key `yaml:"hold"`
}

// Script replays key holds by simulation tick. Headless runs use it in place
// of a keyboard.
//
//	steps:
//	  - {from: 0, to: 120, hold: [W, SPACE]}
//	  - {from: 60, to: 90, hold: [A]}
type Script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// LoadScript reads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, step := range s.Steps {
		if step.From < 0 {
			return nil, fmt.Errorf("script step %d: negative start tick %d", i, step.From)
		}
		if step.To <= step.From {
			return nil, fmt.Errorf("script step %d: end tick %d not after start %d", i, step.To, step.From)
		}
	}
	return s, nil
}

// Keys returns the keys held at tick. Overlapping steps combine.
func (s *Script) Keys(tick int32) KeyState {
	held := KeyState{}
	if s == nil {
		return held
	}
	for _, step := range s.Steps {
		if tick >= step.From && tick < step.To {
			held.Press(step.Hold...)
		}
	}
	return held
}

// End returns the first tick after the last step.
func (s *Script) End() int32 {
	var end int32
	if s == nil {
		return end
	}
	for _, step := range s.Steps {
		end = max(end, step.To)
	}
	return end
}
