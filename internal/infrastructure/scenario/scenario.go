// Package scenario replays scripted window sessions against the layout engine.
//
// A scenario is a YAML document with a screen rectangle and an ordered list of
// steps. Each step either delivers a host change, replaces the live window set,
// stores a ratio hint, or asserts the frames computed so far.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

var (
	// ErrInvalidStep is returned when a step does not hold exactly one action.
	ErrInvalidStep = errors.New("invalid scenario step")
	// ErrInvalidScreen is returned when the screen has no area.
	ErrInvalidScreen = errors.New("invalid scenario screen")
	// ErrExpectationFailed is returned when computed frames differ from an expect step.
	ErrExpectationFailed = errors.New("scenario expectation failed")
)

// Scenario is a scripted session.
type Scenario struct {
	Name   string      `yaml:"name" json:"name,omitempty" jsonschema:"description=Scenario name (defaults to the file name)"`
	Screen entity.Rect `yaml:"screen" json:"screen" jsonschema:"description=Visible screen rectangle handed to the layout"`
	Steps  []Step      `yaml:"steps" json:"steps" jsonschema:"minItems=1"`
}

// Step is one scenario action. Exactly one field must be set.
type Step struct {
	Event   *Event                   `yaml:"event,omitempty" json:"event,omitempty" jsonschema:"description=Deliver a host change"`
	Windows []string                 `yaml:"windows,omitempty" json:"windows,omitempty" jsonschema:"description=Replace the live window set"`
	Ratio   *float64                 `yaml:"ratio,omitempty" json:"ratio,omitempty" jsonschema:"description=Store a main pane ratio hint"`
	Expect  map[string]ExpectedFrame `yaml:"expect,omitempty" json:"expect,omitempty" jsonschema:"description=Assert frames by window id"`
}

// Event is a host change in wire form.
type Event struct {
	Change        string `yaml:"change" json:"change" jsonschema:"enum=add,enum=remove,enum=focus_changed,enum=window_swap,enum=space_change,enum=layout_change,enum=application_activate,enum=application_deactivate"`
	WindowID      string `yaml:"window_id,omitempty" json:"window_id,omitempty"`
	OtherWindowID string `yaml:"other_window_id,omitempty" json:"other_window_id,omitempty"`
}

// ExpectedFrame is the geometry an expect step asserts for a window.
type ExpectedFrame struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Frame converts the expectation to a layout frame.
func (e ExpectedFrame) Frame() entity.Frame {
	return entity.Frame{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// StepKind names the action of a step.
type StepKind string

const (
	StepEvent   StepKind = "event"
	StepWindows StepKind = "windows"
	StepRatio   StepKind = "ratio"
	StepExpect  StepKind = "expect"
)

// Kind returns the action of the step, or an error if it sets zero or several.
func (s Step) Kind() (StepKind, error) {
	var kinds []StepKind
	if s.Event != nil {
		kinds = append(kinds, StepEvent)
	}
	if s.Windows != nil {
		kinds = append(kinds, StepWindows)
	}
	if s.Ratio != nil {
		kinds = append(kinds, StepRatio)
	}
	if s.Expect != nil {
		kinds = append(kinds, StepExpect)
	}

	switch len(kinds) {
	case 1:
		return kinds[0], nil
	case 0:
		return "", fmt.Errorf("%w: no action set", ErrInvalidStep)
	default:
		parts := make([]string, len(kinds))
		for i, k := range kinds {
			parts[i] = string(k)
		}
		return "", fmt.Errorf("%w: several actions set (%s)", ErrInvalidStep, strings.Join(parts, ", "))
	}
}

// Validate checks the screen and every step.
func (sc *Scenario) Validate() error {
	if sc.Screen.Width <= 0 || sc.Screen.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidScreen, sc.Screen.Width, sc.Screen.Height)
	}
	for i, step := range sc.Steps {
		kind, err := step.Kind()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if kind == StepEvent && strings.TrimSpace(step.Event.Change) == "" {
			return fmt.Errorf("step %d: %w: event without change", i+1, ErrInvalidStep)
		}
	}
	return nil
}

// Parse decodes and validates a scenario document. Unknown fields are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty scenario")
		}
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads a scenario file. A missing name is taken from the file name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	sc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Schema returns the JSON schema of scenario documents.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Scenario{})

	schema.ID = "https://github.com/bnema/dumbtile/scenario.schema.json"
	schema.Title = "dumbtile scenario"
	schema.Description = "Scripted window session replayed against the bspwm-like layout"
	return schema
}
