// Package script replays scroll gestures against an indicator without a
// terminal.
//
// A script sets the indicator's bounds and runs a list of steps. Each step
// performs exactly one operation:
//
//	bounds:
//	  width: 40
//	  height: 480
//	steps:
//	  - setDotCount: 10
//	  - setSelectedIndex: {index: 4, total: 10}
//	  - scrub: {from: 4, to: 5, samples: 5}
//	  - scroll: {index: 5, fraction: 0}
//
// A [Player] runs a script and returns one [Frame] per scroll sample or
// administrative call.
package script

import (
	"errors"
	"fmt"
	"math"

	"github.com/macropower/pagedots/pkg/config"
	"github.com/macropower/pagedots/pkg/indicator"
	"github.com/macropower/pagedots/pkg/yaml"
)

// SchemaURL identifies the JSON schema of [Script].
const SchemaURL = "/script.v1beta1.json"

var (
	ErrInvalidScript = errors.New("invalid script")

	// DefaultValidator validates scripts against [Schema].
	DefaultValidator = mustNewValidator()
)

// Action names a step's operation.
type Action string

const (
	ActionSetDotCount                 Action = "setDotCount"
	ActionSetDotCountAndStartPosition Action = "setDotCountAndStartPosition"
	ActionSetSelectedIndex            Action = "setSelectedIndex"
	ActionScroll                      Action = "scroll"
	ActionScrub                       Action = "scrub"
	ActionMeasure                     Action = "measure"
)

// Script is a sequence of steps played against a fresh indicator.
type Script struct {
	// Indicator overrides the default indicator configuration.
	Indicator *indicator.Config `json:"indicator,omitempty" jsonschema:"title=Indicator"`
	// Bounds is the drawing area used for the initial measurement pass.
	Bounds indicator.Bounds `json:"bounds" jsonschema:"title=Bounds,required"`
	// Steps are played in order.
	Steps []Step `json:"steps" jsonschema:"title=Steps,required"`
}

// Step performs exactly one operation.
type Step struct {
	// Name is an optional label copied into the frames of the step.
	Name string `json:"name,omitempty" jsonschema:"title=Name"`

	SetDotCount                 *int              `json:"setDotCount,omitempty"                 jsonschema:"title=Set Dot Count,minimum=0"`
	SetDotCountAndStartPosition *StartPosition    `json:"setDotCountAndStartPosition,omitempty" jsonschema:"title=Set Dot Count And Start Position"`
	SetSelectedIndex            *Selection        `json:"setSelectedIndex,omitempty"            jsonschema:"title=Set Selected Index"`
	Scroll                      *Sample           `json:"scroll,omitempty"                      jsonschema:"title=Scroll"`
	Scrub                       *Scrub            `json:"scrub,omitempty"                       jsonschema:"title=Scrub"`
	Measure                     *indicator.Bounds `json:"measure,omitempty"                     jsonschema:"title=Measure"`
}

// StartPosition are the arguments of setDotCountAndStartPosition.
type StartPosition struct {
	// First is the list index of the first page.
	First int `json:"first" jsonschema:"title=First"`
	Count int `json:"count" jsonschema:"title=Count,minimum=0"`
}

// Selection are the arguments of setSelectedIndex.
type Selection struct {
	Index int `json:"index" jsonschema:"title=Index"`
	Total int `json:"total" jsonschema:"title=Total,minimum=0"`
}

// Sample is a single scroll sample, as reported by a host list.
type Sample struct {
	// Index is the list index of the topmost visible item.
	Index int `json:"index" jsonschema:"title=Index"`
	// Fraction is the part of that item scrolled out of view.
	Fraction float64 `json:"fraction" jsonschema:"title=Fraction"`
}

// Scrub moves the list between two positions in evenly spaced samples. A
// position is an item index plus the fraction scrolled past it, so 4.25 is a
// quarter of the way from item 4 to item 5.
type Scrub struct {
	From    float64 `json:"from"    jsonschema:"title=From"`
	To      float64 `json:"to"      jsonschema:"title=To"`
	Samples int     `json:"samples" jsonschema:"title=Samples,minimum=2"`
}

// Positions returns the samples of the scrub, including both ends.
func (s Scrub) Positions() []Sample {
	if s.Samples < 2 {
		return nil
	}

	samples := make([]Sample, 0, s.Samples)
	for i := range s.Samples {
		pos := s.From + (s.To-s.From)*float64(i)/float64(s.Samples-1)
		samples = append(samples, SampleAt(pos))
	}

	return samples
}

// SampleAt converts a position into a [Sample].
func SampleAt(pos float64) Sample {
	index := math.Floor(pos)

	return Sample{Index: int(index), Fraction: pos - index}
}

// Action returns the operation of the step, or an error unless exactly one
// operation is set.
func (s Step) Action() (Action, error) {
	var actions []Action

	if s.SetDotCount != nil {
		actions = append(actions, ActionSetDotCount)
	}
	if s.SetDotCountAndStartPosition != nil {
		actions = append(actions, ActionSetDotCountAndStartPosition)
	}
	if s.SetSelectedIndex != nil {
		actions = append(actions, ActionSetSelectedIndex)
	}
	if s.Scroll != nil {
		actions = append(actions, ActionScroll)
	}
	if s.Scrub != nil {
		actions = append(actions, ActionScrub)
	}
	if s.Measure != nil {
		actions = append(actions, ActionMeasure)
	}

	switch len(actions) {
	case 0:
		return "", fmt.Errorf("%w: step has no operation", ErrInvalidScript)
	case 1:
		return actions[0], nil
	}

	return "", fmt.Errorf("%w: step has %d operations %v, want one", ErrInvalidScript, len(actions), actions)
}

// Validate checks what the schema cannot express.
func (s *Script) Validate() error {
	if s.Bounds.Height <= 0 {
		return fmt.Errorf("%w: bounds.height must be positive", ErrInvalidScript)
	}

	err := s.IndicatorConfig().Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	for i, step := range s.Steps {
		_, err := step.Action()
		if err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}

		if step.Scrub != nil && step.Scrub.Samples < 2 {
			return fmt.Errorf("steps[%d]: %w: scrub needs at least 2 samples", i, ErrInvalidScript)
		}
	}

	return nil
}

// IndicatorConfig returns the script's indicator configuration with defaults
// applied.
func (s *Script) IndicatorConfig() indicator.Config {
	cfg := indicator.DefaultConfig()
	if s.Indicator != nil {
		cfg = *s.Indicator
		cfg.EnsureDefaults()
	}

	return cfg
}

// Parse validates data against the schema and decodes it. Errors point into
// data.
func Parse(data []byte) (*Script, error) {
	var anyScript any

	err := yaml.Unmarshal(data, &anyScript, false)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	err = DefaultValidator.Validate(anyScript)
	if err != nil {
		return nil, fmt.Errorf("validate script: %w", yaml.Wrap(err, yaml.WithSource(data)))
	}

	s := &Script{}

	err = yaml.Unmarshal(data, s, true)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	err = s.Validate()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := config.ReadFile(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // Return the original error.
	}

	return Parse(data)
}

// Schema returns the JSON schema of [Script].
func Schema() ([]byte, error) {
	return yaml.NewSchemaGenerator(&Script{}, SchemaURL).Generate()
}

func mustNewValidator() *yaml.Validator {
	v, err := yaml.NewSchemaGenerator(&Script{}, SchemaURL).Validator()
	if err != nil {
		panic(fmt.Sprintf("script schema: %v", err))
	}

	return v
}
