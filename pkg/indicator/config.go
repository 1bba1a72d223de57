package indicator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by [Config.Validate].
var ErrInvalidConfig = errors.New("invalid indicator config")

// Defaults used by [DefaultConfig] and [Config.EnsureDefaults].
const (
	DefaultVisibleCount    = 5
	DefaultDotRadius       = 20
	DefaultDotRadiusMin    = 10
	DefaultDotSpacing      = 10
	DefaultAlphaMin        = 0.2
	DefaultAlphaMax        = 1.0
	DefaultJitterTolerance = 0.02
)

// Config holds the indicator appearance. All lengths are in the same unit as
// the [Bounds] passed to [Config.Measure].
type Config struct {
	// VisibleCount is the maximum number of dots shown at once.
	VisibleCount int `json:"visibleCount,omitempty" jsonschema:"title=Visible Count,minimum=1"`
	// DotRadius is the radius of a regular dot.
	DotRadius float64 `json:"dotRadius,omitempty" jsonschema:"title=Dot Radius,minimum=0"`
	// DotRadiusMin is the radius of a dot at the edge of the window.
	DotRadiusMin float64 `json:"dotRadiusMin,omitempty" jsonschema:"title=Dot Radius Min,minimum=0"`
	// DotSpacing is the gap between two dots. It is replaced by [Config.Measure].
	DotSpacing float64 `json:"dotSpacing,omitempty" jsonschema:"title=Dot Spacing,minimum=0"`
	// AlphaMin is the opacity of an unselected dot, in [0, 1].
	AlphaMin float64 `json:"alphaMin,omitempty" jsonschema:"title=Alpha Min,minimum=0,maximum=1"`
	// AlphaMax is the opacity of the selected dot, in [0, 1].
	AlphaMax float64 `json:"alphaMax,omitempty" jsonschema:"title=Alpha Max,minimum=0,maximum=1"`
	// JitterTolerance is how close to a page the first sample of a drag must
	// be for it to be ignored.
	JitterTolerance float64 `json:"jitterTolerance,omitempty" jsonschema:"title=Jitter Tolerance,minimum=0,maximum=0.5"`
}

// DefaultConfig returns a [Config] with default values.
func DefaultConfig() Config {
	c := Config{}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults sets zero fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.VisibleCount == 0 {
		c.VisibleCount = DefaultVisibleCount
	}
	if c.DotRadius == 0 {
		c.DotRadius = DefaultDotRadius
	}
	if c.DotRadiusMin == 0 {
		c.DotRadiusMin = DefaultDotRadiusMin
	}
	if c.DotSpacing == 0 {
		c.DotSpacing = DefaultDotSpacing
	}
	if c.AlphaMin == 0 {
		c.AlphaMin = DefaultAlphaMin
	}
	if c.AlphaMax == 0 {
		c.AlphaMax = DefaultAlphaMax
	}
	if c.JitterTolerance == 0 {
		c.JitterTolerance = DefaultJitterTolerance
	}
}

// Validate checks that the config describes a drawable indicator.
func (c Config) Validate() error {
	switch {
	case c.VisibleCount < 1:
		return fmt.Errorf("%w: visibleCount must be at least 1, got %d", ErrInvalidConfig, c.VisibleCount)
	case c.DotRadius < 0 || c.DotRadiusMin < 0:
		return fmt.Errorf("%w: dot radii must not be negative", ErrInvalidConfig)
	case c.DotRadiusMin > c.DotRadius:
		return fmt.Errorf("%w: dotRadiusMin (%g) is larger than dotRadius (%g)",
			ErrInvalidConfig, c.DotRadiusMin, c.DotRadius)
	case c.DotSpacing < 0:
		return fmt.Errorf("%w: dotSpacing must not be negative", ErrInvalidConfig)
	case !inUnit(c.AlphaMin) || !inUnit(c.AlphaMax):
		return fmt.Errorf("%w: alpha values must be in [0, 1]", ErrInvalidConfig)
	case c.AlphaMin > c.AlphaMax:
		return fmt.Errorf("%w: alphaMin (%g) is larger than alphaMax (%g)",
			ErrInvalidConfig, c.AlphaMin, c.AlphaMax)
	case c.JitterTolerance < 0 || c.JitterTolerance > 0.5:
		return fmt.Errorf("%w: jitterTolerance must be in [0, 0.5]", ErrInvalidConfig)
	}

	return nil
}

// Measure runs a measurement pass against the given bounds. The returned
// [Layout] reserves room for VisibleCount+2 dots, so that partially visible
// dots fit above and below the window while it slides.
func (c Config) Measure(b Bounds) Layout {
	n := float64(c.VisibleCount)
	spacing := (b.drawHeight() - (n+2)*2*c.DotRadius) / (n + 1)
	if spacing < 0 || math.IsNaN(spacing) {
		spacing = 0
	}

	c.DotSpacing = spacing

	return Layout{Config: c, Bounds: b}
}

// Bounds is the drawing area of the indicator.
type Bounds struct {
	Width         float64 `json:"width"                   yaml:"width"`
	Height        float64 `json:"height"                  yaml:"height"`
	PaddingTop    float64 `json:"paddingTop,omitempty"    yaml:"paddingTop,omitempty"`
	PaddingBottom float64 `json:"paddingBottom,omitempty" yaml:"paddingBottom,omitempty"`
}

func (b Bounds) drawHeight() float64 {
	return b.Height - b.PaddingTop - b.PaddingBottom
}

// Layout is a [Config] measured against [Bounds].
type Layout struct {
	Bounds
	Config
}

// Step is the distance between the centers of two neighbouring dots.
func (l Layout) Step() float64 {
	return 2*l.DotRadius + l.DotSpacing
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
