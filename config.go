package evergreen

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls how many particles are built, the shape of both
// arrangements and how fast the morph runs.
//
// Counts, heights and radii are consumed once when the dataset is built;
// AnimationSpeed is read every frame.
type Config struct {
	// NeedleCount is the number of foliage particles.
	NeedleCount int `json:"needleCount"`
	// GiftCount is the number of gift boxes. Each box carries one ribbon.
	GiftCount int `json:"giftCount"`
	// SphereCount is the number of baubles.
	SphereCount int `json:"sphereCount"`
	// MiscCount is the pooled count split between cones, small stars and
	// free-standing ribbons.
	MiscCount int `json:"miscCount"`
	// TreeHeight is the height of the assembled tree, centered on the origin.
	TreeHeight float64 `json:"treeHeight"`
	// TreeRadius is the radius of the tree at its base.
	TreeRadius float64 `json:"treeRadius"`
	// ScatterRadius is the radius of the sphere the scattered cloud fills.
	ScatterRadius float64 `json:"scatterRadius"`
	// AnimationSpeed is the damping rate, per second, of the morph progress.
	AnimationSpeed float64 `json:"animationSpeed"`
	// Seed seeds the random source used to build the dataset. Zero picks a
	// fresh random seed, so every run looks different.
	Seed uint64 `json:"seed"`
	// Palette overrides individual palette entries; empty entries keep
	// their defaults.
	Palette PaletteHex `json:"palette"`
}

// DefaultConfig returns the stock scene configuration.
func DefaultConfig() Config {
	return Config{
		NeedleCount:    4000,
		GiftCount:      120,
		SphereCount:    120,
		MiscCount:      80,
		TreeHeight:     18,
		TreeRadius:     6.5,
		ScatterRadius:  40,
		AnimationSpeed: 1.8,
		Palette:        DefaultPaletteHex,
	}
}

// Validate reports every out-of-range field. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	positiveInt := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, name, v))
		}
	}
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, name, v))
		}
	}
	positiveInt("needleCount", c.NeedleCount)
	positiveInt("giftCount", c.GiftCount)
	positiveInt("sphereCount", c.SphereCount)
	positiveInt("miscCount", c.MiscCount)
	positive("treeHeight", c.TreeHeight)
	positive("treeRadius", c.TreeRadius)
	positive("scatterRadius", c.ScatterRadius)
	positive("animationSpeed", c.AnimationSpeed)
	if _, err := c.Palette.Parse(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}

// LoadConfig parses a JSON document on top of DefaultConfig and validates
// the result. Fields missing from the document keep their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
