// Package config holds the generator profiles and loads overrides for them
// from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Profile names
const (
	Strands = "strands"
	Points  = "points"
)

// DefaultMaxAttempts bounds the draws spent on each centroid before the run
// is declared infeasible.
const DefaultMaxAttempts = 10000

// Profile is the full parameter set of one generator.
type Profile struct {
	Name         string
	Length       int
	MinDistance  int
	MaxAttempts  int
	MinIntensity float64
	// MaxIntensity nil means half the strand length (integer division).
	MaxIntensity *float64
	// DiscreteIntensity draws whole-number intensities.
	DiscreteIntensity bool
}

// File is the decoded form of a profile file.
type File struct {
	Profiles []ProfileBlock `hcl:"profile,block"`
}

// ProfileBlock overrides the defaults of one named profile.
type ProfileBlock struct {
	Name         string   `hcl:"name,label"`
	Length       *int     `hcl:"length,optional"`
	MinDistance  *int     `hcl:"min_distance,optional"`
	MaxAttempts  *int     `hcl:"max_attempts,optional"`
	MinIntensity *float64 `hcl:"min_intensity,optional"`
	MaxIntensity *float64 `hcl:"max_intensity,optional"`
}

// Default returns the built-in profile for name.
func Default(name string) (Profile, error) {
	switch name {
	case Strands:
		return Profile{
			Name:              Strands,
			Length:            10,
			MinDistance:       3,
			MaxAttempts:       DefaultMaxAttempts,
			MinIntensity:      1,
			DiscreteIntensity: true,
		}, nil
	case Points:
		return Profile{
			Name:         Points,
			Length:       20,
			MinDistance:  5,
			MaxAttempts:  DefaultMaxAttempts,
			MinIntensity: 1,
		}, nil
	}
	return Profile{}, fmt.Errorf("unknown profile %q", name)
}

// Load returns the profile for name with any overrides from the HCL file at
// path applied. An empty path or a missing file yields the defaults.
func Load(path, name string) (Profile, error) {
	p, err := Default(name)
	if err != nil {
		return Profile{}, err
	}
	if path == "" {
		return p, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return p, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Profile{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return Profile{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	seen := map[string]bool{}
	for _, block := range cfg.Profiles {
		if _, err := Default(block.Name); err != nil {
			return Profile{}, fmt.Errorf("%s: %w", path, err)
		}
		if seen[block.Name] {
			return Profile{}, fmt.Errorf("%s: profile %q defined twice", path, block.Name)
		}
		seen[block.Name] = true
		if block.Name == name {
			block.apply(&p)
		}
	}

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (b ProfileBlock) apply(p *Profile) {
	if b.Length != nil {
		p.Length = *b.Length
	}
	if b.MinDistance != nil {
		p.MinDistance = *b.MinDistance
	}
	if b.MaxAttempts != nil {
		p.MaxAttempts = *b.MaxAttempts
	}
	if b.MinIntensity != nil {
		p.MinIntensity = *b.MinIntensity
	}
	if b.MaxIntensity != nil {
		v := *b.MaxIntensity
		p.MaxIntensity = &v
	}
}

// Validate validates the profile
func (p Profile) Validate() error {
	if p.Length < 1 {
		return fmt.Errorf("profile %s: length must be at least 1, got %d", p.Name, p.Length)
	}
	if p.MinDistance < 0 {
		return fmt.Errorf("profile %s: min_distance must not be negative", p.Name)
	}
	if p.MaxAttempts < 1 {
		return fmt.Errorf("profile %s: max_attempts must be at least 1", p.Name)
	}
	if p.MinIntensity < 0 {
		return fmt.Errorf("profile %s: min_intensity must not be negative", p.Name)
	}
	if p.MaxIntensity != nil && *p.MaxIntensity < p.MinIntensity {
		return fmt.Errorf("profile %s: max_intensity %.3g is below min_intensity %.3g",
			p.Name, *p.MaxIntensity, p.MinIntensity)
	}
	return nil
}

// IntensityBounds returns the range the per-cluster mutation intensity is
// drawn from. Without an explicit maximum the upper bound is half the strand
// length, raised to the minimum for very short strands.
func (p Profile) IntensityBounds() (lo, hi float64) {
	lo = p.MinIntensity
	if p.MaxIntensity != nil {
		return lo, *p.MaxIntensity
	}
	hi = float64(p.Length / 2)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
