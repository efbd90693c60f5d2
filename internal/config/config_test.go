package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clustergen.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		minDist  int
		discrete bool
	}{
		{Strands, 10, 3, true},
		{Points, 20, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Default(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.length, p.Length)
			assert.Equal(t, tt.minDist, p.MinDistance)
			assert.Equal(t, tt.discrete, p.DiscreteIntensity)
			assert.Equal(t, DefaultMaxAttempts, p.MaxAttempts)
			assert.NoError(t, p.Validate())
		})
	}

	_, err := Default("nope")
	assert.Error(t, err)
}

func TestIntensityBounds(t *testing.T) {
	p, err := Default(Strands)
	require.NoError(t, err)

	lo, hi := p.IntensityBounds()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 5.0, hi)

	p.Length = 11
	_, hi = p.IntensityBounds()
	assert.Equal(t, 5.0, hi, "half length uses integer division")

	p.Length = 1
	lo, hi = p.IntensityBounds()
	assert.Equal(t, lo, hi, "upper bound raised to the minimum")

	upper := 2.5
	p.MaxIntensity = &upper
	_, hi = p.IntensityBounds()
	assert.Equal(t, 2.5, hi)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "absent.hcl"), Points)
	require.NoError(t, err)

	want, _ := Default(Points)
	assert.Equal(t, want, p)

	p, err = Load("", Strands)
	require.NoError(t, err)
	want, _ = Default(Strands)
	assert.Equal(t, want, p)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
profile "strands" {
  length        = 12
  min_distance  = 4
  max_attempts  = 500
  min_intensity = 0
  max_intensity = 3
}

profile "points" {
  length = 30
}
`)

	p, err := Load(path, Strands)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Length)
	assert.Equal(t, 4, p.MinDistance)
	assert.Equal(t, 500, p.MaxAttempts)
	assert.Equal(t, 0.0, p.MinIntensity)
	require.NotNil(t, p.MaxIntensity)
	assert.Equal(t, 3.0, *p.MaxIntensity)
	assert.True(t, p.DiscreteIntensity)

	p, err = Load(path, Points)
	require.NoError(t, err)
	assert.Equal(t, 30, p.Length)
	assert.Equal(t, 5, p.MinDistance, "unset attributes keep defaults")
	assert.Nil(t, p.MaxIntensity)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `profile "strands" {`},
		{"unknown profile", `profile "vectors" {}`},
		{"unknown attribute", `profile "strands" { colour = "red" }`},
		{"duplicate", "profile \"strands\" {}\nprofile \"strands\" {}"},
		{"zero length", `profile "strands" { length = 0 }`},
		{"negative distance", `profile "strands" { min_distance = -1 }`},
		{"zero attempts", `profile "strands" { max_attempts = 0 }`},
		{"inverted intensity", `profile "strands" {
  min_intensity = 4
  max_intensity = 2
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), Strands)
			assert.Error(t, err)
		})
	}
}
