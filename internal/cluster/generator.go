// Package cluster generates clustered strand datasets: it samples
// well-separated centroids and emits mutated members around each of them.
package cluster

import (
	"fmt"
	"io"
	"math"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/clustergen/internal/config"
	"github.com/lox/clustergen/internal/statistics"
	"github.com/lox/clustergen/internal/strand"
)

// RowWriter receives generated members in order: all members of cluster 0,
// then cluster 1, and so on.
type RowWriter interface {
	WriteRow(cluster, member int, s strand.Strand) error
}

// Params describes one generation run.
type Params struct {
	Clusters int
	Points   int
	Profile  config.Profile
}

// Cluster is one centroid together with the mutation rate used for its
// members and what was observed while generating them.
type Cluster struct {
	Index       int
	Centroid    strand.Strand
	Intensity   float64
	Probability float64
	Divergence  statistics.Divergence
}

// Result summarises a completed run.
type Result struct {
	Clusters []Cluster
	Rows     int
	Rejected int
	Elapsed  time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress output.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithClock sets the clock used to time the run.
func WithClock(clock quartz.Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// Generator produces a clustered dataset from a seeded random source.
type Generator struct {
	params Params
	rng    *rand.Rand
	logger *log.Logger
	clock  quartz.Clock
}

// New validates params and returns a generator drawing from rng.
func New(params Params, rng *rand.Rand, opts ...Option) (*Generator, error) {
	if params.Clusters < 0 {
		return nil, fmt.Errorf("cluster count must not be negative, got %d", params.Clusters)
	}
	if params.Points < 0 {
		return nil, fmt.Errorf("points per cluster must not be negative, got %d", params.Points)
	}
	if err := params.Profile.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}

	g := &Generator{
		params: params,
		rng:    rng,
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Run samples the centroids, then writes Points mutated members for each of
// them to w.
func (g *Generator) Run(w RowWriter) (*Result, error) {
	start := g.clock.Now()
	p := g.params.Profile

	sample, err := SampleCentroids(g.rng, g.params.Clusters, p.Length, p.MinDistance, p.MaxAttempts)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Sampled centroids",
		"clusters", len(sample.Centroids),
		"rejected", sample.Rejected,
		"minDistance", p.MinDistance)

	res := &Result{
		Clusters: make([]Cluster, 0, len(sample.Centroids)),
		Rejected: sample.Rejected,
	}
	for i, centroid := range sample.Centroids {
		intensity := g.drawIntensity()
		c := Cluster{
			Index:       i,
			Centroid:    centroid,
			Intensity:   intensity,
			Probability: math.Min(intensity/float64(p.Length), 1),
		}
		g.logger.Info("Centroid",
			"cluster", i,
			"strand", centroid.String(),
			"intensity", intensity,
			"probability", c.Probability)

		for j := 0; j < g.params.Points; j++ {
			member := strand.Mutate(g.rng, centroid, c.Probability)
			if err := w.WriteRow(i, j, member); err != nil {
				return nil, fmt.Errorf("writing cluster %d member %d: %w", i, j, err)
			}
			d, _ := strand.Hamming(centroid, member)
			c.Divergence.Add(d)
			res.Rows++
		}
		res.Clusters = append(res.Clusters, c)
	}

	res.Elapsed = g.clock.Since(start)
	return res, nil
}

// drawIntensity picks the expected number of mutated positions for one
// cluster. The strands profile draws whole numbers inclusively, the points
// profile draws from the continuous range.
func (g *Generator) drawIntensity() float64 {
	lo, hi := g.params.Profile.IntensityBounds()
	if g.params.Profile.DiscreteIntensity {
		ilo, ihi := int(math.Ceil(lo)), int(math.Floor(hi))
		if ihi <= ilo {
			return float64(ilo)
		}
		return float64(ilo + g.rng.IntN(ihi-ilo+1))
	}
	if hi <= lo {
		return lo
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: g.rng}.Rand()
}
