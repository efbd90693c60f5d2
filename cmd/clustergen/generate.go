package main

import (
	"errors"
	"fmt"

	"github.com/lox/clustergen/internal/cluster"
	"github.com/lox/clustergen/internal/config"
	"github.com/lox/clustergen/internal/output"
	"github.com/lox/clustergen/internal/randutil"
)

// GenerateFlags are shared by both generators.
type GenerateFlags struct {
	Clusters  int    `short:"c" required:"" help:"Number of clusters to generate"`
	Points    int    `short:"p" required:"" help:"Number of points per cluster"`
	Output    string `short:"o" required:"" type:"path" help:"File for the generated rows"`
	Seed      *int64 `env:"CLUSTERGEN_SEED" help:"Random seed for reproducible output"`
	Config    string `env:"CLUSTERGEN_CONFIG" type:"path" help:"HCL file overriding profile settings"`
	Format    string `enum:"csv,parquet" default:"csv" help:"Output encoding (csv, parquet)"`
	Centroids string `type:"path" help:"Also write each centroid and its mutation rate to this file"`
	LogLevel  string `enum:"debug,info,warn,error" default:"info" env:"CLUSTERGEN_LOG_LEVEL" help:"Log level"`
	Summary   bool   `help:"Print a per-cluster summary table"`
}

// StrandsCmd generates clusters of DNA strands.
type StrandsCmd struct {
	GenerateFlags `embed:""`

	Length *int `short:"l" help:"Length of generated strands (default 10)"`
}

func (c *StrandsCmd) Validate() error {
	return c.check(c.Length)
}

func (c *StrandsCmd) Run(g *Globals) error {
	return c.generate(g, config.Strands, c.Length)
}

// PointsCmd generates clustered points with the point-generator defaults.
type PointsCmd struct {
	GenerateFlags `embed:""`

	MaxValue float64 `short:"v" default:"10" help:"Maximum coordinate value for points (validated, otherwise unused)"`
	Length   *int    `short:"l" help:"Length of generated strands (default 20)"`
}

func (c *PointsCmd) Validate() error {
	if c.MaxValue < 1 {
		return fmt.Errorf("--max-value must be at least 1, got %g", c.MaxValue)
	}
	return c.check(c.Length)
}

func (c *PointsCmd) Run(g *Globals) error {
	return c.generate(g, config.Points, c.Length)
}

func (f *GenerateFlags) check(length *int) error {
	if f.Clusters < 0 {
		return fmt.Errorf("--clusters must not be negative, got %d", f.Clusters)
	}
	if f.Points < 0 {
		return fmt.Errorf("--points must not be negative, got %d", f.Points)
	}
	if length != nil && *length < 1 {
		return fmt.Errorf("--length must be at least 1, got %d", *length)
	}
	return nil
}

func (f *GenerateFlags) generate(g *Globals, profileName string, length *int) (err error) {
	logger, err := newLogger(g.Stderr, f.LogLevel)
	if err != nil {
		return err
	}

	profile, err := config.Load(f.Config, profileName)
	if err != nil {
		return err
	}
	if length != nil {
		profile.Length = *length
	}

	seed := randutil.Resolve(f.Seed, g.Clock.Now())
	gen, err := cluster.New(cluster.Params{
		Clusters: f.Clusters,
		Points:   f.Points,
		Profile:  profile,
	}, randutil.New(seed), cluster.WithLogger(logger), cluster.WithClock(g.Clock))
	if err != nil {
		return err
	}

	logger.Info("Generating clusters",
		"profile", profile.Name,
		"clusters", f.Clusters,
		"points", f.Points,
		"length", profile.Length,
		"minDistance", profile.MinDistance,
		"seed", seed,
		"output", f.Output,
		"format", f.Format)

	sink, err := output.Create(f.Output, output.Format(f.Format))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", f.Output, cerr))
		}
	}()

	res, err := gen.Run(sink)
	if err != nil {
		logger.Error("Generation failed", "error", err)
		return err
	}

	if f.Centroids != "" {
		if err := output.WriteCentroids(f.Centroids, res.Clusters); err != nil {
			return fmt.Errorf("writing centroids: %w", err)
		}
	}

	logger.Info("Generation complete",
		"rows", res.Rows,
		"rejected", res.Rejected,
		"elapsed", res.Elapsed)

	if f.Summary {
		printSummary(g.Stdout, res)
	}
	return nil
}
