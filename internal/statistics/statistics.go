package statistics

import (
	"fmt"
	"math"
)

// Divergence tracks how far generated members land from their centroid,
// measured in differing positions.
type Divergence struct {
	Members int
	Sum     float64
	Sum2    float64 // Sum of squares for variance calculation
	Max     int
}

// Add records the distance of one member from its centroid.
func (d *Divergence) Add(distance int) {
	v := float64(distance)
	d.Members++
	d.Sum += v
	d.Sum2 += v * v
	if distance > d.Max {
		d.Max = distance
	}
}

// Mean returns the average distance per member
func (d *Divergence) Mean() float64 {
	if d.Members == 0 {
		return 0
	}
	return d.Sum / float64(d.Members)
}

// Variance returns the sample variance of the recorded distances
func (d *Divergence) Variance() float64 {
	if d.Members < 2 {
		return 0
	}
	mean := d.Mean()
	v := (d.Sum2 - float64(d.Members)*mean*mean) / float64(d.Members-1)
	if v < 0 {
		// rounding on near-constant inputs
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation of the recorded distances
func (d *Divergence) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Validate checks the recorded distances against the strand length.
func (d *Divergence) Validate(length int) error {
	if d.Max > length {
		return fmt.Errorf("max distance %d exceeds strand length %d", d.Max, length)
	}
	if d.Members > 0 && d.Mean() > float64(length) {
		return fmt.Errorf("mean distance %.3f exceeds strand length %d", d.Mean(), length)
	}
	return nil
}
