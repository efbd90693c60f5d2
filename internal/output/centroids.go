package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lox/clustergen/internal/cluster"
	"github.com/lox/clustergen/internal/fileutil"
)

// WriteCentroids records each cluster's centroid and mutation rate as CSV
// lines "cluster,intensity,probability,strand". The file is replaced
// atomically so it is never seen half written.
func WriteCentroids(path string, clusters []cluster.Cluster) error {
	return fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		for _, c := range clusters {
			rec := []string{
				strconv.Itoa(c.Index),
				strconv.FormatFloat(c.Intensity, 'g', -1, 64),
				strconv.FormatFloat(c.Probability, 'g', -1, 64),
				c.Centroid.String(),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}
