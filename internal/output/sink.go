// Package output writes generated members and centroids to disk.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/lox/clustergen/internal/strand"
)

// Format selects the encoding of the member file.
type Format string

const (
	CSV     Format = "csv"
	Parquet Format = "parquet"
)

// Sink receives generated members one row at a time.
type Sink interface {
	WriteRow(cluster, member int, s strand.Strand) error
	Close() error
}

// Create opens path for writing, truncating any existing file, and returns
// a sink for the requested format. The file stays open until Close.
func Create(path string, format Format) (Sink, error) {
	switch format {
	case CSV, Parquet:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	if format == Parquet {
		return newParquetSink(f, f), nil
	}
	return newCSVSink(f, f), nil
}

// CSVSink writes each member as one record with a single-character field per
// symbol. No header row is written.
type CSVSink struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSV returns a CSV sink writing to w. Closing it flushes but does not
// close w.
func NewCSV(w io.Writer) *CSVSink {
	return newCSVSink(w, nil)
}

func newCSVSink(w io.Writer, closer io.Closer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w), closer: closer}
}

func (s *CSVSink) WriteRow(cluster, member int, st strand.Strand) error {
	return s.w.Write(st.Fields())
}

func (s *CSVSink) Close() error {
	s.w.Flush()
	err := s.w.Error()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
