package output

import (
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/lox/clustergen/internal/strand"
)

// Row is the parquet schema of the member file. Unlike the CSV form it
// carries the cluster index, so consumers need not rely on row order.
type Row struct {
	Cluster int32  `parquet:"cluster"`
	Member  int32  `parquet:"member"`
	Strand  string `parquet:"strand"`
}

// ParquetSink writes members as parquet rows.
type ParquetSink struct {
	w      *parquet.GenericWriter[Row]
	closer io.Closer
	buf    [1]Row
}

// NewParquet returns a parquet sink writing to w. Closing it finishes the
// parquet footer but does not close w.
func NewParquet(w io.Writer) *ParquetSink {
	return newParquetSink(w, nil)
}

func newParquetSink(w io.Writer, closer io.Closer) *ParquetSink {
	return &ParquetSink{w: parquet.NewGenericWriter[Row](w), closer: closer}
}

func (s *ParquetSink) WriteRow(cluster, member int, st strand.Strand) error {
	s.buf[0] = Row{Cluster: int32(cluster), Member: int32(member), Strand: st.String()}
	_, err := s.w.Write(s.buf[:])
	return err
}

func (s *ParquetSink) Close() error {
	err := s.w.Close()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
