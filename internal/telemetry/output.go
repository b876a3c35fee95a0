package telemetry

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// FileName is the CSV written inside the output directory.
const FileName = "population.csv"

// Writer appends Records to population.csv.
type Writer struct {
	file          *os.File
	headerWritten bool
}

// NewWriter creates the output directory and CSV file.
// Returns nil if dir is empty (output disabled).
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", dir)
	}
	f, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", FileName)
	}
	return &Writer{file: f}, nil
}

// Write appends one record, emitting the header on the first call.
func (w *Writer) Write(rec Record) error {
	if w == nil {
		return nil
	}
	records := []Record{rec}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return errors.Wrap(err, "writing population record")
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return errors.Wrap(err, "writing population record")
	}
	return nil
}

// Close flushes and closes the file.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	return w.file.Close()
}
