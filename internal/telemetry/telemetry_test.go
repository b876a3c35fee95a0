package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"conway/pkg/life"
)

func TestNewRecord(t *testing.T) {
	g, err := life.Block.Grid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	g.Step()
	rec := NewRecord(g, 1500*time.Millisecond)
	if rec.Generation != 1 || rec.Population != 4 || rec.ElapsedMS != 1500 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if math.Abs(rec.Density-0.25) > 1e-9 {
		t.Fatalf("expected density 0.25, got %f", rec.Density)
	}
}

func TestWriterHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}
	for gen := range 3 {
		if err := w.Write(Record{Generation: gen, Population: 10 - gen}); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), data)
	}
	if lines[0] != "generation,population,density,elapsed_ms" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "2,8,") {
		t.Fatalf("unexpected last row %q", lines[3])
	}
}

func TestNilWriterIsNoop(t *testing.T) {
	w, err := NewWriter("")
	if err != nil || w != nil {
		t.Fatalf("expected nil writer for empty dir, got %v, %v", w, err)
	}
	if err := w.Write(Record{}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	if s.Generations != 4 || s.MinPopulation != 1 || s.MaxPopulation != 4 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if math.Abs(s.MeanPopulation-2.5) > 1e-9 {
		t.Fatalf("expected mean 2.5, got %f", s.MeanPopulation)
	}
	if math.Abs(s.StdDev-math.Sqrt(5.0/3)) > 1e-9 {
		t.Fatalf("unexpected std dev %f", s.StdDev)
	}
	if (Summarize(nil) != Summary{}) {
		t.Fatal("empty input should give a zero summary")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(nil)
	for _, pop := range []int{5, 3, 4} {
		if err := r.Observe(Record{Population: pop}); err != nil {
			t.Fatal(err)
		}
	}
	s := r.Summary()
	if s.Generations != 3 || s.MaxPopulation != 5 || s.MinPopulation != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}
