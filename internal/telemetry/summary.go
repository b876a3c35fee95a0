package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the population over a run.
type Summary struct {
	Generations    int
	MeanPopulation float64
	StdDev         float64
	MinPopulation  float64
	MaxPopulation  float64
}

// Summarize computes a Summary over population samples.
func Summarize(populations []float64) Summary {
	if len(populations) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(populations, nil)
	return Summary{
		Generations:    len(populations),
		MeanPopulation: mean,
		StdDev:         std,
		MinPopulation:  floats.Min(populations),
		MaxPopulation:  floats.Max(populations),
	}
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.Generations),
		slog.Float64("mean_population", s.MeanPopulation),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("min_population", s.MinPopulation),
		slog.Float64("max_population", s.MaxPopulation),
	)
}

// Recorder collects Records for a run and forwards them to an optional Writer.
type Recorder struct {
	out         *Writer
	populations []float64
}

// NewRecorder returns a Recorder writing to out, which may be nil.
func NewRecorder(out *Writer) *Recorder {
	return &Recorder{out: out}
}

// Observe stores rec and writes it out.
func (r *Recorder) Observe(rec Record) error {
	r.populations = append(r.populations, float64(rec.Population))
	return r.out.Write(rec)
}

// Summary summarizes everything observed so far.
func (r *Recorder) Summary() Summary {
	return Summarize(r.populations)
}

// Close closes the underlying Writer.
func (r *Recorder) Close() error {
	return r.out.Close()
}
