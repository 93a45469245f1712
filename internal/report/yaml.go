package report

import (
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/fibbench/internal/bench"
	"gopkg.in/yaml.v3"
)

// File is the top-level document written by WriteYAML.
type File struct {
	Passed  bool     `yaml:"passed"`
	Results []Record `yaml:"results"`
}

// Record is the serialized form of a bench.Result. Durations are nanoseconds.
type Record struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"`
	N         int    `yaml:"n"`
	Expect    uint64 `yaml:"expect"`
	Got       uint64 `yaml:"got"`
	Passed    bool   `yaml:"passed"`
	Unit      string `yaml:"unit"`
	Clock     string `yaml:"clock"`
	ElapsedNs int64  `yaml:"elapsed_ns"`
	MinNs     int64  `yaml:"min_ns"`
	MeanNs    int64  `yaml:"mean_ns"`
	Runs      int    `yaml:"runs"`
	Error     string `yaml:"error,omitempty"`
}

// NewFile converts results into their serialized form.
func NewFile(results []*bench.Result) *File {
	f := &File{Passed: bench.AllPassed(results), Results: make([]Record, 0, len(results))}
	for _, res := range results {
		rec := Record{
			Name:      res.Name,
			Algorithm: res.Algorithm,
			N:         res.N,
			Expect:    res.Expect,
			Got:       res.Got,
			Passed:    res.Passed,
			Unit:      string(res.Unit),
			Clock:     string(res.Clock),
			ElapsedNs: res.Elapsed.Nanoseconds(),
			MinNs:     res.Min.Nanoseconds(),
			MeanNs:    res.Mean.Nanoseconds(),
			Runs:      res.Runs,
		}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		f.Results = append(f.Results, rec)
	}
	return f
}

// WriteYAML encodes results as YAML to w.
func WriteYAML(w io.Writer, results []*bench.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewFile(results)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// WriteYAMLFile writes the YAML report to path, replacing any existing file.
func WriteYAMLFile(path string, results []*bench.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteYAML(f, results)
}
