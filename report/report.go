// Package report implements the solver's batch-run result recording:
// one Result per case, a CSVWriter emitting exactly the column set a
// batch run needs, and a Summary of aggregate statistics over a run
// computed with gonum.org/v1/gonum/stat, grounded on
// preendgame/peg_generic.go's CSV-reporting shape in the teacher repo.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"

	"github.com/cgtgo/mcgs/cgtbasics"
)

// OutcomeKind tags which variant of Outcome is populated.
type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWinLoss
	OutcomeNimber
)

// Outcome is the tagged union a case's expected or actual result carries:
// either nothing (a case with no known answer), a win/loss bool (the
// partizan solver's verdict), or a nimber (the impartial solver's
// verdict).
type Outcome struct {
	Kind   OutcomeKind
	Win    bool
	Nimber int
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeWinLoss:
		if o.Win {
			return "win"
		}
		return "loss"
	case OutcomeNimber:
		return fmt.Sprintf("*%d", o.Nimber)
	default:
		return ""
	}
}

// Status reports whether a case's actual result matched its expected one.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusPass
	StatusFail
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusError:
		return "ERROR"
	default:
		return "?"
	}
}

// Result is one case's outcome from a batch run.
type Result struct {
	File           string
	Case           string
	Games          int
	Player         cgtbasics.Color
	Expected       Outcome
	Actual         Outcome
	TimeMS         float64
	Status         Status
	Comments       string
	NodeCount      uint64
	UniqueSumCount uint64
	InputHash      string
}

// CSVWriter writes Results in the exact column order a batch run reports.
type CSVWriter struct {
	w *csv.Writer
}

var csvHeader = []string{
	"File", "Case", "Games", "Player", "Expected Result", "Result",
	"Time (ms)", "Status", "Comments", "Node Count", "Unique Sum Count",
	"Input hash",
}

// NewCSVWriter wraps w and immediately writes the header row.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := &CSVWriter{w: csv.NewWriter(w)}
	if err := cw.w.Write(csvHeader); err != nil {
		return nil, err
	}
	return cw, nil
}

// WriteRow appends one result row and flushes.
func (cw *CSVWriter) WriteRow(r Result) error {
	row := []string{
		r.File,
		r.Case,
		fmt.Sprintf("%d", r.Games),
		r.Player.String(),
		r.Expected.String(),
		r.Actual.String(),
		fmt.Sprintf("%.3f", r.TimeMS),
		r.Status.String(),
		r.Comments,
		fmt.Sprintf("%d", r.NodeCount),
		fmt.Sprintf("%d", r.UniqueSumCount),
		r.InputHash,
	}
	if err := cw.w.Write(row); err != nil {
		return err
	}
	cw.w.Flush()
	return cw.w.Error()
}

// Summary holds aggregate statistics over a batch run's timings and node
// counts.
type Summary struct {
	Cases           int
	Passed          int
	Failed          int
	Errored         int
	MeanTimeMS      float64
	StdDevTimeMS    float64
	MeanNodeCount   float64
	StdDevNodeCount float64
}

// Summarize computes a Summary over a batch of Results using gonum's
// stat package for the mean/stddev reductions.
func Summarize(results []Result) Summary {
	var s Summary
	times := make([]float64, 0, len(results))
	nodes := make([]float64, 0, len(results))
	for _, r := range results {
		s.Cases++
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		case StatusError:
			s.Errored++
		}
		times = append(times, r.TimeMS)
		nodes = append(nodes, float64(r.NodeCount))
	}
	if len(times) > 0 {
		s.MeanTimeMS = stat.Mean(times, nil)
		s.StdDevTimeMS = stat.StdDev(times, nil)
		s.MeanNodeCount = stat.Mean(nodes, nil)
		s.StdDevNodeCount = stat.StdDev(nodes, nil)
	}
	return s
}

// Print writes a short human-readable summary.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "%d cases: %d passed, %d failed, %d errored\n", s.Cases, s.Passed, s.Failed, s.Errored)
	fmt.Fprintf(w, "time (ms): mean %.2f, stddev %.2f\n", s.MeanTimeMS, s.StdDevTimeMS)
	fmt.Fprintf(w, "nodes: mean %.2f, stddev %.2f\n", s.MeanNodeCount, s.StdDevNodeCount)
}
