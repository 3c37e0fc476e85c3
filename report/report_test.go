package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriterWritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf)
	require.NoError(t, err)
	err = w.WriteRow(Result{
		File: "cases.txt", Case: "1", Games: 2,
		Expected: Outcome{Kind: OutcomeWinLoss, Win: true},
		Actual:   Outcome{Kind: OutcomeWinLoss, Win: true},
		TimeMS:   12.5, Status: StatusPass,
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "File,Case,Games,Player")
	assert.Contains(t, out, "cases.txt,1,2")
	assert.Contains(t, out, "PASS")
}

func TestSummarizeComputesMeanAndStdDev(t *testing.T) {
	results := []Result{
		{TimeMS: 10, NodeCount: 100, Status: StatusPass},
		{TimeMS: 20, NodeCount: 200, Status: StatusFail},
	}
	s := Summarize(results)
	assert.Equal(t, 2, s.Cases)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.InDelta(t, 15.0, s.MeanTimeMS, 0.001)
}
