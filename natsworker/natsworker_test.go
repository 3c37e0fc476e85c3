package natsworker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cgtgo/mcgs/report"
)

func TestParseStatusMapsAllFourOutcomes(t *testing.T) {
	assert.Equal(t, report.StatusPass, parseStatus("PASS"))
	assert.Equal(t, report.StatusFail, parseStatus("FAIL"))
	assert.Equal(t, report.StatusError, parseStatus("ERROR"))
	assert.Equal(t, report.StatusUnknown, parseStatus("?"))
}
