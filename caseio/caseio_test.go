package caseio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/report"
)

func TestParseCasesReadsVersionAndGames(t *testing.T) {
	input := "{version 1}\n" +
		"[Clobber1xN](XO){B win} /simple capture/\n" +
		"[Kayles](5)[Kayles](3){N}\n"
	cases, err := ParseCases(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Len(t, cases[0].Games, 1)
	assert.Equal(t, cgtbasics.Black, cases[0].ToPlay)
	assert.Equal(t, report.OutcomeWinLoss, cases[0].Expected.Kind)
	assert.True(t, cases[0].Expected.Win)
	assert.Equal(t, "simple capture", cases[0].Comment)

	assert.Len(t, cases[1].Games, 2)
	assert.Equal(t, report.OutcomeNone, cases[1].Expected.Kind)
	assert.True(t, cases[1].Impartial)
}

func TestParseCasesRejectsMisplacedVersion(t *testing.T) {
	input := "[Kayles](1)\n{version 1}\n"
	_, err := ParseCases(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseCasesRejectsUnregisteredType(t *testing.T) {
	_, err := ParseCases(strings.NewReader("[Nonsense](xyz)\n"))
	assert.Error(t, err)
}
