package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/tverberg/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReadPoints(t *testing.T) {
	points, err := readPoints(strings.NewReader(`
# the unit square
0 0
1 1

  1 0
0	1
`))
	require.NoError(t, err)
	assert.Equal(t, []advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}, points)

	points, err = readPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestReadPoints_Errors(t *testing.T) {
	_, err := readPoints(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, `line 2: expected "x y", got "1"`)

	_, err = readPoints(strings.NewReader("0 0\n1 1\n2 two\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "line 3: y: "))
}

func TestPrintResult(t *testing.T) {
	points := []advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0.5, Y: -3}}

	var buf bytes.Buffer
	printResult(&buf, points, advanced.Search(points))
	out := buf.String()
	assert.Contains(t, out, "center (0.50, 0.50)")
	assert.Contains(t, out, "intersection phase candidate, excluding [0 1 2 3]")
	assert.Contains(t, out, "line 0-1\n")
	assert.Contains(t, out, "line 2-3\n")
	assert.Contains(t, out, "1 points left over")

	buf.Reset()
	collinear := []advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	printResult(&buf, collinear, advanced.Search(collinear))
	assert.Contains(t, buf.String(), advanced.ErrNoCenterFound.Error())
}

func TestColorize(t *testing.T) {
	passed := advanced.StepOutcome{Kind: advanced.StepTested, Test: advanced.HalfspaceTest{Passed: true}, Message: "pass"}
	failed := advanced.StepOutcome{Kind: advanced.StepTested, Message: "fail"}
	found := advanced.StepOutcome{Kind: advanced.StepFound, Message: "found"}

	assert.Equal(t, aurora.Green("pass").String(), colorize(passed))
	assert.Equal(t, aurora.Red("fail").String(), colorize(failed))
	assert.Equal(t, aurora.Cyan("found").String(), colorize(found))
}

func TestPreview_MissingImage(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := filepath.Join(t.TempDir(), "missing.png")

	var out bytes.Buffer
	preview(path, &out, zap.New(core))

	warnings := logs.FilterMessage("preview failed").All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	assert.Equal(t, path, fields["path"])
	assert.Contains(t, fields["error"], "missing.png")
	assert.Empty(t, out.String())
}
