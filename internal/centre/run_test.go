package centre

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsarkit/parcentre/internal/epoch"
	"github.com/pulsarkit/parcentre/internal/testutil"
)

func TestRun_WorkedExample(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", "T0 56000.0\nPB 1.5\n")
	output := filepath.Join(dir, "centred.par")
	target := 60000.0

	var out bytes.Buffer
	result, err := Run(Options{Input: input, Output: output, Epoch: &target, Out: &out})
	require.NoError(t, err)

	assert.Equal(t, 60000.5, result.New)
	assert.Equal(t, int64(2667), result.Orbits)
	assert.Equal(t, "T0 60000.5\nPB 1.5\n", testutil.ReadFile(t, output))
	assert.Contains(t, out.String(), "T0 56000 -> 60000.5 (+2667 orbits, target 60000)")
	assert.Contains(t, out.String(), "wrote "+output)
}

func TestRun_MidpointTarget(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", testutil.BinaryPar)
	output := filepath.Join(dir, "out.par")

	result, err := Run(Options{Input: input, Output: output, Quiet: true})
	require.NoError(t, err)

	// Midpoint of START 58000 / FINISH 59000.
	assert.Equal(t, 58500.0, result.Target)
	assert.LessOrEqual(t, result.New-result.Target, result.Period/2)
	assert.LessOrEqual(t, result.Target-result.New, result.Period/2)
}

func TestRun_OnlyBinaryEpochLineChanges(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", testutil.BinaryPar)
	output := filepath.Join(dir, "out.par")

	result, err := Run(Options{Input: input, Output: output, Quiet: true})
	require.NoError(t, err)

	inLines := strings.Split(testutil.BinaryPar, "\n")
	outLines := strings.Split(testutil.ReadFile(t, output), "\n")
	require.Len(t, outLines, len(inLines))
	for i := range inLines {
		if i == result.LineIndex {
			assert.NotEqual(t, inLines[i], outLines[i])
			// Uncertainty and fit flag survive the rewrite.
			assert.True(t, strings.HasSuffix(outLines[i], "5.3e-4  1"))
			continue
		}
		assert.Equal(t, inLines[i], outLines[i], "line %d must pass through unchanged", i+1)
	}
}

func TestRun_TASCWithFB0Fallback(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", testutil.CircularPar)
	output := filepath.Join(dir, "out.par")

	result, err := Run(Options{Input: input, Output: output, Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, "TASC", result.Field)
	assert.Contains(t, testutil.ReadFile(t, output), "TASC")
}

func TestRun_DefaultOutputName(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", "T0 56000.0\nPB 1.5\nSTART 58000\nFINISH 59000\n")

	testutil.WithWorkingDir(t, dir, func() {
		_, err := Run(Options{Input: input, Quiet: true})
		require.NoError(t, err)
	})

	_, err := os.Stat(filepath.Join(dir, DefaultOutputName))
	assert.NoError(t, err)
}

func TestRun_InputMissing(t *testing.T) {
	_, err := Run(Options{Input: filepath.Join(t.TempDir(), "absent.par"), Quiet: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.par")
}

func TestRun_AmbiguousModelWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", "T0 56000.0\nTASC 56000.1\nPB 1.5\nSTART 58000\nFINISH 59000\n")
	output := filepath.Join(dir, "out.par")

	_, err := Run(Options{Input: input, Output: output, Quiet: true})
	assert.ErrorIs(t, err, epoch.ErrAmbiguousModel)

	_, statErr := os.Stat(output)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", "T0 56000.0\nPB 1.5\n")
	output := filepath.Join(dir, "out.par")
	target := 60000.0

	var out bytes.Buffer
	result, err := Run(Options{Input: input, Output: output, Epoch: &target, DryRun: true, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, 60000.5, result.New)
	assert.Contains(t, out.String(), "dry run")

	_, statErr := os.Stat(output)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_DiffOutput(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", "T0 56000.0\nPB 1.5\n")
	output := filepath.Join(dir, "out.par")
	target := 60000.0

	var out bytes.Buffer
	_, err := Run(Options{Input: input, Output: output, Epoch: &target, Diff: true, Quiet: true, Out: &out})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "-T0 56000.0")
	assert.Contains(t, out.String(), "+T0 60000.5")
}

func TestRun_QuietSuppressesSummary(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", "T0 56000.0\nPB 1.5\n")
	output := filepath.Join(dir, "out.par")
	target := 60000.0

	var out bytes.Buffer
	_, err := Run(Options{Input: input, Output: output, Epoch: &target, Quiet: true, Out: &out})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRun_SecondRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WritePar(t, dir, "pulsar.par", "T0 56000.0\nPB 1.5\n")
	first := filepath.Join(dir, "first.par")
	second := filepath.Join(dir, "second.par")
	target := 60000.0

	_, err := Run(Options{Input: input, Output: first, Epoch: &target, Quiet: true})
	require.NoError(t, err)
	result, err := Run(Options{Input: first, Output: second, Epoch: &target, Quiet: true})
	require.NoError(t, err)

	assert.False(t, result.Changed())
	assert.Equal(t, testutil.ReadFile(t, first), testutil.ReadFile(t, second))
}
