package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topsisrun/internal/table"
	"topsisrun/internal/topsis"
)

const sampleCSV = `Model,Price,Storage,Camera,Looks
M1,250,16,12,5
M2,200,16,8,3
M3,300,32,16,4
M4,275,32,8,4
M5,225,16,16,2
`

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestRunScoring_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "result.csv")

	err := runScoring(input, "0.25,0.25,0.25,0.25", "-,+,+,-", output, topsis.DefaultDecimals)
	require.NoError(t, err)

	result, err := table.NewCSVReader().LoadFile(output)
	require.NoError(t, err)

	assert.Equal(t, []string{"Model", "Price", "Storage", "Camera", "Looks", "Topsis Score", "Rank"}, result.Header)
	require.Equal(t, 5, result.RowCount())

	wantScores := []string{"0.2524", "0.4077", "0.5923", "0.4529", "0.6103"}
	wantRanks := []string{"5", "4", "2", "3", "1"}
	for i, row := range result.Rows {
		assert.Equal(t, wantScores[i], row[5], "score row %d", i)
		assert.Equal(t, wantRanks[i], row[6], "rank row %d", i)
	}
}

func TestRunScoring_WeightMismatchWritesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "result.csv")

	err := runScoring(input, "1,1", "-,+,+,-", output, topsis.DefaultDecimals)
	var ierr *topsis.InputError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Error(), "weight count mismatch")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "failed run must not produce an output file")
}

func TestRunScoring_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	err := runScoring(filepath.Join(dir, "absent.csv"), "1,1,1,1", "+,+,+,+", filepath.Join(dir, "out.csv"), topsis.DefaultDecimals)
	var ferr *topsis.FileAccessError
	require.ErrorAs(t, err, &ferr)
}

func TestRootCmd_ArgCount(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"only", "three", "args"})
	err := cmd.Execute()
	var uerr *topsis.UsageError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Error(), "incorrect number of parameters")
}

func TestRootCmd_ProfileRun(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "result.csv")
	profilePath := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profilePath, []byte(
		"weights: [0.25, 0.25, 0.25, 0.25]\nimpacts: [\"-\", \"+\", \"+\", \"-\"]\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--profile", profilePath, input, output})
	require.NoError(t, cmd.Execute())

	result, err := table.NewCSVReader().LoadFile(output)
	require.NoError(t, err)
	assert.Equal(t, 5, result.RowCount())
	assert.Equal(t, "Rank", result.Header[len(result.Header)-1])
}
