package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"topsisrun/internal/profile"
	"topsisrun/internal/table"
	"topsisrun/internal/topsis"
)

const (
	appName = "topsisrun"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var profilePath string
	var decimals int

	cmd := &cobra.Command{
		Use:     appName + " <input-file> <weights> <impacts> <output-file>",
		Short:   "Rank alternatives with the TOPSIS method",
		Version: version,
		Long: `topsisrun ranks the rows of a decision table by TOPSIS preference score.

The input file (.csv or .xlsx) holds one alternative per row: an identifier
column followed by numeric criterion columns. Weights and impacts are
comma-separated, one entry per criterion; impacts are + (benefit, higher is
better) or - (cost, lower is better). The output CSV is the input table with
Topsis Score and Rank columns appended.

Example:
  topsisrun data.csv 0.25,0.25,0.25,0.25 -,+,+,- result.csv
  topsisrun --profile weights.yaml data.csv result.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			want := 4
			if p, _ := cmd.Flags().GetString("profile"); p != "" {
				want = 2
			}
			if len(args) != want {
				return &topsis.UsageError{Msg: fmt.Sprintf(
					"incorrect number of parameters: required %s <input-file> <weights> <impacts> <output-file>, or %s --profile <yaml> <input-file> <output-file>",
					appName, appName)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, weightsArg, impactsArg, output, err := resolveArgs(args, profilePath)
			if err != nil {
				return err
			}
			return runScoring(input, weightsArg, impactsArg, output, decimals)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "YAML file with weights and impacts, replacing the two vector arguments")
	cmd.Flags().IntVar(&decimals, "decimals", topsis.DefaultDecimals, "decimal places for presented scores")
	return cmd
}

// resolveArgs maps the positional arguments onto the four scoring inputs,
// reading weights and impacts from the profile file when one is given.
func resolveArgs(args []string, profilePath string) (input, weightsArg, impactsArg, output string, err error) {
	if profilePath == "" {
		return args[0], args[1], args[2], args[3], nil
	}
	loader := profile.NewLoader()
	if err := loader.LoadFromFile(profilePath); err != nil {
		return "", "", "", "", err
	}
	p := loader.Profile()
	return args[0], p.WeightsArg(), p.ImpactsArg(), args[1], nil
}

// runScoring executes one load → validate → compute → write pass.
func runScoring(input, weightsArg, impactsArg, output string, decimals int) error {
	start := time.Now()

	tbl, err := table.Load(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return &topsis.FileAccessError{Path: input, Err: err}
		}
		return err
	}
	log.Info().Str("input", input).Int("alternatives", tbl.RowCount()).Int("criteria", tbl.Columns()-1).Msg("table loaded")

	matrix, weights, impacts, err := topsis.Validate(tbl, weightsArg, impactsArg)
	if err != nil {
		return err
	}

	scores, ranks, err := topsis.NewEngine(decimals).Compute(matrix, weights, impacts)
	if err != nil {
		return err
	}

	scoreCells := make([]string, len(scores))
	rankCells := make([]string, len(ranks))
	for i := range scores {
		scoreCells[i] = strconv.FormatFloat(scores[i], 'f', -1, 64)
		rankCells[i] = strconv.Itoa(ranks[i])
	}
	if err := tbl.AppendColumn("Topsis Score", scoreCells); err != nil {
		return err
	}
	if err := tbl.AppendColumn("Rank", rankCells); err != nil {
		return err
	}

	if err := table.NewCSVWriter().WriteFile(output, tbl); err != nil {
		return &topsis.FileAccessError{Path: output, Err: err}
	}

	log.Info().Str("output", output).Dur("elapsed", time.Since(start)).Msg("scoring complete")
	fmt.Printf("✅ Results successfully saved to %s\n", output)
	return nil
}
