// Package topsis implements the TOPSIS multi-criteria ranking method:
// input validation, weighted Euclidean normalization, ideal-point
// separation, and preference scoring.
package topsis

import (
	"math"
	"strconv"
	"strings"

	"topsisrun/internal/table"
)

// Impact marks a criterion column as benefit (higher is better) or
// cost (lower is better).
type Impact int

const (
	ImpactBenefit Impact = iota
	ImpactCost
)

// String returns the impact's command-line symbol.
func (i Impact) String() string {
	if i == ImpactCost {
		return "-"
	}
	return "+"
}

// Validate checks the loaded table against the weight and impact argument
// strings and produces the numeric inputs for Compute. Checks run in a
// fixed order and stop at the first violation: column count, numeric
// criterion columns, weights, impacts.
func Validate(tbl *table.Table, weightsArg, impactsArg string) ([][]float64, []float64, []Impact, error) {
	if tbl.Columns() < 3 {
		return nil, nil, nil, schemaErrorf("too few columns: input must contain three or more, got %d", tbl.Columns())
	}
	if tbl.RowCount() < 1 {
		return nil, nil, nil, schemaErrorf("no data rows in input")
	}

	matrix, err := parseMatrix(tbl)
	if err != nil {
		return nil, nil, nil, err
	}
	n := tbl.Columns() - 1

	weights, err := ParseWeights(strings.Split(weightsArg, ","), n)
	if err != nil {
		return nil, nil, nil, err
	}
	impacts, err := ParseImpacts(strings.Split(impactsArg, ","), n)
	if err != nil {
		return nil, nil, nil, err
	}

	return matrix, weights, impacts, nil
}

// parseMatrix converts every column after the identifier into float64,
// rejecting empty, non-numeric and non-finite cells.
func parseMatrix(tbl *table.Table) ([][]float64, error) {
	n := tbl.Columns() - 1
	matrix := make([][]float64, tbl.RowCount())
	for i, row := range tbl.Rows {
		matrix[i] = make([]float64, n)
		for j := 1; j <= n; j++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, schemaErrorf("non-numeric column %s: bad value %q in row %d", tbl.Header[j], row[j], i+1)
			}
			matrix[i][j-1] = v
		}
	}
	return matrix, nil
}

// ParseWeights validates weight tokens against the criterion count n.
// Each token must parse as a positive real.
func ParseWeights(tokens []string, n int) ([]float64, error) {
	if len(tokens) != n {
		return nil, inputErrorf("weight count mismatch: got %d weights for %d criteria", len(tokens), n)
	}
	weights := make([]float64, n)
	for i, tok := range tokens {
		w, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, inputErrorf("weight not numeric: %q", tok)
		}
		if w <= 0 {
			return nil, inputErrorf("weight must be positive: %q", tok)
		}
		weights[i] = w
	}
	return weights, nil
}

// ParseImpacts validates impact tokens against the criterion count n.
// Each token must be exactly "+" or "-".
func ParseImpacts(tokens []string, n int) ([]Impact, error) {
	if len(tokens) != n {
		return nil, inputErrorf("impact count mismatch: got %d impacts for %d criteria", len(tokens), n)
	}
	impacts := make([]Impact, n)
	for i, tok := range tokens {
		switch strings.TrimSpace(tok) {
		case "+":
			impacts[i] = ImpactBenefit
		case "-":
			impacts[i] = ImpactCost
		default:
			return nil, inputErrorf("invalid impact symbol %q: impacts must be either + or -", tok)
		}
	}
	return impacts, nil
}
