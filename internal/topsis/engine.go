package topsis

import (
	"math"
	"sort"
)

// DefaultDecimals is the presentation rounding applied to scores.
const DefaultDecimals = 4

// Engine computes TOPSIS preference scores and ranks. It is pure and
// deterministic: identical inputs always produce identical outputs.
type Engine struct {
	decimals int
}

// NewEngine creates an engine rounding scores to the given number of
// decimal places; values below 1 fall back to DefaultDecimals.
func NewEngine(decimals int) *Engine {
	if decimals < 1 {
		decimals = DefaultDecimals
	}
	return &Engine{decimals: decimals}
}

// Compute runs the TOPSIS method over a validated decision matrix.
// Inputs must already have passed Validate: m rows, n columns, weights
// and impacts of length n. Scores are rounded for presentation; ranks
// are derived from the unrounded scores, ties going to the earlier row.
func (e *Engine) Compute(matrix [][]float64, weights []float64, impacts []Impact) ([]float64, []int, error) {
	normalized, err := normalizeColumns(matrix)
	if err != nil {
		return nil, nil, err
	}
	weighted := applyWeights(normalized, weights)
	idealBest, idealWorst := idealPoints(weighted, impacts)

	m := len(matrix)
	scores := make([]float64, m)
	for i := 0; i < m; i++ {
		sBest := distance(weighted[i], idealBest)
		sWorst := distance(weighted[i], idealWorst)
		if sBest+sWorst == 0 {
			// Row coincides with both ideal points (e.g. a single
			// alternative). Equidistant, so score it neutral.
			scores[i] = 0.5
			continue
		}
		scores[i] = sWorst / (sBest + sWorst)
	}

	ranks := rankDescending(scores)
	for i := range scores {
		scores[i] = roundTo(scores[i], e.decimals)
	}
	return scores, ranks, nil
}

// normalizeColumns divides every column by its Euclidean norm so each
// criterion's squared entries sum to one.
func normalizeColumns(matrix [][]float64) ([][]float64, error) {
	m := len(matrix)
	n := len(matrix[0])
	normalized := make([][]float64, m)
	for i := range normalized {
		normalized[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += matrix[i][j] * matrix[i][j]
		}
		if sum == 0 {
			return nil, computationErrorf("zero norm in criterion column %d: all values are zero", j+1)
		}
		norm := math.Sqrt(sum)
		for i := 0; i < m; i++ {
			normalized[i][j] = matrix[i][j] / norm
		}
	}
	return normalized, nil
}

func applyWeights(matrix [][]float64, weights []float64) [][]float64 {
	weighted := make([][]float64, len(matrix))
	for i, row := range matrix {
		weighted[i] = make([]float64, len(row))
		for j, v := range row {
			weighted[i][j] = v * weights[j]
		}
	}
	return weighted
}

// idealPoints picks, per column, the most and least preferred weighted
// values. Benefit columns prefer the maximum, cost columns the minimum.
func idealPoints(weighted [][]float64, impacts []Impact) ([]float64, []float64) {
	n := len(impacts)
	best := make([]float64, n)
	worst := make([]float64, n)
	for j := 0; j < n; j++ {
		lo, hi := weighted[0][j], weighted[0][j]
		for i := 1; i < len(weighted); i++ {
			v := weighted[i][j]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if impacts[j] == ImpactBenefit {
			best[j], worst[j] = hi, lo
		} else {
			best[j], worst[j] = lo, hi
		}
	}
	return best, worst
}

func distance(row, point []float64) float64 {
	sum := 0.0
	for j := range row {
		d := row[j] - point[j]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// rankDescending assigns rank 1 to the highest score. Equal scores keep
// their original row order, so the earlier row takes the better rank.
func rankDescending(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	ranks := make([]int, len(scores))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}
	return ranks
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
