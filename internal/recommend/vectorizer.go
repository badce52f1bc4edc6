package recommend

import (
	"math"
	"sort"
	"strings"
)

// Vocabulary maps a term to its column index. Columns are assigned in
// lexicographic term order, so identical corpora always produce identical
// layouts.
type Vocabulary map[string]int

// Vector is one sparse matrix row: parallel slices of ascending column
// indices and their TF-IDF weights.
type Vector struct {
	Indices []int
	Weights []float64
}

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v.Weights {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of two sparse vectors via a merge walk over
// their ascending index slices.
func (v Vector) Dot(o Vector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] < o.Indices[j]:
			i++
		case v.Indices[i] > o.Indices[j]:
			j++
		default:
			dot += v.Weights[i] * o.Weights[j]
			i++
			j++
		}
	}
	return dot
}

// Matrix is the sparse document-term matrix: one row per corpus document, in
// corpus order. Immutable once built.
type Matrix struct {
	Rows []Vector
	Cols int
}

// Build constructs the vocabulary and TF-IDF matrix for a corpus of feature
// strings. Feature strings are already normalized, so tokenization is a plain
// whitespace split. Weights are raw term frequency times smoothed IDF,
// ln((1+n)/(1+df)) + 1, and each row is L2-normalized; a row built from an
// empty feature string stays all zero. Building is pure: the same corpus
// always yields the same vocabulary and matrix.
func Build(features []string) (Vocabulary, *Matrix) {
	counts := make([]map[string]int, len(features))
	df := make(map[string]int)
	for i, feat := range features {
		tf := make(map[string]int)
		for _, tok := range strings.Fields(feat) {
			tf[tok]++
		}
		counts[i] = tf
		for term := range tf {
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := make(Vocabulary, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}

	n := float64(len(features))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	matrix := &Matrix{Rows: make([]Vector, len(features)), Cols: len(terms)}
	for i, tf := range counts {
		cols := make([]int, 0, len(tf))
		for term := range tf {
			cols = append(cols, vocab[term])
		}
		sort.Ints(cols)

		row := Vector{Indices: cols, Weights: make([]float64, len(cols))}
		var sq float64
		for j, col := range cols {
			w := float64(tf[terms[col]]) * idf[col]
			row.Weights[j] = w
			sq += w * w
		}
		if sq > 0 {
			norm := math.Sqrt(sq)
			for j := range row.Weights {
				row.Weights[j] /= norm
			}
		}
		matrix.Rows[i] = row
	}
	return vocab, matrix
}
