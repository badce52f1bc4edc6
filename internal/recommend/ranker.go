package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrTitleNotFound reports a query title absent from the corpus. It is the
// only failure the engine surfaces to callers; every other malformed input
// degrades to empty output.
var ErrTitleNotFound = errors.New("title not found in corpus")

// Result is one recommendation: a title and its cosine similarity to the
// query, rounded to four decimal places.
type Result struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// TopN ranks every other corpus document by cosine similarity to the titled
// document and returns the best n. The query row itself is excluded. Ordering
// is descending by similarity with ties kept in corpus row order, so results
// are fully deterministic. Fewer than n results come back when the corpus,
// minus the query, is smaller. The matrix must be the one built from this
// corpus.
func TopN(title string, corpus Corpus, m *Matrix, n int) ([]Result, error) {
	idx := corpus.indexOf(title)
	if idx < 0 {
		return nil, fmt.Errorf("%q: %w", title, ErrTitleNotFound)
	}
	if n <= 0 || len(m.Rows) < 2 {
		return []Result{}, nil
	}

	query := m.Rows[idx]
	queryNorm := query.Norm()

	type scored struct {
		row   int
		score float64
	}
	ranked := make([]scored, 0, len(m.Rows)-1)
	for i, row := range m.Rows {
		if i == idx {
			continue
		}
		ranked = append(ranked, scored{row: i, score: cosine(query, queryNorm, row)})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	results := make([]Result, len(ranked))
	for i, s := range ranked {
		results[i] = Result{Title: corpus[s.row].Title, Score: round4(s.score)}
	}
	return results, nil
}

// cosine computes dot(a,b)/(|a||b|). Rows are L2-normalized at build time,
// but the division stays so a non-normalized matrix still ranks correctly;
// a zero vector on either side scores 0.
func cosine(query Vector, queryNorm float64, row Vector) float64 {
	rowNorm := row.Norm()
	if queryNorm == 0 || rowNorm == 0 {
		return 0
	}
	return query.Dot(row) / (queryNorm * rowNorm)
}

// round4 rounds half away from zero to four decimal places.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
