package eval

import (
	"fmt"

	"github.com/cinerec/backend/internal/engine"
	"github.com/cinerec/backend/internal/recommend"
)

// Metrics holds the evaluation scores for one test title.
type Metrics struct {
	Title     string
	Precision float64
	Recall    float64
	F1        float64
}

// Evaluate scores one model variant over the given test titles. A recommended
// movie counts as relevant when it shares at least one genre token with the
// query movie; precision divides by topN, recall by the number of relevant
// movies in the whole corpus (the query row included, matching how the corpus
// totals are counted). Test titles absent from the corpus are skipped.
// Deterministic given a snapshot, since ranking itself is deterministic.
func Evaluate(snap *engine.Snapshot, v recommend.Variant, testTitles []string, topN int) ([]Metrics, error) {
	model := snap.Baseline
	if v == recommend.Hybrid {
		model = snap.Hybrid
	}

	// First-match genre slice per title, for relevance checks on results.
	genres := make(map[string][]string, len(snap.Corpus))
	for _, doc := range snap.Corpus {
		if _, ok := genres[doc.Title]; !ok {
			genres[doc.Title] = doc.GenresParsed
		}
	}

	var out []Metrics
	for _, title := range testTitles {
		queryGenres, ok := genres[title]
		if !ok {
			continue
		}
		querySet := make(map[string]struct{}, len(queryGenres))
		for _, g := range queryGenres {
			querySet[g] = struct{}{}
		}

		recs, err := recommend.TopN(title, snap.Corpus, model.Matrix, topN)
		if err != nil {
			return nil, fmt.Errorf("failed to rank %q: %w", title, err)
		}

		var relevant int
		for _, rec := range recs {
			if overlaps(querySet, genres[rec.Title]) {
				relevant++
			}
		}

		var totalRelevant int
		for _, doc := range snap.Corpus {
			if overlaps(querySet, doc.GenresParsed) {
				totalRelevant++
			}
		}

		var precision, recall, f1 float64
		if topN > 0 {
			precision = float64(relevant) / float64(topN)
		}
		if totalRelevant > 0 {
			recall = float64(relevant) / float64(totalRelevant)
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}

		out = append(out, Metrics{Title: title, Precision: precision, Recall: recall, F1: f1})
	}
	return out, nil
}

func overlaps(query map[string]struct{}, other []string) bool {
	for _, g := range other {
		if _, ok := query[g]; ok {
			return true
		}
	}
	return false
}
