package recommend

import (
	"strings"

	"github.com/cinerec/backend/internal/dataset"
	"github.com/cinerec/backend/internal/text"
)

// Document is one movie with its derived features. Derived fields are filled
// once by Preprocess and never change afterwards.
type Document struct {
	Title          string
	Overview       string
	OverviewClean  string
	GenresParsed   []string
	KeywordsParsed []string
	Tags           string
}

// Corpus is an ordered, immutable snapshot of preprocessed documents. Row
// order is load order and matches matrix row order for every model built
// from this corpus.
type Corpus []Document

// Variant selects which feature string feeds the vectorizer.
type Variant string

const (
	// Baseline uses the normalized overview only.
	Baseline Variant = "baseline"
	// Hybrid concatenates the normalized overview with genre and keyword tokens.
	Hybrid Variant = "hybrid"
)

// Preprocess computes every derived field for the raw records, in order.
// Missing or malformed overview/genres/keywords degrade to empty values.
func Preprocess(records []dataset.Record) Corpus {
	corpus := make(Corpus, 0, len(records))
	for _, rec := range records {
		doc := Document{
			Title:          rec.Title,
			Overview:       rec.Overview,
			OverviewClean:  text.Clean(rec.Overview),
			GenresParsed:   text.ParseEntities(rec.Genres),
			KeywordsParsed: text.ParseEntities(rec.Keywords),
		}
		doc.Tags = doc.OverviewClean + " " +
			strings.Join(doc.GenresParsed, " ") + " " +
			strings.Join(doc.KeywordsParsed, " ")
		corpus = append(corpus, doc)
	}
	return corpus
}

// Feature returns the document's feature string for a variant.
func (d Document) Feature(v Variant) string {
	if v == Hybrid {
		return d.Tags
	}
	return d.OverviewClean
}

// Features extracts the feature strings for a variant in corpus order.
func (c Corpus) Features(v Variant) []string {
	feats := make([]string, len(c))
	for i, doc := range c {
		feats[i] = doc.Feature(v)
	}
	return feats
}

// Find returns the first document with the given title.
func (c Corpus) Find(title string) (Document, bool) {
	i := c.indexOf(title)
	if i < 0 {
		return Document{}, false
	}
	return c[i], true
}

// indexOf resolves a title to its first matching row, or -1.
func (c Corpus) indexOf(title string) int {
	for i, doc := range c {
		if doc.Title == title {
			return i
		}
	}
	return -1
}
