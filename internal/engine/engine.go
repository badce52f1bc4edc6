package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinerec/backend/internal/config"
	"github.com/cinerec/backend/internal/dataset"
	"github.com/cinerec/backend/internal/poster"
	"github.com/cinerec/backend/internal/recommend"
)

// ErrNotReady reports that no corpus snapshot has been loaded yet.
var ErrNotReady = errors.New("no corpus loaded")

// Snapshot is one immutable build of the corpus and both models. A snapshot
// is never mutated after publication; Reload swaps in a complete replacement,
// so concurrent readers always see a consistent corpus/matrix pair.
type Snapshot struct {
	Corpus   recommend.Corpus
	Baseline *recommend.Model
	Hybrid   *recommend.Model
	LoadedAt time.Time
}

// BuildSnapshot builds both vectorizers over an already preprocessed corpus.
func BuildSnapshot(corpus recommend.Corpus) *Snapshot {
	return &Snapshot{
		Corpus:   corpus,
		Baseline: recommend.NewModel(corpus, recommend.Baseline),
		Hybrid:   recommend.NewModel(corpus, recommend.Hybrid),
		LoadedAt: time.Now(),
	}
}

// Engine owns the published corpus snapshot and answers recommendation
// queries against the cached matrices. Queries never rebuild a matrix.
type Engine struct {
	Config  *config.Config
	Logger  *logrus.Entry
	Posters *poster.Client

	snapshot atomic.Pointer[Snapshot]
}

func NewEngine(cfg *config.Config, logger *logrus.Entry, posters *poster.Client) *Engine {
	return &Engine{Config: cfg, Logger: logger, Posters: posters}
}

// Reload reads the dataset, rebuilds both models and publishes the new
// snapshot atomically. Queries in flight keep the snapshot they started with.
func (e *Engine) Reload() error {
	start := time.Now()

	records, err := dataset.Load(e.Config.Dataset.Path, e.Logger)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	snap := BuildSnapshot(recommend.Preprocess(records))
	e.snapshot.Store(snap)

	e.Logger.WithFields(logrus.Fields{
		"movies":         len(snap.Corpus),
		"baseline_terms": len(snap.Baseline.Vocab),
		"hybrid_terms":   len(snap.Hybrid.Vocab),
		"duration":       time.Since(start).String(),
	}).Info("Corpus loaded and models built")
	return nil
}

// Publish installs a prebuilt snapshot, bypassing the dataset file.
func (e *Engine) Publish(s *Snapshot) {
	e.snapshot.Store(s)
}

// Snapshot returns the currently published snapshot, or nil before the first
// load.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Recommend returns the top n movies most similar to title under the given
// feature variant. The query movie itself is never part of the result.
func (e *Engine) Recommend(v recommend.Variant, title string, n int) ([]recommend.Result, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, ErrNotReady
	}

	model := snap.Baseline
	if v == recommend.Hybrid {
		model = snap.Hybrid
	}
	return recommend.TopN(title, snap.Corpus, model.Matrix, n)
}

// Movie returns the preprocessed document for a title.
func (e *Engine) Movie(title string) (recommend.Document, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return recommend.Document{}, ErrNotReady
	}
	doc, ok := snap.Corpus.Find(title)
	if !ok {
		return recommend.Document{}, fmt.Errorf("%q: %w", title, recommend.ErrTitleNotFound)
	}
	return doc, nil
}

// Movies returns every title in the corpus, sorted alphabetically.
func (e *Engine) Movies() []string {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil
	}
	titles := make([]string, len(snap.Corpus))
	for i, doc := range snap.Corpus {
		titles[i] = doc.Title
	}
	sort.Strings(titles)
	return titles
}

// Stats describes the currently published snapshot.
type Stats struct {
	Movies        int       `json:"movies"`
	BaselineTerms int       `json:"baseline_terms"`
	HybridTerms   int       `json:"hybrid_terms"`
	LoadedAt      time.Time `json:"loaded_at"`
}

func (e *Engine) Stats() (Stats, bool) {
	snap := e.snapshot.Load()
	if snap == nil {
		return Stats{}, false
	}
	return Stats{
		Movies:        len(snap.Corpus),
		BaselineTerms: len(snap.Baseline.Vocab),
		HybridTerms:   len(snap.Hybrid.Vocab),
		LoadedAt:      snap.LoadedAt,
	}, true
}
