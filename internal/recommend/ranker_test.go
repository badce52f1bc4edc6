package recommend_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinerec/backend/internal/dataset"
	"github.com/cinerec/backend/internal/recommend"
)

func spaceCorpus() (recommend.Corpus, *recommend.Matrix) {
	corpus := recommend.Preprocess([]dataset.Record{
		{Title: "A", Overview: "A spaceship crew fights an alien"},
		{Title: "B", Overview: "A spaceship crew fights an alien invader"},
		{Title: "C", Overview: "A romantic comedy in Paris"},
	})
	_, matrix := recommend.Build(corpus.Features(recommend.Baseline))
	return corpus, matrix
}

func TestTopNUnknownTitle(t *testing.T) {
	corpus, matrix := spaceCorpus()

	_, err := recommend.TopN("Nope", corpus, matrix, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, recommend.ErrTitleNotFound))
}

func TestTopNExcludesQueryAndRanks(t *testing.T) {
	corpus, matrix := spaceCorpus()

	results, err := recommend.TopN("A", corpus, matrix, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "B", results[0].Title)
	assert.Equal(t, "C", results[1].Title)
	assert.Greater(t, results[0].Score, results[1].Score)
	for _, r := range results {
		assert.NotEqual(t, "A", r.Title)
	}
}

func TestTopNScoreBounds(t *testing.T) {
	corpus, matrix := spaceCorpus()

	results, err := recommend.TopN("B", corpus, matrix, 10)
	require.NoError(t, err)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

func TestTopNTruncatesToCorpusSize(t *testing.T) {
	corpus, matrix := spaceCorpus()

	results, err := recommend.TopN("A", corpus, matrix, 100)
	require.NoError(t, err)
	assert.Len(t, results, 2) // corpus size 3, minus the query
}

func TestTopNStableTieBreak(t *testing.T) {
	corpus := recommend.Preprocess([]dataset.Record{
		{Title: "Query", Overview: "alien crew spaceship"},
		{Title: "First", Overview: "alien crew spaceship"},
		{Title: "Second", Overview: "alien crew spaceship"},
		{Title: "Third", Overview: "alien crew spaceship"},
	})
	_, matrix := recommend.Build(corpus.Features(recommend.Baseline))

	results, err := recommend.TopN("Query", corpus, matrix, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Identical scores keep corpus row order.
	assert.Equal(t, "First", results[0].Title)
	assert.Equal(t, "Second", results[1].Title)
	assert.Equal(t, "Third", results[2].Title)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, results[1].Score, results[2].Score)
}

func TestTopNZeroVectorQuery(t *testing.T) {
	corpus := recommend.Preprocess([]dataset.Record{
		{Title: "Empty", Overview: ""},
		{Title: "Other", Overview: "alien crew spaceship"},
	})
	_, matrix := recommend.Build(corpus.Features(recommend.Baseline))

	results, err := recommend.TopN("Empty", corpus, matrix, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Score)
}

func TestTopNSingleDocumentCorpus(t *testing.T) {
	corpus := recommend.Preprocess([]dataset.Record{
		{Title: "Lonely", Overview: "alien"},
	})
	_, matrix := recommend.Build(corpus.Features(recommend.Baseline))

	results, err := recommend.TopN("Lonely", corpus, matrix, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTopNScoreRounding(t *testing.T) {
	corpus, matrix := spaceCorpus()

	results, err := recommend.TopN("A", corpus, matrix, 2)
	require.NoError(t, err)
	for _, r := range results {
		rounded := float64(int64(r.Score*10000+0.5)) / 10000
		assert.InDelta(t, rounded, r.Score, 1e-12, "score %v not rounded to 4 decimals", r.Score)
	}
}

func TestHybridUsesMetadataTokens(t *testing.T) {
	// Overviews share nothing; genres tie Query to Match.
	corpus := recommend.Preprocess([]dataset.Record{
		{Title: "Query", Overview: "submarine voyage", Genres: `[{"name":"Science Fiction"}]`},
		{Title: "Match", Overview: "desert planet rebellion", Genres: `[{"name":"Science Fiction"}]`},
		{Title: "Miss", Overview: "wedding banquet", Genres: `[{"name":"Romance"}]`},
	})

	baseline := recommend.NewModel(corpus, recommend.Baseline)
	hybrid := recommend.NewModel(corpus, recommend.Hybrid)

	base, err := recommend.TopN("Query", corpus, baseline.Matrix, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, base[0].Score)

	hyb, err := recommend.TopN("Query", corpus, hybrid.Matrix, 2)
	require.NoError(t, err)
	assert.Equal(t, "Match", hyb[0].Title)
	assert.Greater(t, hyb[0].Score, 0.0)
}
