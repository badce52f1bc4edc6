package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinerec/backend/internal/dataset"
	"github.com/cinerec/backend/internal/recommend"
)

func TestPreprocessDerivedFields(t *testing.T) {
	corpus := recommend.Preprocess([]dataset.Record{
		{
			Title:    "Alien",
			Overview: "The crew of a spaceship encounters an alien!",
			Genres:   `[{"name":"Horror"},{"name":"Science Fiction"}]`,
			Keywords: `[{"name":"space travel"}]`,
		},
	})
	require.Len(t, corpus, 1)
	doc := corpus[0]

	assert.Equal(t, "crew spaceship encount alien", doc.OverviewClean)
	assert.Equal(t, []string{"horror", "sciencefiction"}, doc.GenresParsed)
	assert.Equal(t, []string{"spacetravel"}, doc.KeywordsParsed)
	assert.Equal(t, "crew spaceship encount alien horror sciencefiction spacetravel", doc.Tags)
}

func TestPreprocessToleratesMissingFields(t *testing.T) {
	corpus := recommend.Preprocess([]dataset.Record{{Title: "Bare"}})
	require.Len(t, corpus, 1)

	doc := corpus[0]
	assert.Empty(t, doc.OverviewClean)
	assert.Empty(t, doc.GenresParsed)
	assert.Empty(t, doc.KeywordsParsed)
	assert.Equal(t, doc.OverviewClean, doc.Feature(recommend.Baseline))
}

func TestCorpusFind(t *testing.T) {
	corpus := recommend.Preprocess([]dataset.Record{
		{Title: "A"}, {Title: "B"},
	})

	doc, ok := corpus.Find("B")
	assert.True(t, ok)
	assert.Equal(t, "B", doc.Title)

	_, ok = corpus.Find("Z")
	assert.False(t, ok)
}

func TestModelsAreIndependent(t *testing.T) {
	corpus := recommend.Preprocess([]dataset.Record{
		{Title: "A", Overview: "alien crew", Genres: `[{"name":"Horror"}]`},
		{Title: "B", Overview: "paris comedy", Genres: `[{"name":"Romance"}]`},
	})

	baseline := recommend.NewModel(corpus, recommend.Baseline)
	hybrid := recommend.NewModel(corpus, recommend.Hybrid)

	_, inBaseline := baseline.Vocab["horror"]
	_, inHybrid := hybrid.Vocab["horror"]
	assert.False(t, inBaseline, "baseline vocabulary must not see genre tokens")
	assert.True(t, inHybrid)
}
