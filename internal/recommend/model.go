package recommend

// Model pairs the vocabulary and matrix built from one corpus snapshot for
// one feature variant. Models are read-only after construction and safe to
// share across concurrent readers. Baseline and hybrid models never share
// vocabulary or weights.
type Model struct {
	Variant Variant
	Vocab   Vocabulary
	Matrix  *Matrix
}

// NewModel builds the vectorizer output for one feature variant.
func NewModel(corpus Corpus, v Variant) *Model {
	vocab, matrix := Build(corpus.Features(v))
	return &Model{Variant: v, Vocab: vocab, Matrix: matrix}
}
