package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cinerec/backend/internal/config"
	"github.com/cinerec/backend/internal/dataset"
	"github.com/cinerec/backend/internal/engine"
	"github.com/cinerec/backend/internal/eval"
	"github.com/cinerec/backend/internal/recommend"
)

var defaultTestTitles = []string{
	"Batman",
	"Superman",
	"The Avengers",
	"Spider-Man",
	"Iron Man",
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "evaluate")

	topN := flag.Int("n", 2000, "recommendations retrieved per test title")
	titlesFlag := flag.String("titles", "", "comma-separated test titles (default: built-in sample)")
	flag.Parse()

	cfg := config.Load()
	records, err := dataset.Load(cfg.Dataset.Path, entry)
	if err != nil {
		entry.Fatalf("Failed to load dataset: %v", err)
	}

	snap := engine.BuildSnapshot(recommend.Preprocess(records))
	entry.Infof("Corpus ready: %d movies", len(snap.Corpus))

	titles := defaultTestTitles
	if *titlesFlag != "" {
		titles = strings.Split(*titlesFlag, ",")
	}

	for _, variant := range []recommend.Variant{recommend.Baseline, recommend.Hybrid} {
		metrics, err := eval.Evaluate(snap, variant, titles, *topN)
		if err != nil {
			entry.Fatalf("Evaluation failed: %v", err)
		}

		fmt.Printf("=== %s ===\n", strings.ToUpper(string(variant)))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Title\tPrecision\tRecall\tF1-Score")
		for _, m := range metrics {
			fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\n", m.Title, m.Precision, m.Recall, m.F1)
		}
		w.Flush()
		fmt.Println()
	}
}
