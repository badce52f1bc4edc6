package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Record is one raw row from the movies CSV. Genres and Keywords hold the
// untouched JSON entity arrays; absent columns default to empty strings.
type Record struct {
	Title    string
	Overview string
	Genres   string
	Keywords string
}

// Load reads the movies CSV at path into an ordered record slice.
func Load(path string, logger *logrus.Entry) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Read(f, logger)
}

// Read parses a movies CSV. Columns are located by header name; only title is
// required. Rows reusing an already seen title are dropped, keeping the first
// occurrence, since title is the lookup key for the whole system.
func Read(r io.Reader, logger *logrus.Entry) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	if _, ok := cols["title"]; !ok {
		return nil, fmt.Errorf("dataset has no title column")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	seen := make(map[string]struct{})
	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		title := field(row, "title")
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			logger.WithField("title", title).Warn("Duplicate title in dataset, keeping first occurrence")
			continue
		}
		seen[title] = struct{}{}

		records = append(records, Record{
			Title:    title,
			Overview: field(row, "overview"),
			Genres:   field(row, "genres"),
			Keywords: field(row, "keywords"),
		})
	}
	return records, nil
}
