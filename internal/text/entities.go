package text

import (
	"strings"
	"unicode"

	json "github.com/goccy/go-json"
)

type entity struct {
	Name *string `json:"name"`
}

// ParseEntities turns a JSON-encoded array of named entities (the TMDB genres
// and keywords columns) into flat tokens: each name lowercased with its
// whitespace removed, so "Science Fiction" becomes "sciencefiction". Source
// order is preserved. Malformed JSON or entities without a name never fail;
// they simply contribute nothing.
func ParseEntities(raw string) []string {
	if raw == "" {
		return nil
	}

	var items []entity
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}

	tokens := make([]string, 0, len(items))
	for _, it := range items {
		if it.Name == nil {
			continue
		}
		tokens = append(tokens, squash(*it.Name))
	}
	return tokens
}

// squash lowercases a name and strips its whitespace.
func squash(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}
