package translate

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one dictionary row: a lowercase English word and its replacement.
type Entry struct {
	Word string `yaml:"word"`
	Text string `yaml:"text"`
}

// Table is an immutable word -> replacement mapping.
type Table struct {
	words map[string]string
}

// NewTable builds a table from entries in order. Keys are trimmed and
// lowercased; when a key repeats, the later entry wins.
func NewTable(entries []Entry) *Table {
	words := make(map[string]string, len(entries))
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Word))
		if key == "" {
			continue
		}
		words[key] = e.Text
	}
	return &Table{words: words}
}

// Extend returns a new table holding t's entries overlaid with extra.
func (t *Table) Extend(extra []Entry) *Table {
	merged := make([]Entry, 0, len(t.words)+len(extra))
	for word, text := range t.words {
		merged = append(merged, Entry{Word: word, Text: text})
	}
	return NewTable(append(merged, extra...))
}

// Lookup returns the replacement for an already-lowercased token.
func (t *Table) Lookup(token string) (string, bool) {
	text, ok := t.words[token]
	return text, ok
}

func (t *Table) Len() int { return len(t.words) }

var defaultTable = NewTable(builtinEntries)

// Default returns the built-in English to Urdu table.
func Default() *Table { return defaultTable }

type dictionaryFile struct {
	Entries []Entry `yaml:"entries"`
}

// LoadEntries reads extra dictionary rows from a YAML file of the form
//
//	entries:
//	  - word: summary
//	    text: خلاصہ
func LoadEntries(path string) ([]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %q: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	var file dictionaryFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse dictionary %q: %w", path, err)
	}
	return file.Entries, nil
}
