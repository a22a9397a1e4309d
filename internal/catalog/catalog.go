// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog groups extracted messages into unique-text entries and
// serializes them as a gettext POT translation template.
package catalog

import (
	"sort"
	"strings"

	"github.com/vorlif/spreak/catalog/po"

	"github.com/pdiddy/km-catalog/pkg/types"
)

// Entry is one catalog message: a unique text and the sorted, deduplicated
// locations it occurs at.
type Entry struct {
	Text      string   `json:"text" yaml:"text"`
	Locations []string `json:"locations" yaml:"locations"`
}

// Group collapses messages into one Entry per unique text. Records with
// empty text are dropped; they carry no translatable content and must not
// produce blank catalog entries. Entries come back sorted by text and each
// entry's locations sorted lexicographically, so output is stable across
// runs and registry iteration orders.
func Group(messages []types.ExtractedMessage) []Entry {
	byText := make(map[string]map[string]struct{})
	for _, m := range messages {
		if m.Text == "" {
			continue
		}
		locations, ok := byText[m.Text]
		if !ok {
			locations = make(map[string]struct{})
			byText[m.Text] = locations
		}
		locations[m.Location()] = struct{}{}
	}

	texts := make([]string, 0, len(byText))
	for text := range byText {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	entries := make([]Entry, 0, len(texts))
	for _, text := range texts {
		locations := make([]string, 0, len(byText[text]))
		for location := range byText[text] {
			locations = append(locations, location)
		}
		sort.Strings(locations)
		entries = append(entries, Entry{Text: text, Locations: locations})
	}
	return entries
}

// Build assembles the PO file model: a header carrying the project metadata
// with the charset fixed to UTF-8, then one message per entry with its
// locations as reference comments. No msgstr values are populated; the
// result is a template. The creation-date header is deliberately left unset
// so repeated runs on the same input are byte-identical.
func Build(entries []Entry, cfg types.CatalogConfig) *po.File {
	file := po.NewFile()
	file.Header = &po.Header{
		ProjectIDVersion:        strings.TrimSpace(cfg.Project + " " + cfg.Version),
		MimeVersion:             "1.0",
		ContentType:             "text/plain; charset=UTF-8",
		ContentTransferEncoding: "8bit",
	}

	for _, entry := range entries {
		references := make([]*po.Reference, 0, len(entry.Locations))
		for _, location := range entry.Locations {
			references = append(references, &po.Reference{Path: location})
		}

		msg := po.NewMessage()
		msg.ID = entry.Text
		msg.Comment = &po.Comment{References: references}
		file.AddMessage(msg)
	}
	return file
}
