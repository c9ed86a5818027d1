// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strconv"

	"github.com/taibuivan/yomira-indexer/internal/platform/apperr"
	"github.com/taibuivan/yomira-indexer/pkg/slug"
)

// Document is the flat, search-engine-friendly shape of one entry. The field
// set is sparse: beyond "id" and "main" it varies per entry, one key per
// localized title variant. The sink tolerates heterogeneous field sets
// within a batch.
type Document map[string]any

// Normalize flattens one catalog entry into a [Document].
//
// # Field Layout
//
//   - "id": the entry id, verbatim.
//   - "main": the text of the single main title. Its absence is a
//     MISSING_MAIN_TITLE error; there is no default.
//   - "official_<lang>": one per official title. A duplicated language keeps
//     the later occurrence (last-write-wins, matching the historical loader).
//   - "short_<lang>_<n>": short titles grouped per language and numbered in
//     source order starting at 1. Short titles whose language has no official
//     title in the same entry are dropped, again matching the historical
//     loader.
//
// Normalize is a pure function of the entry: two entries differing only in
// id produce documents differing only in "id".
func Normalize(entry Entry) (Document, error) {
	main, found := mainTitle(entry.Titles)
	if !found {
		return nil, apperr.MissingMainTitle(entry.ID)
	}

	doc := Document{
		"id":   entry.ID,
		"main": main,
	}

	for _, title := range entry.Titles {
		if title.Type != TitleOfficial {
			continue
		}

		doc[slug.Field(string(TitleOfficial), title.Lang)] = title.Text

		// Collect every short title sharing this official's language,
		// scanning the full list so ordering relative to the official
		// element does not matter.
		occurrence := 0
		for _, candidate := range entry.Titles {
			if candidate.Type != TitleShort || candidate.Lang != title.Lang {
				continue
			}
			occurrence++
			doc[slug.Field(string(TitleShort), candidate.Lang, strconv.Itoa(occurrence))] = candidate.Text
		}
	}

	return doc, nil
}

// mainTitle returns the text of the first main-role title, if any.
func mainTitle(titles []Title) (string, bool) {
	for _, title := range titles {
		if title.Type == TitleMain {
			return title.Text, true
		}
	}
	return "", false
}
