// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-indexer/internal/catalog"
	"github.com/taibuivan/yomira-indexer/internal/platform/apperr"
)

/*
TestNormalize_MainOnly verifies that an entry carrying nothing but a main
title yields exactly the {id, main} document.
*/
func TestNormalize_MainOnly(t *testing.T) {
	entry := catalog.Entry{
		ID:     7,
		Titles: []catalog.Title{{Type: catalog.TitleMain, Text: "Foo"}},
	}

	doc, err := catalog.Normalize(entry)
	require.NoError(t, err)

	assert.Equal(t, catalog.Document{"id": 7, "main": "Foo"}, doc)
}

/*
TestNormalize_OfficialTitle covers the single-official scenario:
aid=1, main "Foo", official en "Foo EN".
*/
func TestNormalize_OfficialTitle(t *testing.T) {
	entry := catalog.Entry{
		ID: 1,
		Titles: []catalog.Title{
			{Type: catalog.TitleMain, Text: "Foo"},
			{Type: catalog.TitleOfficial, Lang: "en", Text: "Foo EN"},
		},
	}

	doc, err := catalog.Normalize(entry)
	require.NoError(t, err)

	assert.Equal(t, catalog.Document{
		"id":          1,
		"main":        "Foo",
		"official_en": "Foo EN",
	}, doc)
}

/*
TestNormalize_ShortTitles verifies per-language numbering of short titles in
source order, alongside the official title for that language.
*/
func TestNormalize_ShortTitles(t *testing.T) {
	entry := catalog.Entry{
		ID: 2,
		Titles: []catalog.Title{
			{Type: catalog.TitleMain, Text: "Foo"},
			{Type: catalog.TitleShort, Lang: "en", Text: "A"},
			{Type: catalog.TitleOfficial, Lang: "en", Text: "Official"},
			{Type: catalog.TitleShort, Lang: "en", Text: "B"},
		},
	}

	doc, err := catalog.Normalize(entry)
	require.NoError(t, err)

	assert.Equal(t, catalog.Document{
		"id":          2,
		"main":        "Foo",
		"official_en": "Official",
		"short_en_1":  "A",
		"short_en_2":  "B",
	}, doc)
}

/*
TestNormalize_ShortWithoutOfficialDropped pins the historical behaviour:
short titles are only indexed when the entry also has an official title in
the same language.
*/
func TestNormalize_ShortWithoutOfficialDropped(t *testing.T) {
	entry := catalog.Entry{
		ID: 3,
		Titles: []catalog.Title{
			{Type: catalog.TitleMain, Text: "Foo"},
			{Type: catalog.TitleShort, Lang: "ja", Text: "フー"},
			{Type: catalog.TitleOfficial, Lang: "en", Text: "Foo EN"},
		},
	}

	doc, err := catalog.Normalize(entry)
	require.NoError(t, err)

	assert.Equal(t, catalog.Document{
		"id":          3,
		"main":        "Foo",
		"official_en": "Foo EN",
	}, doc)
}

/*
TestNormalize_DuplicateOfficialLastWins pins last-write-wins on a duplicated
official language. Shorts for that language must be neither duplicated nor
renumbered by the second pass.
*/
func TestNormalize_DuplicateOfficialLastWins(t *testing.T) {
	entry := catalog.Entry{
		ID: 4,
		Titles: []catalog.Title{
			{Type: catalog.TitleMain, Text: "Foo"},
			{Type: catalog.TitleOfficial, Lang: "en", Text: "First"},
			{Type: catalog.TitleShort, Lang: "en", Text: "S"},
			{Type: catalog.TitleOfficial, Lang: "en", Text: "Second"},
		},
	}

	doc, err := catalog.Normalize(entry)
	require.NoError(t, err)

	assert.Equal(t, catalog.Document{
		"id":          4,
		"main":        "Foo",
		"official_en": "Second",
		"short_en_1":  "S",
	}, doc)
}

/*
TestNormalize_LanguageTagSlugs verifies that real-world language tags slug
into distinct, underscore-separated keys.
*/
func TestNormalize_LanguageTagSlugs(t *testing.T) {
	entry := catalog.Entry{
		ID: 5,
		Titles: []catalog.Title{
			{Type: catalog.TitleMain, Text: "Foo"},
			{Type: catalog.TitleOfficial, Lang: "x-jat", Text: "Fuu"},
			{Type: catalog.TitleOfficial, Lang: "zh-Hans", Text: "福"},
		},
	}

	doc, err := catalog.Normalize(entry)
	require.NoError(t, err)

	assert.Equal(t, "Fuu", doc["official_x_jat"])
	assert.Equal(t, "福", doc["official_zh_hans"])
}

/*
TestNormalize_PureInID verifies that two entries differing only in id yield
documents differing only in the "id" field.
*/
func TestNormalize_PureInID(t *testing.T) {
	titles := []catalog.Title{
		{Type: catalog.TitleMain, Text: "Foo"},
		{Type: catalog.TitleOfficial, Lang: "en", Text: "Foo EN"},
		{Type: catalog.TitleShort, Lang: "en", Text: "F"},
	}

	first, err := catalog.Normalize(catalog.Entry{ID: 10, Titles: titles})
	require.NoError(t, err)
	second, err := catalog.Normalize(catalog.Entry{ID: 20, Titles: titles})
	require.NoError(t, err)

	delete(first, "id")
	delete(second, "id")
	assert.Equal(t, first, second)
}

/*
TestNormalize_MissingMainTitle verifies the fatal error for entries without
a main title.
*/
func TestNormalize_MissingMainTitle(t *testing.T) {
	entry := catalog.Entry{
		ID:     6,
		Titles: []catalog.Title{{Type: catalog.TitleOfficial, Lang: "en", Text: "Foo EN"}},
	}

	_, err := catalog.Normalize(entry)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "MISSING_MAIN_TITLE", ae.Code)
	assert.Contains(t, ae.Message, "6")
}

/*
TestNormalize_SynonymsIgnored verifies that synonym variants never reach the
document.
*/
func TestNormalize_SynonymsIgnored(t *testing.T) {
	entry := catalog.Entry{
		ID: 8,
		Titles: []catalog.Title{
			{Type: catalog.TitleMain, Text: "Foo"},
			{Type: catalog.TitleSynonym, Lang: "en", Text: "Foobar"},
		},
	}

	doc, err := catalog.Normalize(entry)
	require.NoError(t, err)

	assert.Equal(t, catalog.Document{"id": 8, "main": "Foo"}, doc)
}
