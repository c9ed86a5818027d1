// Package catalog models the title-catalog dump and its transformation into
// flat search documents.
package catalog

// TitleType classifies a title variant within a catalog entry.
type TitleType string

const (
	// TitleMain is the single required primary title of an entry.
	TitleMain TitleType = "main"
	// TitleOfficial is a localized official title, keyed by language.
	TitleOfficial TitleType = "official"
	// TitleShort is a localized abbreviation; a language may carry several.
	TitleShort TitleType = "short"
	// TitleSynonym appears in dumps but is not indexed.
	TitleSynonym TitleType = "synonym"
)

// Title is one named variant attached to a catalog entry.
type Title struct {
	Type TitleType `xml:"type,attr"`
	Lang string    `xml:"lang,attr"`
	Text string    `xml:",chardata"`
}

// Entry is one media record of the source dump. Entries live only for the
// duration of one pipeline step and are never mutated after decoding.
type Entry struct {
	ID     int     `xml:"aid,attr"`
	Titles []Title `xml:"title"`
}
