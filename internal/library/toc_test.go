package library

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thywilljoshua/booklib/internal/pdfx"
)

func TestDeriveTOCFromEmbeddedOutline(t *testing.T) {
	doc := &fakeDoc{
		pages: blankPages(30),
		outline: []pdfx.OutlineNode{
			{Title: "Introduction", Page: 1},
			{Title: "Part One", Page: 5, Children: []pdfx.OutlineNode{
				{Title: "Getting Started", Page: 6, Children: []pdfx.OutlineNode{
					{Title: "Installation", Page: 7},
				}},
				{Title: "", Page: 0}, // unresolved destination, untitled
			}},
			{Title: "Appendix", Page: 25},
		},
	}

	entries := deriveTOC(doc)
	require.Len(t, entries, 6)
	assert.Equal(t, TOCEntry{Title: "Introduction", Page: 1, Level: 0}, entries[0])
	assert.Equal(t, TOCEntry{Title: "Part One", Page: 5, Level: 0}, entries[1])
	assert.Equal(t, TOCEntry{Title: "Getting Started", Page: 6, Level: 1}, entries[2])
	assert.Equal(t, TOCEntry{Title: "Installation", Page: 7, Level: 2}, entries[3])
	// Per-node degradation: the entry survives with a placeholder title and
	// no page.
	assert.Equal(t, TOCEntry{Title: "Unnamed Section", Level: 1}, entries[4])
	assert.Equal(t, TOCEntry{Title: "Appendix", Page: 25, Level: 0}, entries[5])
}

func TestDeriveTOCHeadingScan(t *testing.T) {
	pages := blankPages(25)
	pages[0] = "Some Title\nChapter 1: The Beginning\nbody text"
	pages[2] = "ordinary prose\nSECTION TWO\nmore prose"
	// First line is upper-case but 54 runes, past the short-line cutoff.
	pages[4] = "THIS LINE IS ENTIRELY UPPER CASE AND STILL QUITE SHORT\nA SHORT HEADING"
	// Page 21 is beyond the 20-page scan window.
	pages[20] = "Chapter 99: Unreachable"

	doc := &fakeDoc{pages: pages, outlineErr: errors.New("no outline")}

	entries := deriveTOC(doc)
	require.Len(t, entries, 3)
	assert.Equal(t, TOCEntry{Title: "Chapter 1: The Beginning", Page: 1, Level: 0}, entries[0])
	assert.Equal(t, TOCEntry{Title: "SECTION TWO", Page: 3, Level: 0}, entries[1])
	assert.Equal(t, TOCEntry{Title: "A SHORT HEADING", Page: 5, Level: 0}, entries[2])
}

func TestDeriveTOCHeadingScanOrder(t *testing.T) {
	// Scan order is page, then line.
	pages := blankPages(3)
	pages[0] = "CHAPTER ONE\nSECTION A"
	pages[1] = "CHAPTER TWO"
	doc := &fakeDoc{pages: pages}

	entries := deriveTOC(doc)
	require.Len(t, entries, 3)
	assert.Equal(t, "CHAPTER ONE", entries[0].Title)
	assert.Equal(t, "SECTION A", entries[1].Title)
	assert.Equal(t, "CHAPTER TWO", entries[2].Title)
}

func TestIsHeading(t *testing.T) {
	assert.True(t, isHeading("Chapter 12"))
	assert.True(t, isHeading("section 3.1 overview"))
	assert.True(t, isHeading("SHOUTING TITLE"))
	assert.False(t, isHeading("ordinary sentence"))
	assert.False(t, isHeading("1984")) // digits only, no cased letter
	assert.False(t, isHeading(strings.Repeat("A", 50)))
	assert.True(t, isHeading(strings.Repeat("A", 49)))
}

func TestDeriveTOCSyntheticMarkers(t *testing.T) {
	doc := &fakeDoc{pages: blankPages(23)}

	entries := deriveTOC(doc)
	require.Len(t, entries, 3)
	assert.Equal(t, TOCEntry{Title: "Document Start", Page: 1, Level: 0}, entries[0])
	// interval = max(10, 23/5) = 10
	assert.Equal(t, TOCEntry{Title: "Section starting at page 11", Page: 11, Level: 0}, entries[1])
	assert.Equal(t, TOCEntry{Title: "Section starting at page 21", Page: 21, Level: 0}, entries[2])
}

func TestDeriveTOCSyntheticShortDocument(t *testing.T) {
	doc := &fakeDoc{pages: blankPages(8)}

	entries := deriveTOC(doc)
	require.Len(t, entries, 1)
	assert.Equal(t, "Document Start", entries[0].Title)
}

func TestDeriveTOCSyntheticLargeDocument(t *testing.T) {
	doc := &fakeDoc{pages: blankPages(100)}

	entries := deriveTOC(doc)
	// interval = max(10, 100/5) = 20: markers at 21, 41, 61, 81.
	require.Len(t, entries, 5)
	last := entries[len(entries)-1]
	assert.Equal(t, 81, last.Page)
}

func TestDeriveTOCScanFailureYieldsErrorEntry(t *testing.T) {
	doc := &fakeDoc{
		pages:   blankPages(5),
		pageErr: map[int]error{3: fmt.Errorf("stream corrupted")},
	}

	entries := deriveTOC(doc)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Title)
	assert.Contains(t, entries[0].Error, "stream corrupted")
}

func TestDeriveTOCOutlineErrorFallsThrough(t *testing.T) {
	// An unreadable outline is a tier miss: the heading scan still runs.
	doc := &fakeDoc{
		pages:      []string{"CHAPTER ONE\ntext"},
		outlineErr: errors.New("bookmarks unreadable"),
	}

	entries := deriveTOC(doc)
	require.Len(t, entries, 1)
	assert.Equal(t, "CHAPTER ONE", entries[0].Title)
}
