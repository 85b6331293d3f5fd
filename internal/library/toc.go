package library

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thywilljoshua/booklib/internal/pdfx"
)

const (
	// headingScanPages bounds the heuristic scan so worst-case latency on
	// large documents stays predictable.
	headingScanPages = 20
	headingMaxRunes  = 50
	// syntheticMinPages is the document size above which interval markers
	// are added after "Document Start".
	syntheticMinPages = 10
	minMarkerInterval = 10
)

// deriveTOC produces an ordered, level-annotated table of contents. Three
// tiers, in priority order: the embedded outline, a heuristic heading scan
// of the first pages, and synthetic interval markers. A failure that takes
// down the whole derivation is reported as a single error entry; it never
// propagates to the caller as a hard failure.
func deriveTOC(doc Document) []TOCEntry {
	if entries := outlineEntries(doc); len(entries) > 0 {
		return entries
	}

	entries, err := scanHeadings(doc)
	if err != nil {
		return []TOCEntry{{Error: err.Error()}}
	}
	if len(entries) > 0 {
		return entries
	}

	return syntheticTOC(doc.PageCount())
}

func outlineEntries(doc Document) []TOCEntry {
	nodes, err := doc.Outline()
	if err != nil {
		// A missing or unreadable outline is a tier miss, not a failure.
		return nil
	}
	return flattenOutline(nodes, 0, nil)
}

func flattenOutline(nodes []pdfx.OutlineNode, level int, out []TOCEntry) []TOCEntry {
	for _, n := range nodes {
		e := TOCEntry{Title: n.Title, Level: level}
		if e.Title == "" {
			e.Title = "Unnamed Section"
		}
		if n.Page > 0 {
			e.Page = n.Page
		}
		out = append(out, e)
		out = flattenOutline(n.Children, level+1, out)
	}
	return out
}

// scanHeadings walks the first pages line by line looking for chapter-like
// headings. A line qualifies if it starts with "chapter" or "section"
// (case-insensitive), or if it is short and entirely upper-case. The rule is
// deliberately loose: recall over precision.
func scanHeadings(doc Document) ([]TOCEntry, error) {
	var entries []TOCEntry
	limit := min(headingScanPages, doc.PageCount())
	for page := 1; page <= limit; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			return nil, fmt.Errorf("scanning page %d: %w", page, err)
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if isHeading(line) {
				entries = append(entries, TOCEntry{Title: line, Page: page, Level: 0})
			}
		}
	}
	return entries, nil
}

func isHeading(line string) bool {
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "chapter") || strings.HasPrefix(lower, "section") {
		return true
	}
	return utf8.RuneCountInString(line) < headingMaxRunes && isAllUpper(line)
}

// isAllUpper reports whether the line contains at least one cased letter and
// no lower-case ones, matching the usual "isupper" notion.
func isAllUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// syntheticTOC is the last resort: a "Document Start" marker, plus interval
// markers every max(10, pages/5) pages for longer documents.
func syntheticTOC(pageCount int) []TOCEntry {
	entries := []TOCEntry{{Title: "Document Start", Page: 1, Level: 0}}
	if pageCount <= syntheticMinPages {
		return entries
	}
	interval := max(minMarkerInterval, pageCount/5)
	for p := interval; p < pageCount; p += interval {
		entries = append(entries, TOCEntry{
			Title: fmt.Sprintf("Section starting at page %d", p+1),
			Page:  p + 1,
			Level: 0,
		})
	}
	return entries
}
