// Package library indexes a directory of PDF books and exposes the
// read-only operations callers build on: enumerate books with metadata,
// resolve loose identifiers, derive tables of contents, and extract text
// from page ranges. Every operation rescans the directory and reopens
// documents fresh; nothing is cached, so stale data is never served after
// files are added or removed.
package library

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Library is the facade over one book directory. Construct it once; each
// operation refreshes the registry before resolving anything.
type Library struct {
	dir  string
	reg  *Registry
	open OpenFunc
	log  *slog.Logger
}

type Option func(*Library)

// WithOpener overrides how documents are opened. Tests use this to
// substitute fakes for real PDF parsing.
func WithOpener(open OpenFunc) Option {
	return func(l *Library) { l.open = open }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Library) { l.log = log }
}

func New(dir string, opts ...Option) *Library {
	l := &Library{
		dir:  dir,
		reg:  NewRegistry(dir),
		open: defaultOpen,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dir returns the book directory the library serves.
func (l *Library) Dir() string {
	return l.dir
}

// Count refreshes the registry and returns the number of recognized books.
func (l *Library) Count() (int, error) {
	if err := l.reg.Refresh(); err != nil {
		return 0, err
	}
	return l.reg.Len(), nil
}

// List returns one record per book in ascending-ID order. Books that fail to
// parse still appear, degraded per the rules in describe.
func (l *Library) List() ([]Book, error) {
	if err := l.reg.Refresh(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", l.dir, err)
	}
	return l.listCurrent(), nil
}

// listCurrent builds records against the registry as it stands, without
// another refresh.
func (l *Library) listCurrent() []Book {
	names := l.reg.Filenames()
	books := make([]Book, 0, len(names))
	for _, name := range names {
		b, err := l.record(name)
		if err != nil {
			// File vanished between scan and stat; skip the entry.
			l.log.Debug("book disappeared during listing", "filename", name)
			continue
		}
		books = append(books, b)
	}
	return books
}

// Resolve maps a loose identifier to a book record. Three addressing schemes
// are tried in order: exact numeric ID, exact filename, and case-insensitive
// substring of the extracted title (first match in ascending-ID order).
func (l *Library) Resolve(identifier string) (Book, error) {
	if err := l.reg.Refresh(); err != nil {
		return Book{}, fmt.Errorf("scanning %s: %w", l.dir, err)
	}

	if name, ok := l.reg.Lookup(identifier); ok {
		return l.record(name)
	}

	needle := strings.ToLower(identifier)
	for _, b := range l.listCurrent() {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			return b, nil
		}
	}
	return Book{}, fmt.Errorf("%w: %s", ErrNotFound, identifier)
}

// record builds the metadata record for a registered filename.
func (l *Library) record(filename string) (Book, error) {
	path := filepath.Join(l.dir, filename)
	fi, err := os.Stat(path)
	if err != nil {
		return Book{}, fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	id, _ := l.reg.IDFor(filename)
	b := Book{ID: id, Filename: filename, Path: path, Size: fi.Size()}
	l.describe(&b)
	return b, nil
}

// Info returns the extended metadata record for one book. Field-level
// extraction failures degrade the record; only an unknown identifier is an
// error.
func (l *Library) Info(identifier string) (BookDetail, error) {
	b, err := l.Resolve(identifier)
	if err != nil {
		return BookDetail{}, err
	}
	d := BookDetail{Book: b}
	l.describeDetailed(&d)
	return d, nil
}

// TOC derives the table of contents for one book. Derivation failures are
// carried inside the entries (a single error marker); only an unknown
// identifier fails the call.
func (l *Library) TOC(identifier string) (TOCResult, error) {
	b, err := l.Resolve(identifier)
	if err != nil {
		return TOCResult{}, err
	}
	res := TOCResult{BookID: b.ID, BookTitle: b.Title, Filename: b.Filename}

	doc, err := l.open(b.Path)
	if err != nil {
		res.Entries = []TOCEntry{{Error: err.Error()}}
		return res, nil
	}
	defer doc.Close()

	res.Entries = deriveTOC(doc)
	return res, nil
}

// ExtractPages extracts raw text from the pages selected by rangeExpr.
// Identifier lookup and extraction are separate failure domains: the result
// carries the book identity fields even when extraction fails, and a failure
// on any page aborts the whole operation.
func (l *Library) ExtractPages(identifier, rangeExpr string) (PagesResult, error) {
	b, err := l.Resolve(identifier)
	if err != nil {
		return PagesResult{}, err
	}
	res := PagesResult{BookID: b.ID, BookTitle: b.Title, Filename: b.Filename}

	doc, err := l.open(b.Path)
	if err != nil {
		return res, fmt.Errorf("extracting pages: %w", err)
	}
	defer doc.Close()

	pages := parsePageRange(rangeExpr, doc.PageCount())
	if len(pages) == 0 {
		return res, fmt.Errorf("%w: %s", ErrInvalidRange, rangeExpr)
	}

	for _, n := range pages {
		text, err := doc.PageText(n)
		if err != nil {
			return res, fmt.Errorf("extracting page %d: %w", n, err)
		}
		res.Pages = append(res.Pages, PageText{PageNumber: n, Text: text})
	}
	return res, nil
}
