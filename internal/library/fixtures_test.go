package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/thywilljoshua/booklib/internal/pdfx"
)

// fakeDoc implements Document without touching real PDF parsing.
type fakeDoc struct {
	pages      []string
	info       pdfx.Info
	outline    []pdfx.OutlineNode
	outlineErr error
	pageErr    map[int]error
	closed     bool
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) PageText(page int) (string, error) {
	if err, ok := d.pageErr[page]; ok {
		return "", err
	}
	if page < 1 || page > len(d.pages) {
		return "", fmt.Errorf("page %d out of range", page)
	}
	return d.pages[page-1], nil
}

func (d *fakeDoc) Info() pdfx.Info { return d.info }

func (d *fakeDoc) Outline() ([]pdfx.OutlineNode, error) {
	return d.outline, d.outlineErr
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

// blankPages builds n pages of empty text.
func blankPages(n int) []string {
	return make([]string, n)
}

var errUnreadable = errors.New("malformed xref table")

// newTestLibrary writes a dummy file per entry into a temp directory and
// wires an opener that serves the corresponding fake. A nil fake simulates a
// document that fails to open.
func newTestLibrary(t *testing.T, docs map[string]*fakeDoc) *Library {
	t.Helper()
	dir := t.TempDir()
	for name := range docs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4 stub"), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	open := func(path string) (Document, error) {
		doc, ok := docs[filepath.Base(path)]
		if !ok || doc == nil {
			return nil, errUnreadable
		}
		return doc, nil
	}
	return New(dir, WithOpener(open))
}
