// Package pdfx wraps the PDF libraries behind a small surface the rest of
// the program consumes. It is the only package that has to tolerate the
// libraries' failure modes: ledongthuc/pdf panics on malformed files, and
// pdfcpu refuses documents it cannot validate. Both are converted into
// ordinary errors here.
package pdfx

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Info holds the descriptive fields of a document's Info dictionary.
// Absent fields are empty strings.
type Info struct {
	Title        string
	Author       string
	Creator      string
	Producer     string
	Subject      string
	CreationDate string
	ModDate      string
}

// File is an open PDF document. It holds the file handle until Close.
type File struct {
	path  string
	f     *os.File
	r     *pdf.Reader
	fonts map[string]*pdf.Font
}

// Open opens the PDF at path for reading.
func Open(path string) (_ *File, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			f.Close()
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{path: path, f: f, r: r, fonts: make(map[string]*pdf.Font)}, nil
}

func (d *File) Close() error {
	return d.f.Close()
}

func (d *File) PageCount() int {
	return d.r.NumPage()
}

// PageText extracts the plain text of the given 1-based page.
func (d *File) PageText(page int) (text string, err error) {
	defer recoverTo(&err)
	if page < 1 || page > d.r.NumPage() {
		return "", fmt.Errorf("page %d out of range (1-%d)", page, d.r.NumPage())
	}
	p := d.r.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d has no content", page)
	}
	return p.GetPlainText(d.fonts)
}

// Info reads the trailer Info dictionary. Documents without one, or with
// unreadable entries, yield a zero Info rather than an error.
func (d *File) Info() Info {
	var info Info
	defer func() { _ = recover() }()
	obj := d.r.Trailer().Key("Info")
	if obj.Kind() != pdf.Dict {
		return info
	}
	info.Title = textKey(obj, "Title")
	info.Author = textKey(obj, "Author")
	info.Creator = textKey(obj, "Creator")
	info.Producer = textKey(obj, "Producer")
	info.Subject = textKey(obj, "Subject")
	info.CreationDate = normalizeDate(textKey(obj, "CreationDate"))
	info.ModDate = normalizeDate(textKey(obj, "ModDate"))
	return info
}

// Outline returns the document's normalized outline tree (see outline.go).
func (d *File) Outline() ([]OutlineNode, error) {
	return Outline(d.path)
}

func textKey(dict pdf.Value, key string) string {
	v := dict.Key(key)
	if v.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(v.Text())
}

func recoverTo(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("pdf parse: %v", r)
	}
}
