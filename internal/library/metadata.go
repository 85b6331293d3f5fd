package library

import (
	"path/filepath"
	"strings"
)

// describe opens the book and fills in page count, title and author. A book
// that cannot be parsed still yields a usable record: the filename stem
// stands in for the title and the failure is recorded on the entry, so one
// bad file never aborts a listing.
func (l *Library) describe(b *Book) {
	doc, err := l.open(b.Path)
	if err != nil {
		b.Title = stem(b.Filename)
		b.Error = err.Error()
		return
	}
	defer doc.Close()

	b.Pages = doc.PageCount()
	info := doc.Info()
	if info.Title != "" {
		b.Title = info.Title
	} else {
		b.Title = stem(b.Filename)
	}
	b.Author = info.Author
}

// describeDetailed additionally harvests the extended Info-dictionary
// fields. Each field is omitted when absent; a reopen failure degrades the
// record rather than failing it.
func (l *Library) describeDetailed(d *BookDetail) {
	doc, err := l.open(d.Path)
	if err != nil {
		d.Error = err.Error()
		return
	}
	defer doc.Close()

	d.Pages = doc.PageCount()
	info := doc.Info()
	if info.Title != "" {
		d.Title = info.Title
	}
	if info.Author != "" {
		d.Author = info.Author
	}
	d.Creator = info.Creator
	d.Producer = info.Producer
	d.Subject = info.Subject
	d.CreationDate = info.CreationDate
	d.ModDate = info.ModDate
}

func stem(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
