package library

import "github.com/thywilljoshua/booklib/internal/pdfx"

// Document is the slice of an open PDF the library consumes. *pdfx.File is
// the production implementation; tests substitute fakes through WithOpener.
type Document interface {
	PageCount() int
	PageText(page int) (string, error) // 1-based
	Info() pdfx.Info
	Outline() ([]pdfx.OutlineNode, error)
	Close() error
}

// OpenFunc opens the document at path.
type OpenFunc func(path string) (Document, error)

func defaultOpen(path string) (Document, error) {
	f, err := pdfx.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
