package library

import "errors"

var (
	// ErrNotFound means no book matched the identifier.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidRange means no page numbers survived range parsing.
	ErrInvalidRange = errors.New("no valid pages specified in range")
)

// Book is the metadata record for one document in the library. Records are
// built fresh on every call; nothing is cached between operations.
type Book struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Path     string `json:"-"` // never exposed to callers
	Size     int64  `json:"size"`
	Pages    int    `json:"pages,omitempty"`
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BookDetail extends Book with the descriptive fields harvested by Info.
// Absent fields are omitted, not errors.
type BookDetail struct {
	Book
	Creator      string `json:"creator,omitempty"`
	Producer     string `json:"producer,omitempty"`
	Subject      string `json:"subject,omitempty"`
	CreationDate string `json:"creation_date,omitempty"`
	ModDate      string `json:"modification_date,omitempty"`
}

// TOCEntry is one node of a derived table of contents. The parent/child
// relation is encoded only through Level.
type TOCEntry struct {
	Title string `json:"title,omitempty"`
	Page  int    `json:"page,omitempty"` // 1-based; 0 when unknown
	Level int    `json:"level"`
	Error string `json:"error,omitempty"`
}

// TOCResult pairs a derived table of contents with the book it belongs to.
type TOCResult struct {
	BookID    string     `json:"book_id"`
	BookTitle string     `json:"book_title"`
	Filename  string     `json:"filename"`
	Entries   []TOCEntry `json:"toc"`
}

// PageText is the extracted text of one page.
type PageText struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// PagesResult holds the pages extracted from one book. On extraction failure
// the identity fields are still populated alongside the returned error.
type PagesResult struct {
	BookID    string     `json:"book_id"`
	BookTitle string     `json:"book_title"`
	Filename  string     `json:"filename"`
	Pages     []PageText `json:"pages"`
}
