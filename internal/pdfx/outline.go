package pdfx

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// OutlineNode is the normalized form of one embedded outline entry. PDF
// outlines come back from the underlying library in several shapes; this is
// the one variant everything downstream traverses.
type OutlineNode struct {
	Title    string
	Page     int // 1-based; 0 when the destination could not be resolved
	Children []OutlineNode
}

// Outline reads the embedded outline (bookmarks) of the PDF at path.
// A document without an outline yields an empty slice and no error.
func Outline(path string) (_ []OutlineNode, err error) {
	defer recoverTo(&err)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bms, err := api.Bookmarks(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}
	return fromBookmarks(bms), nil
}

func fromBookmarks(bms []pdfcpu.Bookmark) []OutlineNode {
	nodes := make([]OutlineNode, 0, len(bms))
	for _, bm := range bms {
		n := OutlineNode{Title: bm.Title}
		if bm.PageFrom > 0 {
			n.Page = bm.PageFrom
		}
		n.Children = fromBookmarks(bm.Kids)
		nodes = append(nodes, n)
	}
	return nodes
}
