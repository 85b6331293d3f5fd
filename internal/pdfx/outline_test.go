package pdfx

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookmarks(t *testing.T) {
	bms := []pdfcpu.Bookmark{
		{Title: "Introduction", PageFrom: 1},
		{Title: "Part One", PageFrom: 5, Kids: []pdfcpu.Bookmark{
			{Title: "Basics", PageFrom: 6},
			{Title: "Dangling", PageFrom: 0}, // unresolved destination
		}},
	}

	nodes := fromBookmarks(bms)
	require.Len(t, nodes, 2)
	assert.Equal(t, OutlineNode{Title: "Introduction", Page: 1, Children: []OutlineNode{}}, nodes[0])
	assert.Equal(t, "Part One", nodes[1].Title)
	assert.Equal(t, 5, nodes[1].Page)
	require.Len(t, nodes[1].Children, 2)
	assert.Equal(t, 6, nodes[1].Children[0].Page)
	assert.Zero(t, nodes[1].Children[1].Page)
	assert.Equal(t, "Dangling", nodes[1].Children[1].Title)
}

func TestFromBookmarksEmpty(t *testing.T) {
	assert.Empty(t, fromBookmarks(nil))
}
