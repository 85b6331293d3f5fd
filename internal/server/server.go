// Package server exposes the book library over the Model Context Protocol.
// It is a thin layer: every tool resolves arguments, calls the library, and
// serializes the result as JSON text. Lookup misses and empty page ranges
// are structured results, not protocol failures.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/thywilljoshua/booklib/internal/library"
)

const serverName = "Books Library"

// Server wires the library's operations into an MCP server.
type Server struct {
	lib *library.Library
	mcp *server.MCPServer
	log *slog.Logger
}

func New(lib *library.Library, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		lib: lib,
		log: log,
		mcp: server.NewMCPServer(serverName, version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// ServeSSE blocks serving MCP over HTTP server-sent events on addr.
func (s *Server) ServeSSE(addr string) error {
	return server.NewSSEServer(s.mcp).Start(addr)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("list_books",
		mcp.WithDescription("List all available books in the collection with metadata: id, title, author (if available), and number of pages."),
	), s.handleListBooks)

	s.mcp.AddTool(mcp.NewTool("get_table_of_contents",
		mcp.WithDescription("Extract the table of contents from a specific book."),
		mcp.WithString("book_id",
			mcp.Required(),
			mcp.Description("The ID, filename, or title of the book"),
		),
	), s.handleTOC)

	s.mcp.AddTool(mcp.NewTool("extract_pages",
		mcp.WithDescription("Extract text content from specific pages or page ranges of a book."),
		mcp.WithString("book_id",
			mcp.Required(),
			mcp.Description("The ID, filename, or title of the book"),
		),
		mcp.WithString("pages",
			mcp.Required(),
			mcp.Description(`Page specification like "1-5,8,10-12"`),
		),
	), s.handleExtractPages)

	s.mcp.AddTool(mcp.NewTool("get_book_info",
		mcp.WithDescription("Get detailed information about a specific book."),
		mcp.WithString("book_id",
			mcp.Required(),
			mcp.Description("The ID, filename, or title of the book"),
		),
	), s.handleBookInfo)

	s.mcp.AddTool(mcp.NewTool("ping",
		mcp.WithDescription("Simple health check to verify the server is running."),
	), s.handlePing)
}

func (s *Server) handleListBooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info("tool called", "tool", "list_books")
	books, err := s.lib.List()
	if err != nil {
		return errorResult("Failed to list books: %v", err), nil
	}
	if books == nil {
		books = []library.Book{}
	}
	return jsonResult(books)
}

func (s *Server) handleTOC(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bookID := stringArg(req, "book_id")
	s.log.Info("tool called", "tool", "get_table_of_contents", "book_id", bookID)
	if bookID == "" {
		return errorResult("Book ID is required"), nil
	}

	res, err := s.lib.TOC(bookID)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			return errorResult("Book not found: %s", bookID), nil
		}
		return errorResult("Failed to extract table of contents: %v", err), nil
	}
	return jsonResult(res)
}

func (s *Server) handleExtractPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bookID := stringArg(req, "book_id")
	pages := stringArg(req, "pages")
	s.log.Info("tool called", "tool", "extract_pages", "book_id", bookID, "pages", pages)
	if bookID == "" {
		return errorResult("Book ID is required"), nil
	}
	if pages == "" {
		return errorResult("Page specification is required"), nil
	}

	res, err := s.lib.ExtractPages(bookID, pages)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			return errorResult("Book not found: %s", bookID), nil
		}
		// The identity fields survive an extraction failure; serialize
		// them alongside the error.
		return jsonResult(struct {
			library.PagesResult
			Error string `json:"error"`
		}{res, err.Error()})
	}
	return jsonResult(res)
}

func (s *Server) handleBookInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bookID := stringArg(req, "book_id")
	s.log.Info("tool called", "tool", "get_book_info", "book_id", bookID)
	if bookID == "" {
		return errorResult("Book ID is required"), nil
	}

	detail, err := s.lib.Info(bookID)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			return errorResult("Book not found: %s", bookID), nil
		}
		return errorResult("Failed to get book info: %v", err), nil
	}
	return jsonResult(detail)
}

func (s *Server) handlePing(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count, err := s.lib.Count()
	if err != nil {
		return errorResult("Failed to scan books directory: %v", err), nil
	}
	dir, _ := filepath.Abs(s.lib.Dir())
	return jsonResult(map[string]any{
		"status":      "ok",
		"books_count": count,
		"books_dir":   dir,
	})
}

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource("books://list", "Book list",
		mcp.WithResourceDescription("A list of all available books"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		books, err := s.lib.List()
		if err != nil {
			return nil, err
		}
		return resourceJSON(req.Params.URI, books)
	})

	s.mcp.AddResourceTemplate(mcp.NewResourceTemplate("books://info/{book_id}", "Book info",
		mcp.WithTemplateDescription("Detailed information about a specific book"),
		mcp.WithTemplateMIMEType("application/json"),
	), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		bookID := filepath.Base(req.Params.URI)
		detail, err := s.lib.Info(bookID)
		if err != nil {
			return nil, err
		}
		return resourceJSON(req.Params.URI, detail)
	})
}

func stringArg(req mcp.CallToolRequest, key string) string {
	v, _ := req.Params.Arguments[key].(string)
	return v
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	msg, _ := json.Marshal(map[string]string{"error": fmt.Sprintf(format, args...)})
	return mcp.NewToolResultText(string(msg))
}

func resourceJSON(uri string, v any) ([]mcp.ResourceContents, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{mcp.TextResourceContents{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(b),
	}}, nil
}
