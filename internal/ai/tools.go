package ai

import (
	"encoding/json"
	"errors"
	"fmt"

	genai "google.golang.org/genai"

	"github.com/thywilljoshua/booklib/internal/library"
)

func toolDeclarations() []*genai.FunctionDeclaration {
	bookID := &genai.Schema{
		Type:        genai.TypeString,
		Description: "The ID, filename, or title of the book",
	}
	return []*genai.FunctionDeclaration{
		{
			Name:        "list_books",
			Description: "List all available books in the collection with metadata.",
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
		},
		{
			Name:        "get_table_of_contents",
			Description: "Extract the table of contents from a specific book.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"book_id": bookID},
				Required:   []string{"book_id"},
			},
		},
		{
			Name:        "extract_pages",
			Description: "Extract text content from specific pages or page ranges of a book.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"book_id": bookID,
					"pages": {
						Type:        genai.TypeString,
						Description: `Page specification like "1-5,8,10-12"`,
					},
				},
				Required: []string{"book_id", "pages"},
			},
		},
		{
			Name:        "get_book_info",
			Description: "Get detailed information about a specific book.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"book_id": bookID},
				Required:   []string{"book_id"},
			},
		},
	}
}

// execute dispatches one model-requested call to the library. Failures come
// back as {"error": ...} payloads so the model can recover in conversation.
func (a *Agent) execute(name string, args map[string]any) map[string]any {
	bookID, _ := args["book_id"].(string)
	switch name {
	case "list_books":
		books, err := a.lib.List()
		if err != nil {
			return errPayload(err)
		}
		return map[string]any{"books": toJSONValue(books)}
	case "get_table_of_contents":
		res, err := a.lib.TOC(bookID)
		if err != nil {
			return errPayload(err)
		}
		return toJSONObject(res)
	case "extract_pages":
		pages, _ := args["pages"].(string)
		res, err := a.lib.ExtractPages(bookID, pages)
		if err != nil {
			if errors.Is(err, library.ErrNotFound) {
				return errPayload(err)
			}
			out := toJSONObject(res)
			out["error"] = err.Error()
			return out
		}
		return toJSONObject(res)
	case "get_book_info":
		detail, err := a.lib.Info(bookID)
		if err != nil {
			return errPayload(err)
		}
		return toJSONObject(detail)
	default:
		return map[string]any{"error": fmt.Sprintf("unknown tool: %s", name)}
	}
}

func errPayload(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}

func toJSONObject(v any) map[string]any {
	out, _ := toJSONValue(v).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	return out
}

// toJSONValue round-trips v through encoding/json so the function response
// only contains plain maps, slices and scalars.
func toJSONValue(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{"error": err.Error()}
	}
	return out
}
