// Package ai implements the chat assistant over the book library. The
// Gemini model is given function declarations for the library's operations
// and the agent loop executes whatever calls the model requests before
// returning its final text.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	genai "google.golang.org/genai"

	"github.com/thywilljoshua/booklib/internal/library"
)

const systemInstruction = `You are a helpful assistant with access to tools for browsing and
extracting content from a book library. Your goal is to help users find information
in books, extract text from specific pages, and navigate book content.
When a user asks about books or book content, use the appropriate tool to find
the information.`

// maxToolRounds bounds how many tool-call round trips a single Send may do.
const maxToolRounds = 8

type Agent struct {
	client  *genai.Client
	model   string
	lib     *library.Library
	log     *slog.Logger
	history []*genai.Content
}

func NewAgent(ctx context.Context, apiKey, model string, lib *library.Library, log *slog.Logger) (*Agent, error) {
	if apiKey == "" {
		return nil, errors.New("missing API key")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if log == nil {
		log = slog.Default()
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Agent{client: c, model: model, lib: lib, log: log}, nil
}

// Send runs one conversational turn: the user input, any tool calls the
// model requests, and the model's final text.
func (a *Agent) Send(ctx context.Context, input string) (string, error) {
	a.history = append(a.history, genai.NewContentFromText(input, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Tools:             []*genai.Tool{{FunctionDeclarations: toolDeclarations()}},
	}

	for round := 0; round < maxToolRounds; round++ {
		res, err := a.client.Models.GenerateContent(ctx, a.model, a.history, cfg)
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}
		if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
			return "", errors.New("model returned no candidates")
		}
		a.history = append(a.history, res.Candidates[0].Content)

		calls := res.FunctionCalls()
		if len(calls) == 0 {
			return res.Text(), nil
		}

		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			a.log.Debug("tool call", "tool", call.Name, "args", call.Args)
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: a.execute(call.Name, call.Args),
				},
			})
		}
		a.history = append(a.history, &genai.Content{Role: genai.RoleUser, Parts: parts})
	}
	return "", fmt.Errorf("model did not finish after %d tool rounds", maxToolRounds)
}
