package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/booklib/internal/library"
	"github.com/thywilljoshua/booklib/internal/server"
)

func serveCmd(booksDir *string) *cobra.Command {
	var transport string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server exposing the book library",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := library.New(*booksDir)
			count, err := lib.Count()
			if err != nil {
				return err
			}
			abs, _ := filepath.Abs(*booksDir)
			slog.Info("books directory", "dir", abs, "books", count)

			srv := server.New(lib, version, slog.Default())
			switch transport {
			case "stdio":
				return srv.ServeStdio()
			case "sse":
				slog.Info("serving MCP over SSE", "addr", addr)
				return srv.ServeSSE(addr)
			default:
				return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
			}
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "stdio", "MCP transport: stdio|sse")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address for the sse transport")
	return cmd
}
