package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

func main() {
	var booksDir string
	var verbose bool

	root := &cobra.Command{
		Use:     "booklib",
		Short:   "Browse and extract content from a directory of PDF books",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().StringVarP(&booksDir, "dir", "d", "books", "directory containing the PDF books")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(serveCmd(&booksDir))
	root.AddCommand(chatCmd(&booksDir))
	root.AddCommand(listCmd(&booksDir))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
