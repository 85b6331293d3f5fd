package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/booklib/internal/library"
)

var (
	// idStyle for the numeric identifier column
	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	// titleStyle for book titles
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	// metaStyle for author, pages and size
	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// errStyle for per-book parse failures
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func listCmd(booksDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the books in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := library.New(*booksDir)
			books, err := lib.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(books) == 0 {
				fmt.Fprintf(out, "No books found in %s\n", *booksDir)
				return nil
			}
			for _, b := range books {
				fmt.Fprintf(out, "%s %s\n", idStyle.Render(fmt.Sprintf("[%s]", b.ID)), titleStyle.Render(b.Title))
				meta := fmt.Sprintf("    %s · %d pages · %s", b.Filename, b.Pages, humanSize(b.Size))
				if b.Author != "" {
					meta = fmt.Sprintf("    %s · %s · %d pages · %s", b.Author, b.Filename, b.Pages, humanSize(b.Size))
				}
				fmt.Fprintln(out, metaStyle.Render(meta))
				if b.Error != "" {
					fmt.Fprintln(out, errStyle.Render("    unreadable: "+b.Error))
				}
			}
			return nil
		},
	}
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
