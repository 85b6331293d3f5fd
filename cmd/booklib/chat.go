package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/booklib/internal/ai"
	"github.com/thywilljoshua/booklib/internal/config"
	"github.com/thywilljoshua/booklib/internal/library"
)

func chatCmd(booksDir *string) *cobra.Command {
	var configPath string
	var providerName string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive assistant over the book library",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			name, provider, err := cfg.Select(providerName)
			if err != nil {
				return err
			}
			// Only Gemini is wired up; other providers in the config are
			// listed so the error is actionable.
			if name != "google" && name != "gemini" {
				return fmt.Errorf("provider %q is not supported, configured providers: %s",
					name, strings.Join(providerNames(cfg), ", "))
			}

			lib := library.New(*booksDir)
			agent, err := ai.NewAgent(cmd.Context(), provider.APIKey, provider.Model, lib, slog.Default())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Books assistant ready using %s with model %s.\n", name, provider.Model)
			fmt.Fprintln(out, "Type your questions or '/quit' to exit.")

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for {
				fmt.Fprint(out, "\nYou: ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if strings.EqualFold(input, "/quit") {
					return nil
				}

				reply, err := agent.Send(cmd.Context(), input)
				if err != nil {
					fmt.Fprintf(out, "\nError: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "\nAssistant: %s\n", reply)
			}
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.json", "path to the provider configuration file")
	cmd.Flags().StringVarP(&providerName, "provider", "p", "", "provider to use (defaults to default_provider)")
	return cmd
}

func providerNames(cfg config.Config) []string {
	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
