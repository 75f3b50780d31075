// Package cli defines the jenny command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jennylabs/jenny/internal/app"
	"github.com/jennylabs/jenny/internal/config"
	"github.com/jennylabs/jenny/internal/corpus"
	"github.com/jennylabs/jenny/internal/links"
	"github.com/jennylabs/jenny/internal/llm/gemini"
	"github.com/jennylabs/jenny/internal/profile"
	"github.com/jennylabs/jenny/internal/prompt"
	"github.com/jennylabs/jenny/internal/rank"
)

const version = "0.1.0"

func NewRoot(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "jenny",
		Short:         "Jenny, a retrieval-backed Telegram assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cobra.OnInitialize(func() {
		// Missing .env is fine; real deployments use the environment directly.
		_ = godotenv.Load()
	})

	root.AddCommand(newServeCmd(logger))
	root.AddCommand(newAskCmd(logger))
	root.AddCommand(newVersionCmd())
	return root
}

func newServeCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram webhook service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := config.FromEnv()
			rt, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			return rt.Run(ctx)
		},
	}
}

// newAskCmd runs the retrieval pipeline once from the terminal, without
// Telegram or sessions. Useful for tuning the corpus and the persona.
func newAskCmd(logger *slog.Logger) *cobra.Command {
	var showPrompt bool
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask Jenny a question locally",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			prof, err := profile.Load(cfg.ProfilePath)
			if err != nil {
				return err
			}
			question := strings.Join(args, " ")

			store := corpus.NewStore(cfg.CorpusPath, logger)
			corpusText, err := store.Text()
			if err != nil {
				return err
			}
			paragraphs := rank.Rank(corpusText, question, prof.MaxContextParagraphs)
			videoLinks := links.Extract(strings.Join(paragraphs, "\n\n"))

			p := prompt.Build(prompt.Input{
				Persona:  prof.Persona,
				Context:  paragraphs,
				Links:    videoLinks,
				Question: question,
			})
			if showPrompt {
				fmt.Fprintln(cmd.OutOrStdout(), p)
				return nil
			}

			client, err := gemini.New(cmd.Context(), gemini.Config{
				APIKey:  cfg.GeminiAPIKey,
				Model:   cfg.GeminiModel,
				Timeout: cfg.GeminiTimeout,
			}, logger)
			if err != nil {
				return err
			}
			answer, err := client.Reply(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPrompt, "show-prompt", false, "print the assembled prompt instead of calling the model")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "jenny "+version)
		},
	}
}
