package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medqa/internal/tui"
)

var (
	askDisease  string
	askQuestion string
)

func init() {
	askCmd.Flags().StringVarP(&askDisease, "disease", "d", "", "Disease name to look up")
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "Question about the disease")
}

// askCmd runs a single question without the terminal UI
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer one question and exit",
	Long: `Answer one question non-interactively and print the result.

Examples:
  # Ask about the causes of diabetes
  medqa ask --disease diabetes --question "what causes this disease"

  # Questions in other languages are translated first
  medqa ask -d malaria -q "quels sont les symptômes ?"`,
	Args: cobra.NoArgs,
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ans, err := app.service.Ask(ctx, askDisease, askQuestion)
	out := tui.RenderPlain(ans, err)
	if err != nil {
		// the rendered panel already explains the failure
		cmd.SilenceErrors = true
		fmt.Fprintln(cmd.ErrOrStderr(), out)
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
