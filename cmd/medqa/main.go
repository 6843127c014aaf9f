// Package main implements the medqa command: a terminal Q&A tool that
// answers questions about diseases from Wikipedia.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"medqa/internal/config"
	"medqa/internal/tui"
)

var (
	// cfgPath overrides the config lookup in ./config.yaml and ~/.config/medqa
	cfgPath string
	version = "dev"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "medqa",
	Short: "Ask medical questions answered from Wikipedia",
	Long: `medqa fetches the Wikipedia article for a disease, splits it into
symptoms, causes, treatment, diagnosis and prevention, and answers your
question with the section that matches it best.

Without a subcommand it starts the interactive terminal UI.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (default ./config.yaml, then ~/.config/medqa/config.yaml)")
	rootCmd.AddCommand(askCmd)
}

func loadConfig() (*config.AppConfig, error) {
	if cfgPath != "" {
		return config.Load(cfgPath)
	}
	cfg, _, err := config.LoadDefault()
	return cfg, err
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// the terminal belongs to the UI, so logs always go to a file
	if cfg.Log.File == "" {
		cfg.Log.File = config.DefaultLogFile()
	}

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if _, err := tea.NewProgram(tui.New(app.service), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
