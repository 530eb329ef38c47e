// Package main provides the CLI entrypoint for wordlehelp.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlehelp/internal/config"
	"github.com/verte-zerg/wordlehelp/internal/model"
	"github.com/verte-zerg/wordlehelp/internal/tui"
	"github.com/verte-zerg/wordlehelp/internal/wordlist"
)

const (
	defaultLang       = "en"
	defaultShow       = 0
	defaultAddr       = ":8080"
	defaultLogLevel   = "info"
	defaultWordlistSz = 5000
)

var (
	rootLang     string
	rootWordList string
	rootLogLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "wordlehelp",
		Short:             "Narrow down Wordle candidates",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupLogging,
		RunE:              runHelperCmd,
	}

	rootCmd.PersistentFlags().StringVar(&rootLang, "lang", defaultLang, "word list language code")
	rootCmd.PersistentFlags().StringVar(&rootWordList, "wordlist", "", "path to a word list file (one word per line)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWordlistCmd())
	rootCmd.AddCommand(newListsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// setupLogging loads .env, then configures the global zerolog logger.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	level := rootLogLevel
	if env := strings.TrimSpace(os.Getenv(config.EnvLogLevel)); env != "" && !cmd.Flags().Changed("log-level") {
		level = env
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func runHelperCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadHelperConfig(cmd, nil)
	if err != nil {
		return err
	}
	words, path, err := loadWordList(cfg)
	if err != nil {
		return err
	}

	m := tui.NewModel(cfg, words, path)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadHelperConfig resolves settings as flag > environment > config file >
// default. show may be nil for commands without a --show flag. The returned
// layers are the config file followed by the environment.
func loadHelperConfig(cmd *cobra.Command, show *int) (model.Config, []config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.EnvConfig()
	if err != nil {
		return model.Config{}, nil, err
	}
	layers := []config.FileConfig{fileCfg, envCfg}

	showValue := defaultShow
	if show != nil {
		showValue = *show
	}
	for _, layer := range layers {
		applyStringConfig(cmd, "lang", &rootLang, layer.Helper.Lang)
		applyStringConfig(cmd, "wordlist", &rootWordList, layer.Helper.WordList)
		applyIntConfig(cmd, "show", &showValue, layer.Helper.Show)
	}

	cfg := model.Config{
		Lang:         strings.ToLower(strings.TrimSpace(rootLang)),
		WordListPath: strings.TrimSpace(rootWordList),
		Show:         showValue,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, nil, err
	}
	return cfg, layers, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.Show < 0 {
		return fmt.Errorf("--show must be >= 0")
	}
	return nil
}

// loadWordList picks the explicit list, then the generated list for the
// language, then the embedded default. Malformed entries are dropped with a
// warning.
func loadWordList(cfg model.Config) ([]string, string, error) {
	path := cfg.WordListPath
	if path == "" {
		candidate := config.DefaultWordListPath(cfg.Lang)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	var words []string
	if path == "" {
		log.Info().Str("lang", cfg.Lang).Msg("no word list found, using embedded default")
		words = wordlist.Default()
		path = wordlist.DefaultSource
	} else {
		loaded, err := wordlist.LoadWords(path)
		if err != nil {
			return nil, "", wordListLoadError(cfg.Lang, path, err)
		}
		words = loaded
	}

	kept, dropped := wordlist.Clean(words)
	if dropped > 0 {
		log.Warn().Str("path", path).Int("dropped", dropped).Msg("skipped malformed word list entries")
	}
	log.Debug().Str("path", path).Int("words", len(kept)).Msg("word list loaded")
	return kept, path, nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		"Run: wordlehelp lists",
		fmt.Sprintf("Download: wordlehelp wordlist --lang %s", lang),
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}
