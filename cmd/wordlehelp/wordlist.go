package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlehelp/internal/config"
	"github.com/verte-zerg/wordlehelp/internal/model"
	"github.com/verte-zerg/wordlehelp/internal/report"
	"github.com/verte-zerg/wordlehelp/internal/store"
	"github.com/verte-zerg/wordlehelp/internal/wordfreq"
	"github.com/verte-zerg/wordlehelp/internal/wordlist"
)

var (
	wordlistSize  int
	wordlistForce bool
)

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Generate five-letter word lists from wordfreq",
		Long: "Generate five-letter word lists from the wordfreq dataset.\n" +
			"--lang accepts a code, a comma-separated list, or 'all'.",
		Args: cobra.NoArgs,
		RunE: runWordlistCmd,
	}
	cmd.Flags().IntVar(&wordlistSize, "size", defaultWordlistSz, "number of words")
	cmd.Flags().BoolVar(&wordlistForce, "force", false, "overwrite existing files")
	return cmd
}

func runWordlistCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadHelperConfig(cmd, nil)
	if err != nil {
		return err
	}
	if wordlistSize <= 0 {
		return fmt.Errorf("--size must be greater than 0")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	outDir := config.DefaultWordListDir()

	log.Info().Msg("fetching wordfreq metadata")
	wheel, err := wordfreq.DownloadLatestWheel(ctx, config.DefaultWordfreqCacheDir(), os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to download wordfreq wheel: %w", err)
	}
	log.Info().Str("wheel", wheel.Filename).Bool("cached", wheel.Cached).Msg("using wordfreq wheel")

	available, err := wordfreq.ListLanguages(wheel.Path)
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}
	langs, allRequested, err := resolveWordlistLangs(cfg.Lang, available)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close db")
		}
	}()

	for _, lang := range langs {
		outPath := filepath.Join(outDir, lang+".txt")
		if !wordlistForce {
			if _, err := os.Stat(outPath); err == nil {
				if allRequested {
					log.Info().Str("path", outPath).Msg("skipping existing word list")
					continue
				}
				return fmt.Errorf("word list already exists: %s (use --force to overwrite)", outPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat word list: %w", err)
			}
		}

		words, err := wordfreq.ExtractWords(wheel.Path, lang, wordlistSize)
		if err != nil {
			if allRequested {
				log.Warn().Err(err).Str("lang", lang).Msg("skipping language")
				continue
			}
			return fmt.Errorf("failed to extract %s word list: %w", lang, err)
		}
		if err := wordlist.WriteWords(outPath, words); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		info := model.WordListInfo{
			Path:   outPath,
			Lang:   lang,
			Source: "wordfreq " + wheel.Version,
			Words:  len(words),
		}
		if err := st.RecordWordList(ctx, info); err != nil {
			return fmt.Errorf("failed to record %s: %w", outPath, err)
		}
		log.Info().Str("path", outPath).Int("words", len(words)).Msg("wrote word list")
	}

	if err := wordfreq.WriteAttribution(outDir); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	return nil
}

func resolveWordlistLangs(lang string, available []string) ([]string, bool, error) {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if lang == "" {
		return []string{defaultLang}, false, nil
	}
	if lang == "all" {
		return append([]string(nil), available...), true, nil
	}
	availableSet := make(map[string]struct{}, len(available))
	for _, a := range available {
		availableSet[a] = struct{}{}
	}
	var requested []string
	for _, part := range strings.Split(lang, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := availableSet[part]; !ok {
			return nil, false, fmt.Errorf("unknown language %q (available: %s)", part, strings.Join(available, ", "))
		}
		requested = append(requested, part)
	}
	if len(requested) == 0 {
		return nil, false, fmt.Errorf("--lang must not be empty")
	}
	return requested, false, nil
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List generated word lists",
		Args:  cobra.NoArgs,
		RunE:  runListsCmd,
	}
}

func runListsCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close db")
		}
	}()

	infos, err := st.ListWordLists(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		if _, err := os.Stat(info.Path); os.IsNotExist(err) {
			log.Info().Str("path", info.Path).Msg("removing missing word list from catalog")
			if err := st.RemoveWordList(ctx, info.Path); err != nil {
				return fmt.Errorf("failed to prune catalog: %w", err)
			}
			continue
		}
		rows = append(rows, []string{
			info.Lang,
			strconv.Itoa(info.Words),
			info.Source,
			info.UpdatedAt.Local().Format("2006-01-02 15:04"),
			info.Path,
		})
	}
	if len(rows) == 0 {
		log.Info().Msg("no word lists found; download with: wordlehelp wordlist --lang <code>")
		return nil
	}

	lines := report.FormatTable([]string{"Lang", "Words", "Source", "Updated", "Path"}, rows, map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
