package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlehelp/internal/config"
)

var configPathOnly bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
	cmd.Flags().BoolVar(&configPathOnly, "path", false, "create the file if needed and print its path instead of opening an editor")
	return cmd
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}
	if configPathOnly {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	}

	parts := strings.Fields(editorCommand())
	editor := exec.Command(parts[0], append(parts[1:], path)...)
	editor.Stdin = os.Stdin
	editor.Stdout = os.Stdout
	editor.Stderr = os.Stderr
	if err := editor.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless path already exists.
func ensureConfigFile(path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func editorCommand() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return "vi"
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordlehelp configuration
# Uncomment a value to enable it. Environment variables override config
# values and CLI flags override both.

[helper]
# lang = %q               # Word list language (%s)
# wordlist = ""             # Explicit word list path (%s)
# show = %d                 # Max candidates listed by the TUI, solve and serve, 0 for all (%s)

[server]
# addr = %q            # Listen address for serve (%s)
`,
		defaultLang, config.EnvLang,
		config.EnvWordList,
		defaultShow, config.EnvShow,
		defaultAddr, config.EnvAddr,
	)
}
