package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvLang     = "WORDLEHELP_LANG"
	EnvWordList = "WORDLEHELP_WORDLIST"
	EnvShow     = "WORDLEHELP_SHOW"
	EnvAddr     = "WORDLEHELP_ADDR"
	EnvLogLevel = "LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// EnvConfig returns the config values set through the environment.
func EnvConfig() (FileConfig, error) {
	var cfg FileConfig
	cfg.Helper.Lang = envString(EnvLang)
	cfg.Helper.WordList = envString(EnvWordList)
	cfg.Server.Addr = envString(EnvAddr)
	if v := envString(EnvShow); v != nil {
		n, err := strconv.Atoi(*v)
		if err != nil {
			return FileConfig{}, fmt.Errorf("invalid %s: %w", EnvShow, err)
		}
		cfg.Helper.Show = &n
	}
	return cfg, nil
}

func envString(key string) *string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
