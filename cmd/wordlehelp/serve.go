package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlehelp/internal/model"
	"github.com/verte-zerg/wordlehelp/internal/server"
)

var (
	serveAddr string
	serveShow int
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve candidates over a JSON API",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "listen address")
	cmd.Flags().IntVar(&serveShow, "show", defaultShow, "max candidates per response (0 for all)")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, layers, err := loadHelperConfig(cmd, &serveShow)
	if err != nil {
		return err
	}
	for _, layer := range layers {
		applyStringConfig(cmd, "addr", &serveAddr, layer.Server.Addr)
	}
	srvCfg := model.ServerConfig{Addr: strings.TrimSpace(serveAddr), Show: cfg.Show}
	if srvCfg.Addr == "" {
		return fmt.Errorf("--addr must not be empty")
	}

	words, path, err := loadWordList(cfg)
	if err != nil {
		return err
	}

	srv := server.New(words, srvCfg.Show)
	log.Info().Str("addr", srvCfg.Addr).Str("wordlist", path).Int("words", len(words)).Msg("starting server")
	if err := srv.Start(srvCfg.Addr); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
