// Package model defines shared data structures.
package model

import "time"

// Config defines helper settings.
type Config struct {
	Lang         string
	WordListPath string
	Show         int
}

// ServerConfig defines HTTP API settings.
type ServerConfig struct {
	Addr string
	Show int
}

// WordListInfo describes a word list file known to the catalog.
type WordListInfo struct {
	Path      string
	Lang      string
	Source    string
	Words     int
	UpdatedAt time.Time
}
