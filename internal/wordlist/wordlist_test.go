package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAndLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists", "en.txt")
	if err := WriteWords(path, []string{"crane", "slate"}); err != nil {
		t.Fatalf("write words: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 || words[0] != "crane" || words[1] != "slate" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("  crane \n\n\nslate\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 || words[0] != "crane" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadWords(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadWords(empty); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestReadWordsKeepsEntriesAsWritten(t *testing.T) {
	words, err := ReadWords(strings.NewReader("Crane\r\n no \nslate!\n"))
	if err != nil {
		t.Fatalf("read words: %v", err)
	}
	if strings.Join(words, ",") != "Crane,no,slate!" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestWriteWordsReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	if err := WriteWords(path, []string{"crane", "slate"}); err != nil {
		t.Fatalf("write words: %v", err)
	}
	if err := WriteWords(path, []string{"adieu"}); err != nil {
		t.Fatalf("rewrite words: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "adieu\n" {
		t.Fatalf("unexpected contents %q", data)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be cleaned up, found %d entries", len(entries))
	}
}
