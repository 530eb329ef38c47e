package wordfreq

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/verte-zerg/wordlehelp/internal/wordlist"
)

const dataPrefix = "wordfreq/data/"

// List types in preference order. Large lists reach further into rare words.
var listTypes = []string{"large", "small"}

// ListLanguages returns the sorted language codes that have a data file in the wheel.
func ListLanguages(wheelPath string) ([]string, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	seen := map[string]struct{}{}
	for _, file := range reader.File {
		if lang, _, ok := parseDataName(file.Name); ok {
			seen[lang] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no languages found in wordfreq wheel")
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// ExtractWords returns up to limit five-letter words for lang, most frequent first.
func ExtractWords(wheelPath, lang string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil, fmt.Errorf("language is required")
	}

	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	file := selectDataFile(reader.File, lang)
	if file == nil {
		return nil, fmt.Errorf("no data file found for %s", lang)
	}
	buckets, err := readBuckets(file)
	if err != nil {
		return nil, err
	}

	langFilter := wordlist.FilterForLang(lang)
	seen := map[string]struct{}{}
	words := make([]string, 0, limit)
	for _, bucket := range buckets {
		for _, word := range bucket {
			if _, ok := seen[word]; ok {
				continue
			}
			if !wordlist.Valid(word) || !langFilter(word) {
				continue
			}
			seen[word] = struct{}{}
			words = append(words, word)
			if len(words) >= limit {
				return words, nil
			}
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no five-letter words found for %s", lang)
	}
	return words, nil
}

func selectDataFile(files []*zip.File, lang string) *zip.File {
	byType := map[string]*zip.File{}
	for _, file := range files {
		fileLang, listType, ok := parseDataName(file.Name)
		if ok && fileLang == lang {
			byType[listType] = file
		}
	}
	for _, listType := range listTypes {
		if file, ok := byType[listType]; ok {
			return file
		}
	}
	return nil
}

// parseDataName splits "wordfreq/data/large_en.msgpack.gz" into ("en", "large").
func parseDataName(name string) (lang, listType string, ok bool) {
	name = strings.ToLower(name)
	if !strings.HasPrefix(name, dataPrefix) {
		return "", "", false
	}
	base := strings.TrimPrefix(name, dataPrefix)
	if !strings.HasSuffix(base, ".msgpack.gz") {
		return "", "", false
	}
	base = strings.TrimSuffix(base, ".msgpack.gz")
	for _, t := range listTypes {
		if rest, found := strings.CutPrefix(base, t+"_"); found && rest != "" {
			return rest, t, true
		}
	}
	return "", "", false
}

// readBuckets decodes a cB-format file: a header map followed by one list of
// words per frequency bucket, most frequent bucket first.
func readBuckets(file *zip.File) ([][]string, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()
	gz, err := gzip.NewReader(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer func() {
		_ = gz.Close()
	}()
	return decodeBuckets(gz)
}

func decodeBuckets(r io.Reader) ([][]string, error) {
	var raw []msgpack.RawMessage
	if err := msgpack.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode wordfreq data: %w", err)
	}
	buckets := make([][]string, 0, len(raw))
	for i, item := range raw {
		var words []string
		if err := msgpack.Unmarshal(item, &words); err != nil {
			if i == 0 {
				// Header map.
				continue
			}
			return nil, fmt.Errorf("failed to decode bucket %d: %w", i, err)
		}
		buckets = append(buckets, words)
	}
	if len(buckets) == 0 {
		return nil, fmt.Errorf("wordfreq data contained no entries")
	}
	return buckets, nil
}

// WriteAttribution writes attribution and license notes next to generated lists.
func WriteAttribution(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	text := strings.Join([]string{
		"Word lists generated from the wordfreq dataset.",
		"Source: https://github.com/rspeer/wordfreq",
		"Data license: Creative Commons Attribution-ShareAlike 4.0 International (CC BY-SA 4.0).",
		"https://creativecommons.org/licenses/by-sa/4.0/",
		"Changes were made: filtered to five-letter alphabetic words and truncated to the requested size.",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(outDir, "ATTRIBUTION.txt"), []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	return nil
}
