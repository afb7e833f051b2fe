// Package dictionary loads and saves word-frequency dictionaries.
// A dictionary file is a single JSON object mapping word to count,
// gzip-compressed when the file name ends in .gz. Plain files are read
// through a memory map so large dictionaries are not buffered twice.
package dictionary

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Load reads the dictionary at path. Files ending in .gz are
// gunzipped, anything else is treated as plain JSON.
func Load(path string) (map[string]int64, error) {
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		return loadGzip(path)
	}
	return loadPlain(path)
}

func loadGzip(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", path, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return decode(data, path)
}

func loadPlain(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("parse %s: empty file", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	defer m.Unmap()

	return decode(m, path)
}

func decode(data []byte, path string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return counts, nil
}

// Save writes counts to path as JSON with keys in sorted order, so two
// saves of the same vocabulary produce identical bytes. The output is
// gzip-compressed when gzipped is true or the path ends in .gz.
func Save(path string, counts map[string]int64, gzipped bool) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}
	if gzipped || strings.HasSuffix(strings.ToLower(path), ".gz") {
		return writeGzip(path, data)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeGzip(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// LoadLanguages merges the bundled per-language dictionaries named
// <lang>.json.gz under dir. Counts sum when languages share a word.
func LoadLanguages(dir string, languages ...string) (map[string]int64, error) {
	merged := make(map[string]int64)
	for _, lang := range languages {
		path := filepath.Join(dir, strings.ToLower(lang)+".json.gz")
		counts, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("language %s: %w", lang, err)
		}
		for word, count := range counts {
			merged[word] += count
		}
	}
	return merged, nil
}
