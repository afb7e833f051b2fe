// Package corpus builds word-frequency maps for dictionary
// construction, either by tokenizing raw text or by pulling
// pre-aggregated counts out of a SQL table.
package corpus

import (
	"bufio"
	"compress/gzip"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	_ "github.com/lib/pq"

	"speller/internal/spell"
	"speller/internal/tokenize"
)

// FromReader tokenizes r line by line and counts the lower-cased
// words.
func FromReader(r io.Reader) (map[string]int64, error) {
	counts := make(map[string]int64)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, word := range tokenize.Words(scanner.Text()) {
			counts[strings.ToLower(word)]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}
	return counts, nil
}

// FromFrequencyList reads a pre-counted "word count" line format, one
// entry per line. Blank and malformed lines are skipped, counts may be
// written as floats, and words are lower-cased.
func FromFrequencyList(r io.Reader) (map[string]int64, error) {
	counts := make(map[string]int64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			fv, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				continue
			}
			count = int64(fv)
		}
		if count <= 0 {
			continue
		}
		counts[strings.ToLower(parts[0])] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan frequency list: %w", err)
	}
	return counts, nil
}

// FromFrequencyListFile reads a frequency list file, gunzipping when
// the name ends in .gz.
func FromFrequencyListFile(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frequency list: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gunzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return FromFrequencyList(r)
}

// FromFile counts words in a corpus file, gunzipping when the name
// ends in .gz.
func FromFile(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gunzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return FromReader(r)
}

// FromSQL collects counts from a query returning (word, count) rows,
// for example SELECT term, occurrences FROM word_counts. Words repeat
// across rows sum, and non-positive counts abort the load.
func FromSQL(ctx context.Context, db *sql.DB, query string) (map[string]int64, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query corpus: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var word string
		var count int64
		if err := rows.Scan(&word, &count); err != nil {
			return nil, fmt.Errorf("scan corpus row: %w", err)
		}
		if count <= 0 {
			return nil, fmt.Errorf("row %q has count %d: %w", word, count, spell.ErrInvalidCount)
		}
		counts[strings.ToLower(word)] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corpus rows: %w", err)
	}
	return counts, nil
}

// Merge adds every count in src into dst and returns dst.
func Merge(dst, src map[string]int64) map[string]int64 {
	for word, count := range src {
		dst[word] += count
	}
	return dst
}

// Trim drops entries whose count is below min and returns the map.
func Trim(counts map[string]int64, min int64) map[string]int64 {
	if min <= 0 {
		return counts
	}
	for word, count := range counts {
		if count < min {
			delete(counts, word)
		}
	}
	return counts
}

// OpenPostgres connects with the lib/pq driver and verifies the
// connection before returning it.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
