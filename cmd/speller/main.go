package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"speller/internal/checker"
	"speller/internal/corpus"
	"speller/internal/dictionary"
	"speller/internal/spell"
	"speller/pkg/options"
)

var (
	dictPath      string
	dataDir       string
	languages     []string
	editDistance  int
	caseSensitive bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "speller",
		Short: "Frequency-ranked spelling corrector",
		Long:  `Check and correct spelling against word-frequency dictionaries built from text corpora`,
	}

	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "dictionary file (json or json.gz)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory with per-language dictionaries")
	rootCmd.PersistentFlags().StringSliceVar(&languages, "languages", []string{"en"}, "languages to load from the data directory")
	rootCmd.PersistentFlags().IntVar(&editDistance, "distance", 2, "maximum edit distance, 1 or 2")
	rootCmd.PersistentFlags().BoolVar(&caseSensitive, "case-sensitive", false, "match dictionary case exactly")

	rootCmd.AddCommand(createCorrectCmd())
	rootCmd.AddCommand(createCheckCmd())
	rootCmd.AddCommand(createCandidatesCmd())
	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildCorrector loads the dictionary selected by the global flags.
func buildCorrector() (*spell.Corrector, error) {
	counts, err := loadCounts()
	if err != nil {
		return nil, err
	}
	opts := []options.Options{
		options.WithEditDistance(editDistance),
	}
	if caseSensitive {
		opts = append(opts, options.WithCaseSensitive())
	}
	wf := spell.NewWordFrequency(opts...)
	if err := wf.LoadCounts(counts); err != nil {
		return nil, err
	}
	return spell.NewCorrector(wf, opts...), nil
}

func loadCounts() (map[string]int64, error) {
	if dictPath != "" {
		return dictionary.Load(dictPath)
	}
	return dictionary.LoadLanguages(dataDir, languages...)
}

// createCorrectCmd creates the word correction command
func createCorrectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correct [words...]",
		Short: "Print the most likely correction for each word",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			corrector, err := buildCorrector()
			if err != nil {
				log.Fatalf("Failed to load dictionary: %v", err)
			}
			for _, word := range args {
				best, ok := corrector.Correction(word)
				if !ok {
					best = word
				}
				fmt.Println(best)
			}
		},
	}
}

// createCandidatesCmd creates the candidate listing command
func createCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates [word]",
		Short: "List every known word within the configured edit distance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			corrector, err := buildCorrector()
			if err != nil {
				log.Fatalf("Failed to load dictionary: %v", err)
			}
			suggestions := corrector.Suggestions(args[0])
			if len(suggestions) == 0 {
				fmt.Printf("no candidates found for %q\n", args[0])
				os.Exit(1)
			}
			for _, s := range suggestions {
				fmt.Printf("%s\tdistance=%d\tcount=%d\n", s.Term, s.Distance, s.Frequency)
			}
		},
	}
}

// createCheckCmd creates the whole-text checking command
func createCheckCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [text]",
		Short: "Correct a whole text and report each replacement",
		Long:  `Correct every misspelled word in the given text, or in stdin when no text argument is passed`,
		Run: func(cmd *cobra.Command, args []string) {
			corrector, err := buildCorrector()
			if err != nil {
				log.Fatalf("Failed to load dictionary: %v", err)
			}

			text := strings.Join(args, " ")
			if text == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					log.Fatalf("Failed to read stdin: %v", err)
				}
				text = string(data)
			}

			result := checker.New(corrector).Check(text)
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					log.Fatalf("Failed to encode result: %v", err)
				}
				return
			}

			fmt.Println(result.Corrected)
			for _, c := range result.Corrections {
				if c.Corrected == "" {
					fmt.Fprintf(os.Stderr, "%s: no correction found\n", c.Original)
					continue
				}
				fmt.Fprintf(os.Stderr, "%s -> %s\n", c.Original, c.Corrected)
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	return cmd
}

// createBuildCmd creates the dictionary building command
func createBuildCmd() *cobra.Command {
	var corpusFiles []string
	var freqLists []string
	var dbDSN string
	var dbQuery string
	var out string
	var minCount int64

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a dictionary from corpus files or a SQL table",
		Long:  `Tokenize text corpora and/or pull pre-aggregated counts from Postgres, then write the merged dictionary`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(corpusFiles) == 0 && len(freqLists) == 0 && dbDSN == "" {
				log.Fatal("at least one --corpus, --freq-list or --db-dsn source is required")
			}

			counts := make(map[string]int64)
			for _, path := range corpusFiles {
				fileCounts, err := corpus.FromFile(path)
				if err != nil {
					log.Fatalf("Failed to read corpus: %v", err)
				}
				corpus.Merge(counts, fileCounts)
			}

			for _, path := range freqLists {
				listCounts, err := corpus.FromFrequencyListFile(path)
				if err != nil {
					log.Fatalf("Failed to read frequency list: %v", err)
				}
				corpus.Merge(counts, listCounts)
			}

			if dbDSN != "" {
				db, err := corpus.OpenPostgres(dbDSN)
				if err != nil {
					log.Fatalf("Failed to connect to database: %v", err)
				}
				defer db.Close()

				sqlCounts, err := corpus.FromSQL(cmd.Context(), db, dbQuery)
				if err != nil {
					log.Fatalf("Failed to query corpus: %v", err)
				}
				corpus.Merge(counts, sqlCounts)
			}

			corpus.Trim(counts, minCount)
			if err := dictionary.Save(out, counts, false); err != nil {
				log.Fatalf("Failed to write dictionary: %v", err)
			}
			fmt.Printf("wrote %d words to %s\n", len(counts), out)
		},
	}

	cmd.Flags().StringSliceVar(&corpusFiles, "corpus", nil, "corpus text file, repeatable (txt or txt.gz)")
	cmd.Flags().StringSliceVar(&freqLists, "freq-list", nil, "pre-counted 'word count' list file, repeatable")
	cmd.Flags().StringVar(&dbDSN, "db-dsn", "", "Postgres DSN with a word-count table")
	cmd.Flags().StringVar(&dbQuery, "db-query", "SELECT word, count FROM word_counts", "query returning (word, count) rows")
	cmd.Flags().StringVar(&out, "out", "dictionary.json.gz", "output dictionary path")
	cmd.Flags().Int64Var(&minCount, "min-count", 0, "drop words seen fewer times than this")

	return cmd
}

// createExportCmd creates the dictionary re-export command
func createExportCmd() *cobra.Command {
	var out string
	var threshold int64
	var gzipped bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Re-export the loaded dictionary, optionally compacted",
		Run: func(cmd *cobra.Command, args []string) {
			counts, err := loadCounts()
			if err != nil {
				log.Fatalf("Failed to load dictionary: %v", err)
			}

			wf := spell.NewWordFrequency(options.WithThreshold(threshold))
			if err := wf.LoadCounts(counts); err != nil {
				log.Fatalf("Failed to load dictionary: %v", err)
			}
			wf.Compact()

			if err := dictionary.Save(out, wf.Export(), gzipped); err != nil {
				log.Fatalf("Failed to write dictionary: %v", err)
			}
			fmt.Printf("wrote %d words to %s\n", wf.UniqueWords(), out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "dictionary.json.gz", "output dictionary path")
	cmd.Flags().Int64Var(&threshold, "threshold", 0, "drop words seen fewer times than this")
	cmd.Flags().BoolVar(&gzipped, "gzip", false, "gzip the output even without a .gz suffix")

	return cmd
}
