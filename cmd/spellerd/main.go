package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"speller/internal/config"
	"speller/internal/dictionary"
	"speller/internal/httpapi"
	"speller/internal/spell"
	"speller/internal/userdict"
	"speller/pkg/options"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	counts, err := loadDictionary(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load dictionary")
	}

	opts := []options.Options{
		options.WithEditDistance(cfg.EditDistance),
		options.WithLengthMargin(cfg.LengthMargin),
	}
	if cfg.CaseSensitive {
		opts = append(opts, options.WithCaseSensitive())
	}
	if cfg.Threshold > 0 {
		opts = append(opts, options.WithThreshold(cfg.Threshold))
	}

	wf := spell.NewWordFrequency(opts...)
	if err := wf.LoadCounts(counts); err != nil {
		log.Fatal().Err(err).Msg("load dictionary")
	}
	wf.Compact()
	corrector := spell.NewCorrector(wf, opts...)
	log.Info().
		Int("unique_words", wf.UniqueWords()).
		Int64("total_words", wf.Total()).
		Strs("languages", cfg.Languages).
		Msg("dictionary loaded")

	var users *userdict.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		users = userdict.NewWithKey(client, cfg.Redis.Key)
	}

	server := httpapi.New(log, corrector, users, cfg.Languages)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.LoadUserWords(ctx); err != nil {
		log.Warn().Err(err).Msg("user dictionary unavailable")
	}

	go func() {
		if err := server.Start(cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func loadDictionary(cfg config.Config) (map[string]int64, error) {
	if cfg.Dictionary != "" {
		return dictionary.Load(cfg.Dictionary)
	}
	return dictionary.LoadLanguages(cfg.DataDir, cfg.Languages...)
}
