package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries runtime settings. Every variable is optional; absent
// values fall back to working defaults.
type Config struct {
	// FastMode skips the remote similarity backend even when configured.
	// On unless CVMATCH_FAST_MODE is explicitly false.
	FastMode bool
	// Workers bounds concurrent analyses in bulk runs.
	Workers int
	// HFAPIKey authenticates against the remote similarity backend.
	HFAPIKey string
	// RemoteSimilarityURL is the sentence-similarity endpoint. Empty
	// means local similarity only.
	RemoteSimilarityURL string
	// AnalysisTimeout bounds one full analysis.
	AnalysisTimeout time.Duration
	// TextTimeout bounds the text-processing stages of one analysis.
	TextTimeout time.Duration
}

const (
	defaultWorkers         = 5
	defaultAnalysisTimeout = 60 * time.Second
	defaultTextTimeout     = 30 * time.Second
)

func Load() Config {
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg := Config{
		FastMode:            parseBool(opt("CVMATCH_FAST_MODE"), true),
		Workers:             parseInt(opt("CVMATCH_WORKERS"), defaultWorkers),
		HFAPIKey:            opt("CVMATCH_HF_API_KEY"),
		RemoteSimilarityURL: opt("CVMATCH_REMOTE_SIMILARITY_URL"),
		AnalysisTimeout:     parseDuration(opt("CVMATCH_ANALYSIS_TIMEOUT"), defaultAnalysisTimeout),
		TextTimeout:         parseDuration(opt("CVMATCH_TEXT_TIMEOUT"), defaultTextTimeout),
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	return cfg
}

func parseBool(v string, fallback bool) bool {
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func parseInt(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func parseDuration(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
