package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/parser"
)

// envPrefix prefixes the environment variables that override flag defaults.
const envPrefix = "PMSHEET_"

// config holds the CLI settings.
type config struct {
	Dir              string
	OutDir           string
	Format           string
	Reader           string
	HistoryAttach    string
	MinHeaderMatches int
	LogLevel         string
	LogFormat        string
}

// defaultConfig returns the built-in settings overridden by PMSHEET_*
// environment variables.
func defaultConfig() config {
	return config{
		Dir:              envString("DIR", "."),
		OutDir:           envString("OUT_DIR", ""),
		Format:           envString("FORMAT", "json"),
		Reader:           envString("READER", "excelize"),
		HistoryAttach:    envString("HISTORY_ATTACH", "all"),
		MinHeaderMatches: envInt("MIN_HEADER_MATCHES", parser.DefaultVocabulary().MinHeaderMatches),
		LogLevel:         envString("LOG_LEVEL", "warn"),
		LogFormat:        envString("LOG_FORMAT", "text"),
	}
}

func bindFlags(cmd *cobra.Command, cfg *config) {
	flags := cmd.Flags()
	flags.StringVarP(&cfg.OutDir, "out-dir", "o", cfg.OutDir, "Directory for output files (default: next to each workbook)")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "Output format: json, toon")
	flags.StringVar(&cfg.Reader, "reader", cfg.Reader, "Workbook reader: excelize, stream")
	flags.StringVar(&cfg.HistoryAttach, "history-attach", cfg.HistoryAttach, "History for duplicate part names: all, last")
	flags.IntVar(&cfg.MinHeaderMatches, "min-header-matches", cfg.MinHeaderMatches, "Known labels a row needs to be the machine table header")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json")
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is ignored.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
