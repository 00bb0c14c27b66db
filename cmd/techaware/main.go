// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the techaware CLI: the arXiv
// ingestion pipeline, the read API server, and the Telegram digest bot.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/techaware/internal/secrets"
	"github.com/pdiddy/techaware/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the techaware CLI.
var rootCmd = &cobra.Command{
	Use:   "techaware",
	Short: "AI research paper pipeline with summaries and daily digests",
	Long: `techaware keeps a rolling collection of recent AI research papers. It
fetches new papers from arXiv, summarizes them with Claude, and serves the
enriched collection over an HTTP API. A Telegram bot delivers a daily digest
of the top papers to subscribers.

Use ingest for one-shot pipeline runs, serve for the API server (with the
bot and digest scheduler), and papers to query the local collection.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.DefaultLogger.Level = log.DebugLevel
		}

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./techaware.yaml or ~/.config/techaware/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	// .env is optional and loses to real environment variables.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("techaware")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "techaware"))
		}
	}

	viper.SetEnvPrefix("TECHAWARE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// --- configuration assembly ---

func fetchConfig() types.FetchConfig {
	categories := viper.GetStringSlice("fetch.categories")
	if len(categories) == 0 {
		categories = []string{"cs.AI", "cs.LG", "cs.CV", "cs.CL"}
	}
	maxResults := viper.GetInt("fetch.max_results")
	if maxResults == 0 {
		maxResults = 20
	}
	daysBack := viper.GetInt("fetch.days_back")
	if daysBack == 0 {
		daysBack = 7
	}
	interval := viper.GetDuration("fetch.request_interval")
	if interval == 0 {
		interval = 3 * time.Second
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "techaware/" + version,
		},
		Categories:      categories,
		MaxResults:      maxResults,
		DaysBack:        daysBack,
		RequestInterval: interval,
	}
}

func summarizerConfig() types.SummarizerConfig {
	apiKey := secretDefault("anthropic-api-key", viper.GetString("summarizer.api_key"))
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	return types.SummarizerConfig{
		AIConfig: types.AIConfig{
			Model:  viper.GetString("summarizer.model"),
			APIKey: apiKey,
		},
		MaxInputChars: viper.GetInt("summarizer.max_input_chars"),
		MaxTokens:     viper.GetInt("summarizer.max_tokens"),
		RulesFile:     viper.GetString("summarizer.rules_file"),
	}
}

func storeConfig() types.StoreConfig {
	dataDir := viper.GetString("store.data_dir")
	if dataDir == "" {
		dataDir = "data"
	}
	return types.StoreConfig{
		DataDir:    dataDir,
		WindowSize: viper.GetInt("store.window_size"),
	}
}

func serverConfig() types.ServerConfig {
	host := viper.GetString("server.host")
	if host == "" {
		host = "0.0.0.0"
	}
	port := viper.GetInt("server.port")
	if port == 0 {
		port = 8000
	}
	return types.ServerConfig{Host: host, Port: port}
}

func botConfig() types.BotConfig {
	token := secretDefault("telegram-bot-token", viper.GetString("bot.token"))
	if token == "" {
		token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	frontendURL := viper.GetString("bot.frontend_url")
	if frontendURL == "" {
		frontendURL = os.Getenv("FRONTEND_URL")
	}

	return types.BotConfig{
		Token:          token,
		FrontendURL:    frontendURL,
		DigestSize:     viper.GetInt("bot.digest_size"),
		DigestSchedule: viper.GetString("bot.digest_schedule"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
