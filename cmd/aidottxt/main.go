// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the aidottxt CLI, which generates
// ai.txt, .well-known/llms.txt, robots.txt, and humans.txt for a site.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aidottxt/internal/log"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured from --log-level and --log-format before any command runs.
var logger = log.Discard()

// rootCmd generates documents when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "aidottxt",
	Short: "Generate ai.txt, llms.txt, robots.txt, and humans.txt for a site",
	Long: `aidottxt declares how crawlers and AI agents may use a site. It asks a few
questions (or reads them from a config file and the environment) and writes:

  .well-known/llms.txt   AI policy as JSON
  ai.txt                 AI policy as text
  robots.txt             crawler rules
  humans.txt             team credits

Answers are read from aidottxt.yaml in the current directory or
~/.config/aidottxt/, from AIDOTTXT_* environment variables (a .env file is
loaded first), and finally from interactive prompts when stdin is a terminal.`,
	Example: `  aidottxt
  aidottxt --out ./public
  aidottxt --dry-run
  aidottxt --ai-only --out ./dist
  aidottxt --robots-only --humans-only
  aidottxt --no-input --config site.yaml`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	cobra.OnInitialize(initLogger, initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./aidottxt.yaml or ~/.config/aidottxt/aidottxt.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().String("ledger", "", "generation ledger database (default: <user cache dir>/aidottxt/ledger.db)")

	_ = viper.BindPFlag("ledger_path", rootCmd.PersistentFlags().Lookup("ledger"))
}

func initLogger() {
	levelName, _ := rootCmd.PersistentFlags().GetString("log-level")
	formatName, _ := rootCmd.PersistentFlags().GetString("log-format")

	level, err := log.ParseLevel(levelName)
	if err != nil {
		level = slog.LevelWarn
	}
	format, ferr := log.ParseFormat(formatName)

	logger = log.New(log.Config{Level: level, Format: format, Output: os.Stderr})
	if err != nil {
		logger.Warn("ignoring --log-level", "err", err)
	}
	if ferr != nil {
		logger.Warn("ignoring --log-format", "err", ferr)
	}
}

func initConfig() {
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env")
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("aidottxt")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "aidottxt"))
		}
	}

	viper.SetEnvPrefix("AIDOTTXT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Info("using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Warn("could not read config file", "path", cfgFile, "err", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
