package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "tagforge",
		Short: "HTML generation and formatting toolkit",
		Long: `Tagforge renders HTML from element trees and parses HTML back
into trees for inspection and rewriting.

  • Shorthand attribute keys expanded to their wire form
  • Pooled, estimated-capacity rendering
  • Strict parser with byte-offset errors
  • Round-trip safe formatting`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		fmtCmd(&verbose),
		attrCmd(&verbose),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger. Verbose mode enables debug output;
// otherwise only warnings and errors reach the terminal.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
