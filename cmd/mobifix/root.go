package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mobikit/internal/config"
	"github.com/joshuapare/mobikit/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string
	logDir     string
	logLevel   string
)

var (
	cfg         *config.Config
	closeLogger = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "mobifix",
	Short: "Stamp ASIN and EBOK metadata into Kindle ebooks",
	Long: `mobifix patches the EXTH metadata of MOBI, AZW3 and combo Kindle files
so that side-loaded books carry an identifier (ASIN) and the EBOK content
type. Both headers of a combo file are patched and the file size never
changes.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogger()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to this directory")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// setup loads the configuration and starts logging. Flags override the file.
func setup(cmd *cobra.Command, args []string) error {
	c, found, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logDir != "" {
		c.Logging.Enabled = true
		c.Logging.Dir = logDir
	}
	if logLevel != "" {
		c.Logging.Level = strings.ToLower(logLevel)
	}
	if c.Logging.Dir, err = config.ExpandPath(c.Logging.Dir); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	level, err := c.Logging.SlogLevel()
	if err != nil {
		return err
	}

	opts := logger.Options{
		Enabled: c.Logging.Enabled,
		LogDir:  c.Logging.Dir,
		Level:   level,
	}
	if verbose && !quiet {
		opts.Console = os.Stderr
	}
	closeFn, err := logger.Init(opts)
	if err != nil {
		return err
	}
	closeLogger = closeFn
	cfg = c

	if found {
		path := configPath
		if path == "" {
			path = config.DefaultPath
		}
		printVerbose("Using config: %s\n", path)
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
