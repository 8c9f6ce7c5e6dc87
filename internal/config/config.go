package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeConvert = "convert"
	ModeStdio   = "stdio"

	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the converter
type Config struct {
	// Run configuration
	Mode string // "convert" or "stdio"

	// Conversion configuration
	InputPath  string
	OutputPath string
	Pretty     bool

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:        ModeConvert,
		Version:     "1.0.0",
		ServerName:  "pdf2json",
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// The input PDF is the single positional argument
	cfg.InputPath = pflag.Arg(0)
	if pflag.NArg() > 1 {
		return nil, fmt.Errorf("unexpected extra arguments: %v", pflag.Args()[1:])
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("PDF2JSON")
	viper.AutomaticEnv()

	// Define flags with Viper
	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("pretty", cfg.Pretty)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.StringP("output", "o", cfg.OutputPath, "Output JSON file path (prints to stdout when empty)")
	pflag.BoolP("pretty", "p", cfg.Pretty, "Pretty print JSON output")
	pflag.String("mode", cfg.Mode, "Run mode: 'convert' for one-shot conversion, 'stdio' for MCP standard I/O")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("pretty", pflag.Lookup("pretty"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input.pdf>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPDF to JSON Converter - Extract PDF content into structured JSON\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s document.pdf                        # compact JSON to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s document.pdf --pretty               # indented JSON to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s document.pdf -o document.json       # write JSON to a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio                        # run as an MCP server\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PDF2JSON_MODE        Run mode\n")
		fmt.Fprintf(os.Stderr, "  PDF2JSON_OUTPUT      Output JSON file path\n")
		fmt.Fprintf(os.Stderr, "  PDF2JSON_PRETTY      Pretty print JSON output\n")
		fmt.Fprintf(os.Stderr, "  PDF2JSON_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  PDF2JSON_MAXFILESIZE Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.OutputPath = viper.GetString("output")
	cfg.Pretty = viper.GetBool("pretty")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeConvert && c.Mode != ModeStdio {
		return errors.New("mode must be either 'convert' or 'stdio'")
	}

	// Convert mode needs an input file
	if c.Mode == ModeConvert && c.InputPath == "" {
		return errors.New("input PDF path is required")
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, InputPath: %s, OutputPath: %s, Pretty: %t, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.InputPath, c.OutputPath, c.Pretty, c.LogLevel, c.MaxFileSize)
}

// IsConvertMode returns true when running a one-shot conversion
func (c *Config) IsConvertMode() bool {
	return c.Mode == ModeConvert
}

// IsStdioMode returns true when running as an MCP server over stdio
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
