package config

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

// Helper function to set os.Args for testing
func setArgs(args []string) {
	os.Args = args
}

// Helper function to clear environment variables
func clearEnvVars() {
	os.Unsetenv("PDF2JSON_MODE")
	os.Unsetenv("PDF2JSON_OUTPUT")
	os.Unsetenv("PDF2JSON_PRETTY")
	os.Unsetenv("PDF2JSON_LOGLEVEL")
	os.Unsetenv("PDF2JSON_MAXFILESIZE")
}

func TestLoadFromFlags_Defaults(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"pdf2json", "document.pdf"})
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Mode != "convert" {
		t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, "convert")
	}
	if cfg.InputPath != "document.pdf" {
		t.Errorf("LoadFromFlags() InputPath = %v, want %v", cfg.InputPath, "document.pdf")
	}
	if cfg.OutputPath != "" {
		t.Errorf("LoadFromFlags() OutputPath = %v, want empty", cfg.OutputPath)
	}
	if cfg.Pretty {
		t.Error("LoadFromFlags() Pretty should default to false")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "info")
	}
	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, 100*1024*1024)
	}
}

func TestLoadFromFlags_ValidFlags(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantMode       string
		wantInputPath  string
		wantOutputPath string
		wantPretty     bool
		wantLogLevel   string
		wantMaxSize    int64
	}{
		{
			name:           "output flag long form",
			args:           []string{"pdf2json", "doc.pdf", "--output=out.json"},
			wantMode:       "convert",
			wantInputPath:  "doc.pdf",
			wantOutputPath: "out.json",
			wantLogLevel:   "info",
			wantMaxSize:    100 * 1024 * 1024,
		},
		{
			name:           "output flag short form",
			args:           []string{"pdf2json", "doc.pdf", "-o", "out.json"},
			wantMode:       "convert",
			wantInputPath:  "doc.pdf",
			wantOutputPath: "out.json",
			wantLogLevel:   "info",
			wantMaxSize:    100 * 1024 * 1024,
		},
		{
			name:          "pretty flag long form",
			args:          []string{"pdf2json", "doc.pdf", "--pretty"},
			wantMode:      "convert",
			wantInputPath: "doc.pdf",
			wantPretty:    true,
			wantLogLevel:  "info",
			wantMaxSize:   100 * 1024 * 1024,
		},
		{
			name:          "pretty flag short form",
			args:          []string{"pdf2json", "-p", "doc.pdf"},
			wantMode:      "convert",
			wantInputPath: "doc.pdf",
			wantPretty:    true,
			wantLogLevel:  "info",
			wantMaxSize:   100 * 1024 * 1024,
		},
		{
			name:         "stdio mode needs no input",
			args:         []string{"pdf2json", "--mode=stdio"},
			wantMode:     "stdio",
			wantLogLevel: "info",
			wantMaxSize:  100 * 1024 * 1024,
		},
		{
			name:          "debug logging",
			args:          []string{"pdf2json", "doc.pdf", "--loglevel=debug"},
			wantMode:      "convert",
			wantInputPath: "doc.pdf",
			wantLogLevel:  "debug",
			wantMaxSize:   100 * 1024 * 1024,
		},
		{
			name:          "custom max file size",
			args:          []string{"pdf2json", "doc.pdf", "--maxfilesize=50000000"},
			wantMode:      "convert",
			wantInputPath: "doc.pdf",
			wantLogLevel:  "info",
			wantMaxSize:   50000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalArgs := os.Args
			defer func() {
				os.Args = originalArgs
				resetFlags()
				clearEnvVars()
			}()

			setArgs(tt.args)
			resetFlags()
			clearEnvVars()

			cfg, err := LoadFromFlags()
			if err != nil {
				t.Fatalf("LoadFromFlags() unexpected error: %v", err)
			}

			if cfg.Mode != tt.wantMode {
				t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, tt.wantMode)
			}
			if cfg.InputPath != tt.wantInputPath {
				t.Errorf("LoadFromFlags() InputPath = %v, want %v", cfg.InputPath, tt.wantInputPath)
			}
			if cfg.OutputPath != tt.wantOutputPath {
				t.Errorf("LoadFromFlags() OutputPath = %v, want %v", cfg.OutputPath, tt.wantOutputPath)
			}
			if cfg.Pretty != tt.wantPretty {
				t.Errorf("LoadFromFlags() Pretty = %v, want %v", cfg.Pretty, tt.wantPretty)
			}
			if cfg.LogLevel != tt.wantLogLevel {
				t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, tt.wantLogLevel)
			}
			if cfg.MaxFileSize != tt.wantMaxSize {
				t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, tt.wantMaxSize)
			}
		})
	}
}

func TestLoadFromFlags_MissingInput(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"pdf2json"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Fatal("LoadFromFlags() expected error for missing input path")
	}
	if !strings.Contains(err.Error(), "input PDF path is required") {
		t.Errorf("LoadFromFlags() error = %v, want error about missing input", err)
	}
}

func TestLoadFromFlags_ExtraArguments(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"pdf2json", "a.pdf", "b.pdf"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Fatal("LoadFromFlags() expected error for extra arguments")
	}
	if !strings.Contains(err.Error(), "unexpected extra arguments") {
		t.Errorf("LoadFromFlags() error = %v, want error about extra arguments", err)
	}
}

func TestLoadFromFlags_EnvironmentVariables(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Setenv("PDF2JSON_OUTPUT", "env.json")
	os.Setenv("PDF2JSON_PRETTY", "true")
	os.Setenv("PDF2JSON_LOGLEVEL", "warn")
	os.Setenv("PDF2JSON_MAXFILESIZE", "200000000")

	setArgs([]string{"pdf2json", "doc.pdf"})
	resetFlags()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.OutputPath != "env.json" {
		t.Errorf("LoadFromFlags() OutputPath = %v, want %v", cfg.OutputPath, "env.json")
	}
	if !cfg.Pretty {
		t.Error("LoadFromFlags() Pretty should come from environment")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "warn")
	}
	if cfg.MaxFileSize != 200000000 {
		t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, 200000000)
	}
}

func TestLoadFromFlags_FlagOverridesEnvironment(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Setenv("PDF2JSON_OUTPUT", "env.json")
	os.Setenv("PDF2JSON_LOGLEVEL", "warn")

	setArgs([]string{"pdf2json", "doc.pdf", "-o", "flag.json", "--loglevel=debug"})
	resetFlags()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	// Flags should override environment variables
	if cfg.OutputPath != "flag.json" {
		t.Errorf("LoadFromFlags() OutputPath = %v, want %v (should override env)", cfg.OutputPath, "flag.json")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v (should override env)", cfg.LogLevel, "debug")
	}
}

func TestLoadFromFlags_InvalidMode(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"pdf2json", "doc.pdf", "--mode=invalid"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Fatal("LoadFromFlags() expected error for invalid mode")
	}
	if !strings.Contains(err.Error(), "mode must be either 'convert' or 'stdio'") {
		t.Errorf("LoadFromFlags() error = %v, want error about invalid mode", err)
	}
}

func TestLoadFromFlags_InvalidLogLevel(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"pdf2json", "doc.pdf", "--loglevel=invalid"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Fatal("LoadFromFlags() expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("LoadFromFlags() error = %v, want error about invalid log level", err)
	}
}
