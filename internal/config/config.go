// Package config loads the toolkit configuration from the command line and
// the environment. The first argument selects the operation; the remaining
// flags carry its parameters and can also be set through PDFDECK_* variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Operation commands understood by the CLI.
const (
	CmdExtract  = "extract"
	CmdMerge    = "merge"
	CmdSplit    = "split"
	CmdDelete   = "delete"
	CmdCompress = "compress"
	CmdInfo     = "info"
	CmdValidate = "validate"
)

const (
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultMaxFileSize caps input PDFs at 100MB.
	DefaultMaxFileSize = 100 * 1024 * 1024

	// DefaultCompressionLevel is the balanced ebook preset.
	DefaultCompressionLevel = 3
)

// Config holds all configuration for one toolkit invocation.
type Config struct {
	// Command is the selected operation.
	Command string

	// Operation parameters.
	Input        string
	Inputs       []string // merge only
	Output       string
	OutputDir    string // split only, empty means the input's directory
	Pages        string // page ranges, e.g. "1-5,8-10"
	PagesPerPart int    // split only
	Level        int    // compress only, 1..5

	// External tools.
	GhostscriptBinary string

	// Application configuration.
	LogLevel    string
	LogFile     string
	Quiet       bool
	MaxFileSize int64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Level:             DefaultCompressionLevel,
		GhostscriptBinary: "gs",
		LogLevel:          DefaultLogLevel,
		MaxFileSize:       DefaultMaxFileSize,
	}
}

// Load parses args (excluding the program name) into a configuration. The
// first argument must be a command; flags after it may also come from
// PDFDECK_* environment variables.
func Load(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, errors.New("no command given")
	}

	cfg := DefaultConfig()
	cfg.Command = strings.ToLower(args[0])

	flags := pflag.NewFlagSet("pdfdeck", pflag.ContinueOnError)
	flags.Usage = func() { fmt.Fprint(os.Stderr, Usage()) }
	defineFlags(flags, cfg)

	v := viper.New()
	v.SetEnvPrefix("PDFDECK")
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if err := flags.Parse(args[1:]); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	populate(v, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defineFlags sets up all command line flags.
func defineFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.String("input", "", "Input PDF file")
	flags.StringSlice("inputs", nil, "Input PDF files to merge, in order")
	flags.String("output", "", "Output PDF file")
	flags.String("outdir", "", "Output directory for split parts (default: input's directory)")
	flags.String("pages", "", "Page ranges, e.g. \"1-5,8-10\" (1-indexed, inclusive)")
	flags.Int("pages-per-part", 0, "Number of pages per split part")
	flags.Int("level", cfg.Level, "Compression level 1-5 (1=highest quality, 4=smallest, 5=balanced custom)")
	flags.String("gs", cfg.GhostscriptBinary, "Ghostscript binary used for compression")
	flags.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("logfile", "", "Optional log file with rotation")
	flags.Bool("quiet", false, "Disable progress output")
	flags.Int64("maxfilesize", cfg.MaxFileSize, "Maximum input PDF size in bytes")
}

// setDefaults mirrors the flag defaults into viper so environment variables
// can override them.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("level", cfg.Level)
	v.SetDefault("gs", cfg.GhostscriptBinary)
	v.SetDefault("loglevel", cfg.LogLevel)
	v.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// populate fills the config struct with values from viper.
func populate(v *viper.Viper, cfg *Config) {
	cfg.Input = v.GetString("input")
	cfg.Inputs = v.GetStringSlice("inputs")
	cfg.Output = v.GetString("output")
	cfg.OutputDir = v.GetString("outdir")
	cfg.Pages = v.GetString("pages")
	cfg.PagesPerPart = v.GetInt("pages-per-part")
	cfg.Level = v.GetInt("level")
	cfg.GhostscriptBinary = v.GetString("gs")
	cfg.LogLevel = v.GetString("loglevel")
	cfg.LogFile = v.GetString("logfile")
	cfg.Quiet = v.GetBool("quiet")
	cfg.MaxFileSize = v.GetInt64("maxfilesize")
}

// Validate checks that the configuration is complete for its command.
// Semantic checks on the parameters themselves (page ranges, split spans,
// compression levels) belong to the operations.
func (c *Config) Validate() error {
	switch c.Command {
	case CmdExtract, CmdDelete:
		if c.Input == "" {
			return errors.New("--input is required")
		}
		if c.Output == "" {
			return errors.New("--output is required")
		}
		if c.Pages == "" {
			return errors.New("--pages is required")
		}
	case CmdMerge:
		if len(c.Inputs) == 0 {
			return errors.New("--inputs is required")
		}
		if c.Output == "" {
			return errors.New("--output is required")
		}
	case CmdSplit:
		if c.Input == "" {
			return errors.New("--input is required")
		}
		if c.PagesPerPart == 0 {
			return errors.New("--pages-per-part is required")
		}
	case CmdCompress:
		if c.Input == "" {
			return errors.New("--input is required")
		}
		if c.Output == "" {
			return errors.New("--output is required")
		}
	case CmdInfo, CmdValidate:
		if c.Input == "" {
			return errors.New("--input is required")
		}
	default:
		return fmt.Errorf("unknown command %q", c.Command)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maxfilesize must be greater than 0")
	}

	return nil
}

// Usage returns the CLI help text.
func Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pdfdeck - PDF page operations toolkit\n\n")
	fmt.Fprintf(&b, "Usage: pdfdeck <command> [flags]\n\n")
	fmt.Fprintf(&b, "Commands:\n")
	fmt.Fprintf(&b, "  extract    Extract page ranges into a new PDF\n")
	fmt.Fprintf(&b, "  merge      Merge multiple PDFs into one\n")
	fmt.Fprintf(&b, "  split      Split a PDF into fixed-size parts\n")
	fmt.Fprintf(&b, "  delete     Delete page ranges from a PDF\n")
	fmt.Fprintf(&b, "  compress   Compress a PDF via Ghostscript\n")
	fmt.Fprintf(&b, "  info       Show page count and size of a PDF\n")
	fmt.Fprintf(&b, "  validate   Check that a file is a valid PDF\n\n")
	fmt.Fprintf(&b, "Examples:\n")
	fmt.Fprintf(&b, "  pdfdeck extract --input in.pdf --output out.pdf --pages 1-5,8-10\n")
	fmt.Fprintf(&b, "  pdfdeck merge --inputs a.pdf,b.pdf --output merged.pdf\n")
	fmt.Fprintf(&b, "  pdfdeck split --input in.pdf --pages-per-part 10 --outdir parts/\n")
	fmt.Fprintf(&b, "  pdfdeck delete --input in.pdf --output out.pdf --pages 3-5\n")
	fmt.Fprintf(&b, "  pdfdeck compress --input in.pdf --output small.pdf --level 3\n\n")
	fmt.Fprintf(&b, "Environment:\n")
	fmt.Fprintf(&b, "  PDFDECK_GS           Ghostscript binary\n")
	fmt.Fprintf(&b, "  PDFDECK_LOGLEVEL     Log level\n")
	fmt.Fprintf(&b, "  PDFDECK_LOGFILE      Log file\n")
	fmt.Fprintf(&b, "  PDFDECK_MAXFILESIZE  Maximum input size in bytes\n")
	return b.String()
}
