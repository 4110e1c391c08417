package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/pdfdeck/pdfdeck/internal/compress"
	"github.com/pdfdeck/pdfdeck/internal/config"
	"github.com/pdfdeck/pdfdeck/internal/document"
	"github.com/pdfdeck/pdfdeck/internal/logger"
	"github.com/pdfdeck/pdfdeck/internal/ops"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-version", "--version", "-v":
			printVersion()
			return
		case "-help", "--help", "-h", "help":
			fmt.Fprint(os.Stderr, config.Usage())
			return
		}
	}

	// Optional .env in the working directory; real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfdeck: %v\n\n", err)
		fmt.Fprint(os.Stderr, config.Usage())
		os.Exit(2)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		Pretty:     true,
		File:       cfg.LogFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "pdfdeck: %v\n", err)
		os.Exit(1)
	}

	service := ops.NewService(
		document.NewPDFCPUEngine(),
		compress.NewGhostscript(cfg.GhostscriptBinary),
		cfg.MaxFileSize,
	)

	summary, err := run(context.Background(), cfg, service)
	if err != nil {
		log.Error().Err(err).Str("command", cfg.Command).Msg("operation failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(summary)
}

// run dispatches the configured command and returns a one-paragraph summary
// for stdout. Operation errors come back as-is; the caller renders them.
func run(ctx context.Context, cfg *config.Config, service *ops.Service) (string, error) {
	progress := progressPrinter(cfg.Quiet)

	switch cfg.Command {
	case config.CmdExtract:
		result, err := service.Extract(ops.ExtractRequest{
			Input:    cfg.Input,
			Output:   cfg.Output,
			Pages:    cfg.Pages,
			Progress: progress,
		})
		if err != nil {
			return "", err
		}
		return summarizeExtract(result), nil

	case config.CmdMerge:
		result, err := service.Merge(ops.MergeRequest{
			Inputs:   cfg.Inputs,
			Output:   cfg.Output,
			Progress: progress,
		})
		if err != nil {
			return "", err
		}
		return summarizeMerge(result), nil

	case config.CmdSplit:
		result, err := service.Split(ops.SplitRequest{
			Input:        cfg.Input,
			OutputDir:    cfg.OutputDir,
			PagesPerPart: cfg.PagesPerPart,
			Progress:     progress,
		})
		if err != nil {
			return "", err
		}
		return summarizeSplit(result), nil

	case config.CmdDelete:
		result, err := service.Delete(ops.DeleteRequest{
			Input:    cfg.Input,
			Output:   cfg.Output,
			Pages:    cfg.Pages,
			Progress: progress,
		})
		if err != nil {
			return "", err
		}
		return summarizeDelete(result), nil

	case config.CmdCompress:
		result, err := service.Compress(ctx, ops.CompressRequest{
			Input:  cfg.Input,
			Output: cfg.Output,
			Level:  cfg.Level,
		})
		if err != nil {
			return "", err
		}
		return summarizeCompress(result), nil

	case config.CmdInfo:
		result, err := service.Info(ops.InfoRequest{Path: cfg.Input})
		if err != nil {
			return "", err
		}
		return summarizeInfo(result), nil

	case config.CmdValidate:
		result, err := service.Validate(ops.ValidateRequest{Path: cfg.Input})
		if err != nil {
			return "", err
		}
		return summarizeValidate(result), nil

	default:
		return "", fmt.Errorf("unknown command %q", cfg.Command)
	}
}

// progressPrinter writes a carriage-return progress line to stderr, or
// nothing when quiet.
func progressPrinter(quiet bool) ops.ProgressFunc {
	if quiet {
		return nil
	}
	return func(done, total int) {
		fmt.Fprintf(os.Stderr, "\rProcessing pages: %d/%d", done, total)
		if done >= total {
			fmt.Fprintln(os.Stderr)
		}
	}
}

func summarizeExtract(r *ops.ExtractResult) string {
	s := fmt.Sprintf("Success: %d pages extracted to %s", r.PagesWritten, r.Output)
	if r.PagesSkipped > 0 {
		s += fmt.Sprintf(" (%d missing pages skipped)", r.PagesSkipped)
	}
	return s
}

func summarizeMerge(r *ops.MergeResult) string {
	s := fmt.Sprintf("Success: %d files (%d pages) merged into %s", r.FilesMerged, r.PagesWritten, r.Output)
	if r.FilesSkipped > 0 {
		s += fmt.Sprintf(" (%d missing files skipped)", r.FilesSkipped)
	}
	return s
}

func summarizeSplit(r *ops.SplitResult) string {
	return fmt.Sprintf("Success: split into %d parts in %s:\n  %s",
		r.Parts, r.OutputDir, strings.Join(r.Files, "\n  "))
}

func summarizeDelete(r *ops.DeleteResult) string {
	return fmt.Sprintf("Success: %d pages deleted, %d pages saved to %s", r.PagesDeleted, r.PagesKept, r.Output)
}

func summarizeCompress(r *ops.CompressResult) string {
	return fmt.Sprintf("Success: compressed from %.2f KB to %.2f KB (%.1f%% reduction) using %s",
		float64(r.OriginalSize)/1024, float64(r.CompressedSize)/1024, r.Reduction, r.Preset)
}

func summarizeInfo(r *ops.InfoResult) string {
	return fmt.Sprintf("%s\n  Pages:    %d\n  Size:     %d bytes\n  Modified: %s",
		r.Path, r.Pages, r.Size, r.ModifiedTime)
}

func summarizeValidate(r *ops.ValidateResult) string {
	if r.Valid {
		return fmt.Sprintf("%s: valid PDF", r.Path)
	}
	return fmt.Sprintf("%s: INVALID - %s", r.Path, r.Message)
}

func printVersion() {
	fmt.Printf("pdfdeck\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
