package compress

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBinary is the Ghostscript executable resolved via PATH.
const DefaultBinary = "gs"

// Ghostscript compresses PDFs by rewriting them through Ghostscript's
// pdfwrite device.
type Ghostscript struct {
	binary string
}

// NewGhostscript creates a Ghostscript backend. An empty binary falls back to
// DefaultBinary.
func NewGhostscript(binary string) *Ghostscript {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Ghostscript{binary: binary}
}

// Name implements Backend.
func (g *Ghostscript) Name() string {
	return "ghostscript"
}

// Available checks that the Ghostscript binary can be executed.
func (g *Ghostscript) Available() error {
	out, err := exec.Command(g.binary, "--version").Output()
	if err != nil {
		return fmt.Errorf("ghostscript not found in PATH (%s): %w", g.binary, err)
	}
	log.Debug().Str("binary", g.binary).Str("version", strings.TrimSpace(string(out))).Msg("ghostscript found")
	return nil
}

// Compress implements Backend. The invocation is synchronous and carries no
// timeout of its own; a caller that needs one cancels the context.
func (g *Ghostscript) Compress(ctx context.Context, input, output string, preset Preset) error {
	args := buildArgs(input, output, preset)

	log.Debug().Str("binary", g.binary).Strs("args", args).Msg("invoking ghostscript")

	cmd := exec.CommandContext(ctx, g.binary, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ghostscript canceled: %w", ctx.Err())
		}
		return fmt.Errorf("ghostscript failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// buildArgs constructs the Ghostscript argument list for a preset. The
// downsampling flags are inserted before the -dPDFSETTINGS flag.
func buildArgs(input, output string, preset Preset) []string {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.5",
	}

	if preset.Downsample {
		args = append(args,
			"-dDetectDuplicateImages=true",
			"-dColorImageResolution=150",
			"-dGrayImageResolution=150",
			"-dMonoImageResolution=150",
			"-dDownsampleColorImages=true",
			"-dDownsampleGrayImages=true",
			"-dDownsampleMonoImages=true",
		)
	}

	args = append(args,
		"-dPDFSETTINGS="+preset.Name,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-dAutoRotatePages=/None",
		"-sOutputFile="+output,
		input,
	)

	return args
}
