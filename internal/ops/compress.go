package ops

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/pdfdeck/pdfdeck/internal/compress"
)

// Compress rewrites the input document through the external compression
// backend using the preset for the requested quality level. Levels outside
// [1,5] fall back to the default preset with a warning instead of failing.
//
// The backend runs synchronously with no timeout of its own; pass a
// cancelable context to bound it. After the backend returns, the output file
// must exist or the operation fails with OUTPUT_NOT_CREATED.
func (s *Service) Compress(ctx context.Context, req CompressRequest) (*CompressResult, error) {
	const op = "compress"

	if err := s.validateInput(op, req.Input); err != nil {
		return nil, err
	}
	if err := requireOutput(op, req.Output); err != nil {
		return nil, err
	}

	inputInfo, err := os.Stat(req.Input)
	if err != nil {
		return nil, opErr(KindUnexpected, op, req.Input, err)
	}

	result := &CompressResult{Output: req.Output}

	preset, ok := compress.PresetForLevel(req.Level)
	if !ok {
		warning := fmt.Sprintf("invalid compression level %d - using default (%d)", req.Level, compress.DefaultLevel)
		log.Warn().Int("level", req.Level).Msg("invalid compression level - using default")
		result.Warnings = append(result.Warnings, warning)
	}
	result.Level = preset.Level
	result.Preset = preset.Name

	if err := s.backend.Available(); err != nil {
		return nil, opErr(KindExternalTool, op, req.Input, err)
	}

	log.Info().Str("input", req.Input).Str("preset", preset.Name).Msg("compressing (this may take a while for large files)")

	if err := s.backend.Compress(ctx, req.Input, req.Output, preset); err != nil {
		return nil, opErr(KindExternalTool, op, req.Input, err)
	}

	outputInfo, err := os.Stat(req.Output)
	if os.IsNotExist(err) {
		return nil, opErrf(KindOutputNotCreated, op, req.Output, "output file was not created")
	}
	if err != nil {
		return nil, opErr(KindUnexpected, op, req.Output, err)
	}

	result.OriginalSize = inputInfo.Size()
	result.CompressedSize = outputInfo.Size()
	if result.OriginalSize > 0 {
		result.Reduction = float64(result.OriginalSize-result.CompressedSize) / float64(result.OriginalSize) * 100
	}

	log.Info().
		Int64("original_bytes", result.OriginalSize).
		Int64("compressed_bytes", result.CompressedSize).
		Float64("reduction_pct", result.Reduction).
		Msg("file compressed")
	return result, nil
}
