package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pdfdeck/pdfdeck/internal/document"
)

// dirPerm is the mode for directories the operations create.
const dirPerm = 0o750

// Split cuts the input document into ceil(total/pagesPerPart) parts of at
// most PagesPerPart pages each, named "<basename>_part<N>.pdf" with N
// starting at 1. Parts are written into OutputDir, which is created if
// absent; an empty OutputDir means the input file's directory.
func (s *Service) Split(req SplitRequest) (*SplitResult, error) {
	const op = "split"

	if req.PagesPerPart <= 0 {
		return nil, opErrf(KindInvalidArgument, op, req.Input,
			"pages per part must be positive, got %d", req.PagesPerPart)
	}
	if err := s.validateInput(op, req.Input); err != nil {
		return nil, err
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(req.Input)
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return nil, opErr(KindUnexpected, op, outputDir, err)
	}

	pageCount, err := s.engine.PageCount(req.Input)
	if err != nil {
		return nil, opErr(KindUnexpected, op, req.Input, err)
	}

	baseName := strings.TrimSuffix(filepath.Base(req.Input), filepath.Ext(req.Input))
	numParts := (pageCount + req.PagesPerPart - 1) / req.PagesPerPart

	result := &SplitResult{
		OutputDir:  outputDir,
		TotalPages: pageCount,
		Parts:      numParts,
	}

	done := 0
	for part := 0; part < numParts; part++ {
		first := part*req.PagesPerPart + 1
		last := (part + 1) * req.PagesPerPart
		if last > pageCount {
			last = pageCount
		}

		builder := document.NewBuilder(s.engine, req.Input)
		for page := first; page <= last; page++ {
			builder.Append(page)
			done++
			report(req.Progress, done, pageCount)
		}

		output := filepath.Join(outputDir, fmt.Sprintf("%s_part%d.pdf", baseName, part+1))
		if err := builder.Flush(output); err != nil {
			return nil, opErr(KindUnexpected, op, output, err)
		}
		result.Files = append(result.Files, output)
	}

	log.Info().Str("input", req.Input).Int("parts", numParts).Str("dir", outputDir).Msg("document split")
	return result, nil
}
