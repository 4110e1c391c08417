package ops

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pdfdeck/pdfdeck/internal/document"
	"github.com/pdfdeck/pdfdeck/internal/pagerange"
)

// Extract copies the requested page ranges of the input document, in request
// order, into a new output document.
//
// Ranges are applied exactly as given: overlapping ranges copy the shared
// pages once per occurrence, and the progress total is the non-deduplicated
// sum of range sizes. Pages beyond the end of the document are skipped with a
// warning instead of failing the operation. The output file is written
// exactly once, after all ranges have been processed.
func (s *Service) Extract(req ExtractRequest) (*ExtractResult, error) {
	const op = "extract"

	if err := s.validateInput(op, req.Input); err != nil {
		return nil, err
	}
	if err := requireOutput(op, req.Output); err != nil {
		return nil, err
	}

	ranges, err := pagerange.Parse(req.Pages)
	if err != nil {
		return nil, opErr(KindFormat, op, req.Input, err)
	}

	total := pagerange.TotalPages(ranges)

	pageCount, err := s.engine.PageCount(req.Input)
	if err != nil {
		return nil, opErr(KindUnexpected, op, req.Input, err)
	}

	result := &ExtractResult{Output: req.Output}
	builder := document.NewBuilder(s.engine, req.Input)
	done := 0

	for _, r := range ranges {
		for page := r.Start; page <= r.End; page++ {
			if page > pageCount {
				warning := fmt.Sprintf("page %d does not exist - skipping", page)
				log.Warn().Str("input", req.Input).Int("page", page).Msg("page does not exist - skipping")
				result.Warnings = append(result.Warnings, warning)
				result.PagesSkipped++
				continue
			}
			builder.Append(page)
			done++
			report(req.Progress, done, total)
		}
	}

	if builder.Len() == 0 {
		return nil, opErrf(KindInvalidArgument, op, req.Input,
			"none of the requested pages exist (document has %d pages)", pageCount)
	}

	if err := builder.Flush(req.Output); err != nil {
		return nil, opErr(KindUnexpected, op, req.Output, err)
	}

	result.PagesWritten = builder.Len()
	log.Info().Str("output", req.Output).Int("pages", result.PagesWritten).Msg("pages extracted")
	return result, nil
}
