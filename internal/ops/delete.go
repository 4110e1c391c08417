package ops

import (
	"github.com/rs/zerolog/log"

	"github.com/pdfdeck/pdfdeck/internal/document"
	"github.com/pdfdeck/pdfdeck/internal/pagerange"
)

// Delete writes a copy of the input document without the pages covered by
// the given ranges. Exclusion is set-based, so overlapping ranges collapse
// and excluded page numbers beyond the end of the document simply never
// match a real page.
func (s *Service) Delete(req DeleteRequest) (*DeleteResult, error) {
	const op = "delete"

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

	excluded := pagerange.ExclusionSet(ranges)

	pageCount, err := s.engine.PageCount(req.Input)
	if err != nil {
		return nil, opErr(KindUnexpected, op, req.Input, err)
	}

	builder := document.NewBuilder(s.engine, req.Input)
	kept := 0
	for idx := 0; idx < pageCount; idx++ {
		if _, drop := excluded[idx]; drop {
			continue
		}
		builder.Append(idx + 1)
		kept++
		report(req.Progress, kept, pageCount-len(excluded))
	}

	if builder.Len() == 0 {
		return nil, opErrf(KindInvalidArgument, op, req.Input,
			"the given ranges would delete all %d pages", pageCount)
	}

	if err := builder.Flush(req.Output); err != nil {
		return nil, opErr(KindUnexpected, op, req.Output, err)
	}

	result := &DeleteResult{
		Output:       req.Output,
		PagesKept:    kept,
		PagesDeleted: pageCount - kept,
	}
	log.Info().Str("output", req.Output).Int("kept", kept).Int("deleted", result.PagesDeleted).Msg("pages deleted")
	return result, nil
}
