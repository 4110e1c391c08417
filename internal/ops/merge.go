package ops

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Merge concatenates the input documents, in the given order, into a single
// output document. Inputs that do not exist are skipped with a warning rather
// than failing the whole operation.
//
// Existence is checked in a single pass that also accumulates the page total,
// so there is no window between a counting pass and a copying pass in which
// an input can disappear. Progress is reported per merged file.
func (s *Service) Merge(req MergeRequest) (*MergeResult, error) {
	const op = "merge"

	if len(req.Inputs) == 0 {
		return nil, opErrf(KindInvalidArgument, op, "", "no input files given")
	}
	if err := requireOutput(op, req.Output); err != nil {
		return nil, err
	}

	result := &MergeResult{Output: req.Output}

	var existing []string
	var pageCounts []int
	total := 0

	for _, input := range req.Inputs {
		if _, err := os.Stat(input); os.IsNotExist(err) {
			warning := fmt.Sprintf("file %s not found - skipping", input)
			log.Warn().Str("input", input).Msg("file not found - skipping")
			result.Warnings = append(result.Warnings, warning)
			result.FilesSkipped++
			continue
		}

		count, err := s.engine.PageCount(input)
		if err != nil {
			return nil, opErr(KindUnexpected, op, input, err)
		}

		existing = append(existing, input)
		pageCounts = append(pageCounts, count)
		total += count
	}

	if len(existing) == 0 {
		return nil, opErrf(KindFileNotFound, op, "", "none of the input files exist")
	}

	if err := s.engine.Merge(existing, req.Output); err != nil {
		return nil, opErr(KindUnexpected, op, req.Output, err)
	}

	done := 0
	for _, count := range pageCounts {
		done += count
		report(req.Progress, done, total)
	}

	result.FilesMerged = len(existing)
	result.PagesWritten = total
	log.Info().Str("output", req.Output).Int("files", result.FilesMerged).Int("pages", total).Msg("files merged")
	return result, nil
}
