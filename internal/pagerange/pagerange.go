// Package pagerange parses user-supplied page range strings like "1-5,8-10"
// into inclusive 1-indexed ranges and provides set helpers for the document
// operations built on top of them.
package pagerange

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a contiguous span of pages, 1-indexed and inclusive on both ends.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseError indicates a token that could not be parsed as "<start>-<end>".
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid page range %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid page range %q", e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a comma-separated list of "start-end" tokens into ranges,
// preserving input order. Tokens are trimmed of surrounding whitespace and
// both halves must parse as positive integers.
//
// Parse deliberately does NOT validate start <= end, reject overlaps, or
// deduplicate ranges. Extract-style operations copy each occurrence again;
// delete-style operations collapse duplicates through ExclusionSet. Callers
// that need stricter input must validate on top.
func Parse(input string) ([]Range, error) {
	tokens := strings.Split(input, ",")
	ranges := make([]Range, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)

		parts := strings.Split(token, "-")
		if len(parts) != 2 {
			return nil, &ParseError{Token: token, Err: fmt.Errorf("expected exactly one '-' separator")}
		}

		start, err := parsePageNumber(parts[0])
		if err != nil {
			return nil, &ParseError{Token: token, Err: fmt.Errorf("start page: %w", err)}
		}

		end, err := parsePageNumber(parts[1])
		if err != nil {
			return nil, &ParseError{Token: token, Err: fmt.Errorf("end page: %w", err)}
		}

		ranges = append(ranges, Range{Start: start, End: end})
	}

	return ranges, nil
}

// parsePageNumber parses a single positive page number.
func parsePageNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("page numbers start at 1, got %d", n)
	}
	return n, nil
}

// Size returns the number of pages the range spans, or 0 for an inverted
// range (Start > End), which expands to nothing.
func (r Range) Size() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Pages expands the range into its 1-indexed page numbers in order.
func (r Range) Pages() []int {
	if r.End < r.Start {
		return nil
	}
	pages := make([]int, 0, r.Size())
	for p := r.Start; p <= r.End; p++ {
		pages = append(pages, p)
	}
	return pages
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// TotalPages sums the sizes of all ranges. Overlapping ranges are counted
// once per occurrence, so the total may exceed the number of distinct pages;
// progress reporting relies on exactly this sum.
func TotalPages(ranges []Range) int {
	total := 0
	for _, r := range ranges {
		total += r.Size()
	}
	return total
}

// ExclusionSet builds the set of 0-indexed page numbers covered by the given
// ranges. Duplicates across overlapping ranges collapse naturally. Entries
// beyond a document's length are harmless, they never match a real page.
func ExclusionSet(ranges []Range) map[int]struct{} {
	excluded := make(map[int]struct{})
	for _, r := range ranges {
		for p := r.Start; p <= r.End; p++ {
			excluded[p-1] = struct{}{}
		}
	}
	return excluded
}
