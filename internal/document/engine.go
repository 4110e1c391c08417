// Package document abstracts the PDF library behind a small engine interface
// so the page operations can be exercised against an in-memory fake and the
// real pdfcpu implementation interchangeably.
package document

import "fmt"

// Engine is the unified interface for the document-level PDF operations the
// toolkit needs. All page numbers are 1-indexed. Implementations are
// stateless; every call opens, uses and releases its own file handles.
type Engine interface {
	// PageCount returns the number of pages in the document at path.
	PageCount(path string) (int, error)

	// CopyPages writes a new document at output containing exactly the given
	// pages of input, in the given order. Duplicate page numbers are copied
	// once per occurrence. The output is written exactly once; nothing is
	// flushed before the full page list is known.
	CopyPages(input string, pages []int, output string) error

	// Merge writes a new document at output containing all pages of each
	// input, in input order then file order.
	Merge(inputs []string, output string) error

	// Validate checks that the document at path is structurally sound.
	Validate(path string) error
}

// EngineError wraps a failure from the underlying PDF library with the
// operation that triggered it.
type EngineError struct {
	Op   string
	Path string
	Err  error
}

func (e *EngineError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("document %s failed for %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("document %s failed: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
