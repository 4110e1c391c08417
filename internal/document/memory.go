package document

import "fmt"

// MemoryEngine is an in-memory Engine used by tests. Documents are sequences
// of opaque page labels keyed by path; operations rearrange labels instead of
// touching real PDF files, so the page-selection logic can be verified
// without pdfcpu or fixture documents.
type MemoryEngine struct {
	docs map[string][]string
}

// NewMemoryEngine creates an empty in-memory engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{docs: make(map[string][]string)}
}

// AddDocument registers a document at path with the given page labels.
func (e *MemoryEngine) AddDocument(path string, pages ...string) {
	e.docs[path] = pages
}

// Document returns the page labels of the document at path, or nil if no
// document was written there.
func (e *MemoryEngine) Document(path string) []string {
	return e.docs[path]
}

// PageCount implements Engine.
func (e *MemoryEngine) PageCount(path string) (int, error) {
	doc, ok := e.docs[path]
	if !ok {
		return 0, &EngineError{Op: "page_count", Path: path, Err: fmt.Errorf("no such document")}
	}
	return len(doc), nil
}

// CopyPages implements Engine.
func (e *MemoryEngine) CopyPages(input string, pages []int, output string) error {
	doc, ok := e.docs[input]
	if !ok {
		return &EngineError{Op: "copy_pages", Path: input, Err: fmt.Errorf("no such document")}
	}
	if len(pages) == 0 {
		return &EngineError{Op: "copy_pages", Path: input, Err: fmt.Errorf("no pages selected")}
	}

	out := make([]string, 0, len(pages))
	for _, p := range pages {
		if p < 1 || p > len(doc) {
			return &EngineError{Op: "copy_pages", Path: input, Err: fmt.Errorf("page %d out of range", p)}
		}
		out = append(out, doc[p-1])
	}

	e.docs[output] = out
	return nil
}

// Merge implements Engine.
func (e *MemoryEngine) Merge(inputs []string, output string) error {
	if len(inputs) == 0 {
		return &EngineError{Op: "merge", Err: fmt.Errorf("no input files")}
	}

	var out []string
	for _, input := range inputs {
		doc, ok := e.docs[input]
		if !ok {
			return &EngineError{Op: "merge", Path: input, Err: fmt.Errorf("no such document")}
		}
		out = append(out, doc...)
	}

	e.docs[output] = out
	return nil
}

// Validate implements Engine.
func (e *MemoryEngine) Validate(path string) error {
	if _, ok := e.docs[path]; !ok {
		return &EngineError{Op: "validate", Path: path, Err: fmt.Errorf("no such document")}
	}
	return nil
}
