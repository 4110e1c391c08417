package document

// Builder accumulates page references from a single source document and
// flushes them to a destination exactly once. It is the in-memory output
// accumulator the operations append to; nothing touches the filesystem until
// Flush.
type Builder struct {
	engine Engine
	source string
	pages  []int
}

// NewBuilder creates a builder that draws pages from the document at source.
func NewBuilder(engine Engine, source string) *Builder {
	return &Builder{
		engine: engine,
		source: source,
	}
}

// Append adds a 1-indexed page number to the output sequence. The same page
// may be appended more than once; each occurrence is copied again on Flush.
func (b *Builder) Append(page int) {
	b.pages = append(b.pages, page)
}

// Len returns the number of pages appended so far.
func (b *Builder) Len() int {
	return len(b.pages)
}

// Flush writes the accumulated pages to output in append order. It is a
// single write; on error no usable output is guaranteed to exist.
func (b *Builder) Flush(output string) error {
	return b.engine.CopyPages(b.source, b.pages, output)
}
