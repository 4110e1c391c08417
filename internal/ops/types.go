package ops

// ProgressFunc receives monotonic progress updates while an operation copies
// pages: done pages processed out of total. The total is precomputed from the
// requested ranges without deduplication, so overlapping ranges inflate it by
// design. A nil ProgressFunc disables reporting.
type ProgressFunc func(done, total int)

// ExtractRequest selects page ranges from one document into a new one.
type ExtractRequest struct {
	Input    string
	Output   string
	Pages    string // e.g. "1-5,8-10"
	Progress ProgressFunc
}

// ExtractResult reports what an extract operation wrote.
type ExtractResult struct {
	Output       string
	PagesWritten int
	PagesSkipped int
	Warnings     []string
}

// MergeRequest concatenates input documents, in order, into one output.
type MergeRequest struct {
	Inputs   []string
	Output   string
	Progress ProgressFunc
}

// MergeResult reports what a merge operation wrote.
type MergeResult struct {
	Output       string
	FilesMerged  int
	FilesSkipped int
	PagesWritten int
	Warnings     []string
}

// DeleteRequest removes page ranges from a document.
type DeleteRequest struct {
	Input    string
	Output   string
	Pages    string // ranges to delete, e.g. "3-5"
	Progress ProgressFunc
}

// DeleteResult reports what a delete operation wrote.
type DeleteResult struct {
	Output       string
	PagesKept    int
	PagesDeleted int
}

// SplitRequest splits a document into fixed-size parts.
type SplitRequest struct {
	Input        string
	OutputDir    string // empty means the input file's directory
	PagesPerPart int
	Progress     ProgressFunc
}

// SplitResult reports the parts a split operation wrote.
type SplitResult struct {
	OutputDir  string
	TotalPages int
	Parts      int
	Files      []string
}

// CompressRequest compresses a document through the external backend.
type CompressRequest struct {
	Input  string
	Output string
	Level  int // 1..5, out-of-range falls back to the default
}

// CompressResult reports the outcome of a compression.
type CompressResult struct {
	Output         string
	Level          int    // effective level after fallback
	Preset         string // tool-side settings name
	OriginalSize   int64
	CompressedSize int64
	Reduction      float64 // percent size reduction
	Warnings       []string
}

// InfoRequest asks for basic facts about a document.
type InfoRequest struct {
	Path string
}

// InfoResult carries basic facts about a document.
type InfoResult struct {
	Path         string
	Pages        int
	Size         int64
	ModifiedTime string
}

// ValidateRequest asks for a structural validation of a document.
type ValidateRequest struct {
	Path string
}

// ValidateResult carries the validation verdict. An invalid document is a
// result, not an operation error.
type ValidateResult struct {
	Path    string
	Valid   bool
	Message string
}

// report invokes fn if set.
func report(fn ProgressFunc, done, total int) {
	if fn != nil {
		fn(done, total)
	}
}
