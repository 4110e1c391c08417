package document

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFCPUEngine implements Engine using pdfcpu.
type PDFCPUEngine struct {
	conf *model.Configuration
}

// NewPDFCPUEngine creates an engine backed by pdfcpu with relaxed validation,
// so documents with minor structural defects are still processable.
func NewPDFCPUEngine() *PDFCPUEngine {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &PDFCPUEngine{conf: conf}
}

// PageCount returns the number of pages in the document at path.
func (e *PDFCPUEngine) PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, &EngineError{Op: "page_count", Path: path, Err: err}
	}
	return count, nil
}

// CopyPages collects the given pages of input, in order and with duplicates
// preserved, into a new document at output.
func (e *PDFCPUEngine) CopyPages(input string, pages []int, output string) error {
	if len(pages) == 0 {
		return &EngineError{Op: "copy_pages", Path: input, Err: fmt.Errorf("no pages selected")}
	}

	// pdfcpu's collect keeps selection order and copies duplicates once per
	// occurrence, which is exactly the builder contract.
	selected := make([]string, 0, len(pages))
	for _, p := range pages {
		selected = append(selected, strconv.Itoa(p))
	}

	if err := api.CollectFile(input, output, selected, e.conf); err != nil {
		return &EngineError{Op: "copy_pages", Path: input, Err: err}
	}
	return nil
}

// Merge concatenates the inputs into a single document at output.
func (e *PDFCPUEngine) Merge(inputs []string, output string) error {
	if len(inputs) == 0 {
		return &EngineError{Op: "merge", Err: fmt.Errorf("no input files")}
	}

	if err := api.MergeCreateFile(inputs, output, false, e.conf); err != nil {
		return &EngineError{Op: "merge", Path: output, Err: err}
	}
	return nil
}

// Validate checks the document at path against the PDF specification using
// pdfcpu's relaxed mode.
func (e *PDFCPUEngine) Validate(path string) error {
	if err := api.ValidateFile(path, e.conf); err != nil {
		return &EngineError{Op: "validate", Path: path, Err: err}
	}
	return nil
}
