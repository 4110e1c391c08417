// Package ops implements the document-level PDF operations: extract, merge,
// delete, split, compress, info and validate. Each operation is a stateless,
// synchronous transformation from input file(s) plus parameters to an output
// file; no state survives between calls.
package ops

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfdeck/pdfdeck/internal/compress"
	"github.com/pdfdeck/pdfdeck/internal/document"
)

// DefaultMaxFileSize caps input documents at 100MB unless configured otherwise.
const DefaultMaxFileSize = 100 * 1024 * 1024

// Service orchestrates the PDF operations over an injected document engine
// and compression backend.
type Service struct {
	engine      document.Engine
	backend     compress.Backend
	maxFileSize int64
}

// NewService creates a service. A maxFileSize of 0 or less falls back to
// DefaultMaxFileSize.
func NewService(engine document.Engine, backend compress.Backend, maxFileSize int64) *Service {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Service{
		engine:      engine,
		backend:     backend,
		maxFileSize: maxFileSize,
	}
}

// MaxFileSize returns the input size limit in bytes.
func (s *Service) MaxFileSize() int64 {
	return s.maxFileSize
}

// validateInput performs the cheap pre-checks every operation applies to its
// source document before any PDF parsing happens.
func (s *Service) validateInput(op, path string) error {
	if path == "" {
		return opErrf(KindInvalidArgument, op, "", "input path cannot be empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return opErrf(KindFileNotFound, op, path, "input file does not exist")
	}
	if err != nil {
		return opErr(KindUnexpected, op, path, err)
	}

	if info.IsDir() {
		return opErrf(KindInvalidArgument, op, path, "path is a directory, not a file")
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return opErrf(KindInvalidArgument, op, path, "file is not a PDF")
	}
	if info.Size() == 0 {
		return opErrf(KindInvalidArgument, op, path, "file is empty")
	}
	if info.Size() > s.maxFileSize {
		return opErrf(KindInvalidArgument, op, path,
			"file too large: %d bytes (max %d bytes)", info.Size(), s.maxFileSize)
	}

	return nil
}

// requireOutput rejects requests without a destination path.
func requireOutput(op, output string) error {
	if output == "" {
		return opErrf(KindInvalidArgument, op, "", "output path cannot be empty")
	}
	return nil
}

// Info returns page count, size and modification time for one document.
func (s *Service) Info(req InfoRequest) (*InfoResult, error) {
	const op = "info"

	if err := s.validateInput(op, req.Path); err != nil {
		return nil, err
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		return nil, opErr(KindUnexpected, op, req.Path, err)
	}

	pages, err := s.engine.PageCount(req.Path)
	if err != nil {
		return nil, opErr(KindUnexpected, op, req.Path, err)
	}

	return &InfoResult{
		Path:         req.Path,
		Pages:        pages,
		Size:         info.Size(),
		ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
	}, nil
}

// Validate checks a document structurally. A failed validation is reported in
// the result; only processing failures return an error.
func (s *Service) Validate(req ValidateRequest) (*ValidateResult, error) {
	const op = "validate"

	result := &ValidateResult{Path: req.Path}

	if err := s.validateInput(op, req.Path); err != nil {
		result.Message = err.Error()
		return result, nil
	}

	if err := s.engine.Validate(req.Path); err != nil {
		result.Message = fmt.Sprintf("invalid PDF: %v", err)
		return result, nil
	}

	result.Valid = true
	return result, nil
}
