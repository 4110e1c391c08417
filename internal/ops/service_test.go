package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfdeck/pdfdeck/internal/compress"
	"github.com/pdfdeck/pdfdeck/internal/document"
)

// testEnv bundles a service wired to the in-memory engine and a stub
// compression backend, plus a temp dir for the placeholder files the
// path-level checks need.
type testEnv struct {
	dir     string
	engine  *document.MemoryEngine
	backend *stubBackend
	service *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		dir:     t.TempDir(),
		engine:  document.NewMemoryEngine(),
		backend: &stubBackend{createOutput: true},
	}
	env.service = NewService(env.engine, env.backend, 0)
	return env
}

// addPDF creates a placeholder file on disk and registers a document with
// pageCount labeled pages in the memory engine. Labels are "<name>:<page>".
func (env *testEnv) addPDF(t *testing.T, name string, pageCount int) string {
	t.Helper()

	path := filepath.Join(env.dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.5 stub"), 0o600))

	pages := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		pages = append(pages, fmt.Sprintf("%s:%d", name, i))
	}
	env.engine.AddDocument(path, pages...)
	return path
}

// pageLabels returns the expected labels for the given 1-indexed pages of a
// document created with addPDF.
func pageLabels(name string, pages ...int) []string {
	labels := make([]string, 0, len(pages))
	for _, p := range pages {
		labels = append(labels, fmt.Sprintf("%s:%d", name, p))
	}
	return labels
}

// requireKind asserts that err is an *OpError of the given kind.
func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()

	require.Error(t, err)
	var opError *OpError
	require.ErrorAs(t, err, &opError)
	assert.Equal(t, kind, opError.Kind, "expected %s, got %s: %v", kind, opError.Kind, err)
}

// stubBackend is a compress.Backend that records its invocation and writes a
// smaller placeholder output when createOutput is set.
type stubBackend struct {
	availableErr error
	compressErr  error
	createOutput bool

	called    bool
	gotInput  string
	gotOutput string
	gotPreset compress.Preset
}

func (b *stubBackend) Name() string { return "stub" }

func (b *stubBackend) Available() error { return b.availableErr }

func (b *stubBackend) Compress(_ context.Context, input, output string, preset compress.Preset) error {
	b.called = true
	b.gotInput = input
	b.gotOutput = output
	b.gotPreset = preset

	if b.compressErr != nil {
		return b.compressErr
	}
	if b.createOutput {
		return os.WriteFile(output, []byte("%PDF"), 0o600)
	}
	return nil
}

func TestNewService_DefaultMaxFileSize(t *testing.T) {
	service := NewService(document.NewMemoryEngine(), &stubBackend{}, 0)
	assert.Equal(t, int64(DefaultMaxFileSize), service.MaxFileSize())

	service = NewService(document.NewMemoryEngine(), &stubBackend{}, 1024)
	assert.Equal(t, int64(1024), service.MaxFileSize())
}

func TestService_ValidateInput(t *testing.T) {
	env := newTestEnv(t)
	input := env.addPDF(t, "doc.pdf", 3)

	tests := []struct {
		name     string
		path     string
		wantKind Kind
	}{
		{name: "missing file", path: filepath.Join(env.dir, "nope.pdf"), wantKind: KindFileNotFound},
		{name: "empty path", path: "", wantKind: KindInvalidArgument},
		{name: "directory", path: env.dir, wantKind: KindInvalidArgument},
		{name: "wrong extension", path: mustWrite(t, env.dir, "doc.txt"), wantKind: KindInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.service.validateInput("test", tt.path)
			requireKind(t, err, tt.wantKind)
		})
	}

	require.NoError(t, env.service.validateInput("test", input))
}

func TestService_ValidateInput_SizeLimits(t *testing.T) {
	dir := t.TempDir()
	service := NewService(document.NewMemoryEngine(), &stubBackend{}, 4)

	empty := filepath.Join(dir, "empty.pdf")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	requireKind(t, service.validateInput("test", empty), KindInvalidArgument)

	big := filepath.Join(dir, "big.pdf")
	require.NoError(t, os.WriteFile(big, []byte("12345"), 0o600))
	requireKind(t, service.validateInput("test", big), KindInvalidArgument)
}

func TestService_Info(t *testing.T) {
	env := newTestEnv(t)
	input := env.addPDF(t, "doc.pdf", 7)

	result, err := env.service.Info(InfoRequest{Path: input})
	require.NoError(t, err)
	assert.Equal(t, input, result.Path)
	assert.Equal(t, 7, result.Pages)
	assert.Equal(t, int64(len("%PDF-1.5 stub")), result.Size)
	assert.NotEmpty(t, result.ModifiedTime)
}

func TestService_Validate(t *testing.T) {
	env := newTestEnv(t)
	input := env.addPDF(t, "doc.pdf", 2)

	result, err := env.service.Validate(ValidateRequest{Path: input})
	require.NoError(t, err)
	assert.True(t, result.Valid)

	// On-disk file without a registered document: engine validation fails,
	// but the verdict comes back in the result, not as an error.
	stray := mustWrite(t, env.dir, "stray.pdf")
	result, err = env.service.Validate(ValidateRequest{Path: stray})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Message)
}

func mustWrite(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	return path
}
