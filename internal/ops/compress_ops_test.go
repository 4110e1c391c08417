package ops

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	env := newTestEnv(t)
	input := env.addPDF(t, "doc.pdf", 5)
	output := filepath.Join(env.dir, "small.pdf")

	result, err := env.service.Compress(context.Background(), CompressRequest{
		Input:  input,
		Output: output,
		Level:  3,
	})
	require.NoError(t, err)

	assert.True(t, env.backend.called)
	assert.Equal(t, input, env.backend.gotInput)
	assert.Equal(t, output, env.backend.gotOutput)
	assert.Equal(t, "/ebook", env.backend.gotPreset.Name)
	assert.False(t, env.backend.gotPreset.Downsample)

	assert.Equal(t, 3, result.Level)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, int64(len("%PDF-1.5 stub")), result.OriginalSize)
	assert.Equal(t, int64(len("%PDF")), result.CompressedSize)
	assert.InDelta(t, 69.23, result.Reduction, 0.01)
}

func TestCompress_Level5AddsDownsampling(t *testing.T) {
	env := newTestEnv(t)
	input := env.addPDF(t, "doc.pdf", 5)

	_, err := env.service.Compress(context.Background(), CompressRequest{
		Input:  input,
		Output: filepath.Join(env.dir, "small.pdf"),
		Level:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, "/ebook", env.backend.gotPreset.Name)
	assert.True(t, env.backend.gotPreset.Downsample)
}

func TestCompress_InvalidLevelFallsBackToDefault(t *testing.T) {
	for _, level := range []int{0, 6, -3} {
		env := newTestEnv(t)
		input := env.addPDF(t, "doc.pdf", 5)

		result, err := env.service.Compress(context.Background(), CompressRequest{
			Input:  input,
			Output: filepath.Join(env.dir, "small.pdf"),
			Level:  level,
		})
		require.NoError(t, err, "level %d must not fail the operation", level)

		assert.Equal(t, 3, result.Level)
		assert.Equal(t, "/ebook", result.Preset)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "invalid compression level")
	}
}

func TestCompress_OutputNotCreated(t *testing.T) {
	env := newTestEnv(t)
	env.backend.createOutput = false
	input := env.addPDF(t, "doc.pdf", 5)

	_, err := env.service.Compress(context.Background(), CompressRequest{
		Input:  input,
		Output: filepath.Join(env.dir, "small.pdf"),
		Level:  3,
	})
	requireKind(t, err, KindOutputNotCreated)
}

func TestCompress_BackendFailures(t *testing.T) {
	env := newTestEnv(t)
	input := env.addPDF(t, "doc.pdf", 5)
	output := filepath.Join(env.dir, "small.pdf")

	env.backend.availableErr = errors.New("gs not installed")
	_, err := env.service.Compress(context.Background(), CompressRequest{Input: input, Output: output, Level: 3})
	requireKind(t, err, KindExternalTool)

	env.backend.availableErr = nil
	env.backend.compressErr = errors.New("exit status 1")
	_, err = env.service.Compress(context.Background(), CompressRequest{Input: input, Output: output, Level: 3})
	requireKind(t, err, KindExternalTool)
}

func TestCompress_MissingInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Compress(context.Background(), CompressRequest{
		Input:  filepath.Join(env.dir, "nope.pdf"),
		Output: filepath.Join(env.dir, "small.pdf"),
		Level:  3,
	})
	requireKind(t, err, KindFileNotFound)
	assert.False(t, env.backend.called)
}
