package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Extract(t *testing.T) {
	cfg, err := Load([]string{"extract", "--input", "in.pdf", "--output", "out.pdf", "--pages", "1-5,8-10"})
	require.NoError(t, err)

	assert.Equal(t, CmdExtract, cfg.Command)
	assert.Equal(t, "in.pdf", cfg.Input)
	assert.Equal(t, "out.pdf", cfg.Output)
	assert.Equal(t, "1-5,8-10", cfg.Pages)

	// Defaults survive parsing.
	assert.Equal(t, DefaultCompressionLevel, cfg.Level)
	assert.Equal(t, "gs", cfg.GhostscriptBinary)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
}

func TestLoad_Merge(t *testing.T) {
	cfg, err := Load([]string{"merge", "--inputs", "a.pdf,b.pdf,c.pdf", "--output", "merged.pdf"})
	require.NoError(t, err)

	assert.Equal(t, CmdMerge, cfg.Command)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, cfg.Inputs)
	assert.Equal(t, "merged.pdf", cfg.Output)
}

func TestLoad_Split(t *testing.T) {
	cfg, err := Load([]string{"split", "--input", "in.pdf", "--pages-per-part", "10", "--outdir", "parts"})
	require.NoError(t, err)

	assert.Equal(t, CmdSplit, cfg.Command)
	assert.Equal(t, 10, cfg.PagesPerPart)
	assert.Equal(t, "parts", cfg.OutputDir)
}

func TestLoad_Compress(t *testing.T) {
	cfg, err := Load([]string{"compress", "--input", "in.pdf", "--output", "small.pdf", "--level", "5", "--gs", "/usr/local/bin/gs"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Level)
	assert.Equal(t, "/usr/local/bin/gs", cfg.GhostscriptBinary)
}

func TestLoad_CommandIsCaseInsensitive(t *testing.T) {
	cfg, err := Load([]string{"INFO", "--input", "in.pdf"})
	require.NoError(t, err)
	assert.Equal(t, CmdInfo, cfg.Command)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("PDFDECK_GS", "/opt/gs/bin/gs")
	t.Setenv("PDFDECK_LOGLEVEL", "debug")

	cfg, err := Load([]string{"info", "--input", "in.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "/opt/gs/bin/gs", cfg.GhostscriptBinary)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"rotate", "--input", "in.pdf"}},
		{name: "extract without pages", args: []string{"extract", "--input", "in.pdf", "--output", "out.pdf"}},
		{name: "extract without output", args: []string{"extract", "--input", "in.pdf", "--pages", "1-2"}},
		{name: "merge without inputs", args: []string{"merge", "--output", "out.pdf"}},
		{name: "split without span", args: []string{"split", "--input", "in.pdf"}},
		{name: "compress without output", args: []string{"compress", "--input", "in.pdf"}},
		{name: "info without input", args: []string{"info"}},
		{name: "zero maxfilesize", args: []string{"info", "--input", "in.pdf", "--maxfilesize", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestValidate_SplitAllowsNegativeSpanThrough(t *testing.T) {
	// The operation layer owns the InvalidArgument failure for spans <= 0;
	// config only rejects the unset zero value.
	cfg := DefaultConfig()
	cfg.Command = CmdSplit
	cfg.Input = "in.pdf"
	cfg.PagesPerPart = -1

	assert.NoError(t, cfg.Validate())
}

func TestUsage_ListsAllCommands(t *testing.T) {
	usage := Usage()
	for _, cmd := range []string{CmdExtract, CmdMerge, CmdSplit, CmdDelete, CmdCompress, CmdInfo, CmdValidate} {
		assert.Contains(t, usage, cmd)
	}
}
