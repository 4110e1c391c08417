// Package compress wraps the external PDF compression tool behind a small
// backend interface so the operation layer can be tested with a stub and the
// tool can be swapped without touching callers.
package compress

import "context"

// Backend performs the actual compression of a PDF file. Implementations run
// synchronously and return once the output file has been produced or the
// tool has failed.
type Backend interface {
	// Name identifies the backend in logs and error messages.
	Name() string

	// Available reports whether the backend's external tool can be invoked.
	Available() error

	// Compress reads input and writes a compressed document to output using
	// the given preset. The call blocks until the tool exits; cancellation,
	// if any, comes from the context.
	Compress(ctx context.Context, input, output string, preset Preset) error
}

// Quality levels accepted by the compress operation.
const (
	LevelHighestQuality = 1 // prepress, largest output
	LevelHighQuality    = 2 // printer
	LevelBalanced       = 3 // ebook, the default
	LevelSmallest       = 4 // screen, lowest quality
	LevelCustomBalanced = 5 // ebook plus image downsampling
)

// DefaultLevel is used when the requested level is outside [1,5].
const DefaultLevel = LevelBalanced

// Preset is a named quality/size tradeoff passed to the external tool.
type Preset struct {
	// Level is the user-facing quality level the preset was derived from.
	Level int

	// Name is the tool-side settings name, e.g. "/ebook".
	Name string

	// Downsample enables duplicate-image detection and 150 DPI image
	// downsampling on top of the named settings.
	Downsample bool
}

var presets = map[int]Preset{
	LevelHighestQuality: {Level: LevelHighestQuality, Name: "/prepress"},
	LevelHighQuality:    {Level: LevelHighQuality, Name: "/printer"},
	LevelBalanced:       {Level: LevelBalanced, Name: "/ebook"},
	LevelSmallest:       {Level: LevelSmallest, Name: "/screen"},
	LevelCustomBalanced: {Level: LevelCustomBalanced, Name: "/ebook", Downsample: true},
}

// PresetForLevel maps a quality level to its preset. Unknown levels fall back
// to the default preset; ok is false so the caller can warn about it.
func PresetForLevel(level int) (preset Preset, ok bool) {
	if p, found := presets[level]; found {
		return p, true
	}
	return presets[DefaultLevel], false
}
