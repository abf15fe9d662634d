package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")

// Source represents a loaded font. One Source serves measurements at any
// size. Source is heavyweight and should be shared across axes.
type Source struct {
	face *font.Face
	name string
}

// NewSource parses font data (TTF or OTF).
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &Source{face: face, name: faceName(face)}, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font family name, if the font declares one.
func (s *Source) Name() string { return s.name }

var (
	defaultOnce   sync.Once
	defaultSource *Source
	defaultErr    error
)

// Default returns the package-level default Source, backed by the embedded
// Go Regular font. The font ships with the module, so Default never does
// I/O and only fails if the embedded data is corrupt.
func Default() (*Source, error) {
	defaultOnce.Do(func() {
		defaultSource, defaultErr = NewSource(goregular.TTF)
	})
	return defaultSource, defaultErr
}

func faceName(f *font.Face) string {
	return f.Font.Describe().Family
}
