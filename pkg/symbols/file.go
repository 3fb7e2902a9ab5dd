package symbols

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edatools/kicadio/pkg/codec"
)

// LibraryExtension is the symbol library file extension.
const LibraryExtension = ".kicad_sym"

// ErrFileExtension indicates a path whose extension does not match the
// expected file type.
var ErrFileExtension = errors.New("unexpected file extension")

// LoadLibrary reads and decodes a .kicad_sym file.
func LoadLibrary(path string, mode codec.Strictness) (*SymbolLib, []codec.Issue, error) {
	if !strings.EqualFold(filepath.Ext(path), LibraryExtension) {
		return nil, nil, fmt.Errorf("%s: want %s: %w", path, LibraryExtension, ErrFileExtension)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	l := NewLibrary()
	issues, err := codec.DecodeString(string(data), l, mode)
	if err != nil {
		return nil, issues, err
	}
	return l, issues, nil
}

// SaveLibrary encodes l and writes it to a .kicad_sym file.
func SaveLibrary(path string, l *SymbolLib) error {
	if !strings.EqualFold(filepath.Ext(path), LibraryExtension) {
		return fmt.Errorf("%s: want %s: %w", path, LibraryExtension, ErrFileExtension)
	}
	text, err := codec.EncodeString(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text+"\n"), 0o644)
}
