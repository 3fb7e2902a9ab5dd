package board

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edatools/kicadio/pkg/codec"
)

// File extensions accepted by the load and save helpers.
const (
	BoardExtension     = ".kicad_pcb"
	FootprintExtension = ".kicad_mod"
)

// ErrFileExtension indicates a path whose extension does not match the
// expected file type.
var ErrFileExtension = errors.New("unexpected file extension")

func checkExtension(path, want string) error {
	if !strings.EqualFold(filepath.Ext(path), want) {
		return fmt.Errorf("%s: want %s: %w", path, want, ErrFileExtension)
	}
	return nil
}

// LoadBoard reads and decodes a .kicad_pcb file.
func LoadBoard(path string, mode codec.Strictness) (*KicadPcb, []codec.Issue, error) {
	if err := checkExtension(path, BoardExtension); err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	b := NewBoard()
	issues, err := codec.DecodeString(string(data), b, mode)
	if err != nil {
		return nil, issues, err
	}
	return b, issues, nil
}

// SaveBoard encodes b and writes it to a .kicad_pcb file.
func SaveBoard(path string, b *KicadPcb) error {
	if err := checkExtension(path, BoardExtension); err != nil {
		return err
	}
	text, err := codec.EncodeString(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text+"\n"), 0o644)
}

// LoadFootprint reads and decodes a standalone .kicad_mod file.
func LoadFootprint(path string, mode codec.Strictness) (*Footprint, []codec.Issue, error) {
	if err := checkExtension(path, FootprintExtension); err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	fp := &Footprint{}
	issues, err := codec.DecodeString(string(data), fp, mode)
	if err != nil {
		return nil, issues, err
	}
	return fp, issues, nil
}

// SaveFootprint encodes fp and writes it to a .kicad_mod file.
func SaveFootprint(path string, fp *Footprint) error {
	if err := checkExtension(path, FootprintExtension); err != nil {
		return err
	}
	text, err := codec.EncodeString(fp)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text+"\n"), 0o644)
}
