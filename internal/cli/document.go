package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edatools/kicadio/pkg/board"
	"github.com/edatools/kicadio/pkg/codec"
	"github.com/edatools/kicadio/pkg/sexpr"
	"github.com/edatools/kicadio/pkg/symbols"
)

// ErrUnknownFileType indicates a path whose extension and lead token
// both fail to identify a KiCad document type.
var ErrUnknownFileType = errors.New("unknown file type")

// loadDocument decodes path into the entity type matching its
// extension. Other extensions fall back to the file's lead token.
func loadDocument(path string, mode codec.Strictness) (codec.Entity, []codec.Issue, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case board.BoardExtension:
		b, issues, err := board.LoadBoard(path, mode)
		return b, issues, err
	case board.FootprintExtension:
		fp, issues, err := board.LoadFootprint(path, mode)
		return fp, issues, err
	case symbols.LibraryExtension:
		l, issues, err := symbols.LoadLibrary(path, mode)
		return l, issues, err
	default:
		return loadByHead(path, mode)
	}
}

// loadByHead tokenizes the file and dispatches on the lead token. The
// token is matched here, so the decode skips its own check.
func loadByHead(path string, mode codec.Strictness) (codec.Entity, []codec.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	list, err := sexpr.Parse(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	var e codec.Entity
	switch list.Head() {
	case "kicad_pcb":
		e = board.NewBoard()
	case "footprint", "module":
		e = &board.Footprint{}
	case "kicad_symbol_lib":
		e = symbols.NewLibrary()
	default:
		return nil, nil, fmt.Errorf("%s: lead token %q: %w", path, list.Head(), ErrUnknownFileType)
	}

	issues, err := codec.DecodeMatched(list, e, mode)
	if err != nil {
		return nil, issues, err
	}
	return e, issues, nil
}
