// Package catalog maintains a SQLite index of footprint library files
// so they can be searched without re-reading every .kicad_mod on disk.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/edatools/kicadio/pkg/board"
	"github.com/edatools/kicadio/pkg/codec"
)

// Catalog lifecycle errors.
var (
	ErrDetached        = errors.New("catalog not attached")
	ErrAlreadyAttached = errors.New("catalog already attached")
)

// Entry is one indexed footprint.
type Entry struct {
	ID        string
	Name      string
	File      string
	Layer     string
	Pads      int
	Issues    int
	IndexedAt time.Time
}

// Stats summarizes the catalog contents.
type Stats struct {
	Footprints int
	WithIssues int
}

// Catalog indexes footprint files into a SQLite database under the
// configured data directory.
type Catalog struct {
	mu       sync.RWMutex
	attached bool
	config   Config
	db       *sql.DB
}

// New creates a detached catalog; call Attach before use.
func New() *Catalog {
	return &Catalog{}
}

// Attach opens (or creates) the catalog database under the configured
// data directory and ensures the schema exists.
func (c *Catalog) Attach(config Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attached {
		return ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(config.DataDir, "catalog.db"))
	if err != nil {
		return err
	}
	for _, ddl := range []string{createFootprints, createFootprintsNameIndex} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	c.config = config
	c.db = db
	c.attached = true
	return nil
}

// Detach closes the database. Detaching a detached catalog is an error.
func (c *Catalog) Detach() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return ErrDetached
	}
	err := c.db.Close()
	c.db = nil
	c.attached = false
	return err
}

// Scan walks dir for .kicad_mod files, decodes each under Failsafe and
// upserts the result. Files that fail to tokenize are skipped; the
// count of indexed footprints is returned.
func (c *Catalog) Scan(dir string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return 0, ErrDetached
	}

	indexed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), board.FootprintExtension) {
			return nil
		}

		fp, issues, err := board.LoadFootprint(path, codec.Failsafe)
		if err != nil {
			// Unreadable or untokenizable file; leave it out of the index.
			return nil
		}
		if uerr := c.upsert(fp, path, len(issues)); uerr != nil {
			return uerr
		}
		indexed++
		return nil
	})
	return indexed, err
}

func (c *Catalog) upsert(fp *board.Footprint, path string, issues int) error {
	id := ""
	if fp.Uuid != nil {
		id = fp.Uuid.Value
	}
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := c.db.Exec(`INSERT INTO footprints
    (footprint_id, name, file, layer, pads, issues, indexed_at)
    VALUES (?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT(file) DO UPDATE SET
        footprint_id = excluded.footprint_id,
        name = excluded.name,
        layer = excluded.layer,
        pads = excluded.pads,
        issues = excluded.issues,
        indexed_at = excluded.indexed_at`,
		id, fp.LibraryID, path, fp.Layer.Name, len(fp.Pads), issues, now)
	if err != nil {
		return fmt.Errorf("indexing %s: %w", path, err)
	}
	return nil
}

// Search returns entries whose name contains pattern, ordered by name.
func (c *Catalog) Search(pattern string) ([]Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return nil, ErrDetached
	}

	rows, err := c.db.Query(`SELECT footprint_id, name, file, layer, pads, issues, indexed_at
    FROM footprints WHERE name LIKE ? ORDER BY name`, "%"+pattern+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var indexedAt string
		if err := rows.Scan(&e.ID, &e.Name, &e.File, &e.Layer, &e.Pads, &e.Issues, &indexedAt); err != nil {
			return nil, err
		}
		e.IndexedAt, _ = time.Parse(time.RFC3339, indexedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats returns catalog-wide counts.
func (c *Catalog) Stats() (Stats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return Stats{}, ErrDetached
	}

	var s Stats
	if err := c.db.QueryRow("SELECT COUNT(*) FROM footprints").Scan(&s.Footprints); err != nil {
		return Stats{}, err
	}
	if err := c.db.QueryRow("SELECT COUNT(*) FROM footprints WHERE issues > 0").Scan(&s.WithIssues); err != nil {
		return Stats{}, err
	}
	return s, nil
}
