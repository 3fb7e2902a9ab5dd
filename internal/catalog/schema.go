package catalog

// Schema DDL for the footprint index. The file path is the key:
// copied footprint files keep their uuid, so footprint_id repeats
// across rows.
const (
	createFootprints = `CREATE TABLE IF NOT EXISTS footprints (
    file TEXT PRIMARY KEY,
    footprint_id TEXT NOT NULL,
    name TEXT NOT NULL,
    layer TEXT NOT NULL,
    pads INTEGER NOT NULL,
    issues INTEGER NOT NULL,
    indexed_at TEXT NOT NULL
);`

	createFootprintsNameIndex = `CREATE INDEX IF NOT EXISTS idx_footprints_name
    ON footprints(name);`
)
