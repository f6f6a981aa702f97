// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/store.go
// Summary: SQLite-backed full-text index over captured scrollback lines.
// Usage: One Store per terminal surface; feed it lines (or whole
//        snapshots) as they scroll out, query with Search.
// Notes: Writes are batched on a background goroutine; Flush blocks
//        until everything queued so far is visible to Search.

package history

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/texelgfx/screen"
)

// Result is one matched scrollback line.
type Result struct {
	LineIdx   int64
	Timestamp time.Time
	Content   string
}

// Config holds tuning knobs for the store.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string

	// BatchSize is how many queued lines trigger a write. Default 100.
	BatchSize int

	// BatchTimeout flushes a partial batch after this long. Default 5s.
	BatchTimeout time.Duration

	// QueueDepth is the async indexing channel size. Default 1000.
	QueueDepth int
}

// DefaultConfig returns the defaults used by NewStore.
func DefaultConfig(dbPath string) Config {
	return Config{
		DBPath:       dbPath,
		BatchSize:    100,
		BatchTimeout: 5 * time.Second,
		QueueDepth:   1000,
	}
}

type pendingLine struct {
	idx  int64
	ts   time.Time
	text string
}

// Store indexes scrollback lines into SQLite FTS5 with a trigram
// tokenizer, so any substring of a line can be searched.
type Store struct {
	config Config
	db     *sql.DB

	queue   chan pendingLine
	stopCh  chan struct{}
	doneCh  chan struct{}
	flushCh chan chan struct{}

	mu sync.RWMutex
}

// Bump when schema changes require dropping the FTS table.
const schemaVersion = 1

const baseSchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS lines (
    id INTEGER PRIMARY KEY,       -- global scrollback line index
    timestamp INTEGER NOT NULL,   -- UnixNano
    content TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lines_timestamp ON lines(timestamp);
`

const ftsSchema = `
CREATE VIRTUAL TABLE IF NOT EXISTS lines_fts USING fts5(
    content,
    content='lines',
    content_rowid='id',
    tokenize='trigram'
);

CREATE TRIGGER IF NOT EXISTS lines_ai AFTER INSERT ON lines BEGIN
    INSERT INTO lines_fts(rowid, content) VALUES (new.id, new.content);
END;

CREATE TRIGGER IF NOT EXISTS lines_au AFTER UPDATE ON lines BEGIN
    INSERT INTO lines_fts(lines_fts, rowid, content) VALUES ('delete', old.id, old.content);
    INSERT INTO lines_fts(rowid, content) VALUES (new.id, new.content);
END;

CREATE TRIGGER IF NOT EXISTS lines_ad AFTER DELETE ON lines BEGIN
    INSERT INTO lines_fts(lines_fts, rowid, content) VALUES ('delete', old.id, old.content);
END;
`

// NewStore opens (or creates) the index at dbPath with defaults.
func NewStore(dbPath string) (*Store, error) {
	return NewStoreWithConfig(DefaultConfig(dbPath))
}

// NewStoreWithConfig opens the index with explicit tuning.
func NewStoreWithConfig(config Config) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(config.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := config.DBPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(baseSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	needsReindex, err := migrateSchema(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(ftsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create FTS schema: %w", err)
	}
	if needsReindex {
		log.Printf("[HISTORY] schema changed, rebuilding FTS index")
		if _, err := db.Exec("INSERT INTO lines_fts(rowid, content) SELECT id, content FROM lines"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to rebuild FTS index: %w", err)
		}
	}

	s := &Store{
		config:  config,
		db:      db,
		queue:   make(chan pendingLine, config.QueueDepth),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		flushCh: make(chan chan struct{}),
	}
	go s.batchIndexer()
	return s, nil
}

// migrateSchema drops the FTS artifacts when the stored version does
// not match, so they are rebuilt from the lines table. Returns whether
// a rebuild is needed.
func migrateSchema(db *sql.DB) (bool, error) {
	var current int
	if err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current); err != nil {
		current = 0
	}
	if current == schemaVersion {
		return false, nil
	}
	log.Printf("[HISTORY] migrating schema from version %d to %d", current, schemaVersion)
	for _, stmt := range []string{
		"DROP TRIGGER IF EXISTS lines_ai",
		"DROP TRIGGER IF EXISTS lines_au",
		"DROP TRIGGER IF EXISTS lines_ad",
		"DROP TABLE IF EXISTS lines_fts",
	} {
		if _, err := db.Exec(stmt); err != nil {
			return false, fmt.Errorf("migration failed on %q: %w", stmt, err)
		}
	}
	if _, err := db.Exec("INSERT OR REPLACE INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return false, fmt.Errorf("failed to update schema version: %w", err)
	}
	return current != 0, nil
}

func (s *Store) batchIndexer() {
	defer close(s.doneCh)

	batch := make([]pendingLine, 0, s.config.BatchSize)
	timer := time.NewTimer(s.config.BatchTimeout)
	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		s.writeBatch(batch)
		batch = batch[:0]
	}

	for {
		select {
		case line := <-s.queue:
			batch = append(batch, line)
			if len(batch) >= s.config.BatchSize {
				flush()
				timer.Reset(s.config.BatchTimeout)
			}

		case <-timer.C:
			flush()
			timer.Reset(s.config.BatchTimeout)

		case done := <-s.flushCh:
			// Drain whatever is queued before acknowledging.
			for {
				select {
				case line := <-s.queue:
					batch = append(batch, line)
					continue
				default:
				}
				break
			}
			flush()
			close(done)

		case <-s.stopCh:
			for {
				select {
				case line := <-s.queue:
					batch = append(batch, line)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (s *Store) writeBatch(batch []pendingLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Printf("[HISTORY] failed to begin transaction: %v", err)
		return
	}
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO lines (id, timestamp, content) VALUES (?, ?, ?)")
	if err != nil {
		log.Printf("[HISTORY] failed to prepare statement: %v", err)
		tx.Rollback()
		return
	}
	defer stmt.Close()

	for _, l := range batch {
		if _, err := stmt.Exec(l.idx, l.ts.UnixNano(), l.text); err != nil {
			log.Printf("[HISTORY] failed to insert line %d: %v", l.idx, err)
			tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Printf("[HISTORY] failed to commit batch: %v", err)
	}
}

// IndexLine queues one line for indexing. Empty lines are skipped.
// When the queue is full the line is dropped rather than blocking the
// producer.
func (s *Store) IndexLine(idx int64, ts time.Time, text string) error {
	if text == "" {
		return nil
	}
	select {
	case s.queue <- pendingLine{idx: idx, ts: ts, text: text}:
	default:
		log.Printf("[HISTORY] queue full, dropping line %d", idx)
	}
	return nil
}

// IndexState queues every scrollback line of a snapshot. base is the
// global index of the snapshot's first scrollback line.
func (s *Store) IndexState(st *screen.TerminalState, base int64, ts time.Time) error {
	for i, line := range st.Scrollback {
		if err := s.IndexLine(base+int64(i), ts, line.Text()); err != nil {
			return err
		}
	}
	return nil
}

// DeleteLine removes a line, preventing stale matches after an erase.
func (s *Store) DeleteLine(idx int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM lines WHERE id = ?", idx)
	return err
}

// Search matches query as a literal substring and returns up to limit
// results, newest first. Queries under three bytes fall back to LIKE
// because the trigram tokenizer cannot see them.
func (s *Store) Search(query string, limit int) ([]Result, error) {
	if query == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows *sql.Rows
	var err error
	if len(query) < 3 {
		pattern := "%" + strings.ReplaceAll(strings.ReplaceAll(query, "%", `\%`), "_", `\_`) + "%"
		rows, err = s.db.Query(`
			SELECT id, timestamp, content
			FROM lines
			WHERE content LIKE ? ESCAPE '\'
			ORDER BY timestamp DESC, id DESC
			LIMIT ?
		`, pattern, limit)
	} else {
		quoted := `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
		rows, err = s.db.Query(`
			SELECT l.id, l.timestamp, l.content
			FROM lines_fts
			JOIN lines l ON l.id = lines_fts.rowid
			WHERE lines_fts MATCH ?
			ORDER BY l.timestamp DESC, l.id DESC
			LIMIT ?
		`, quoted, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var tsNano int64
		if err := rows.Scan(&r.LineIdx, &tsNano, &r.Content); err != nil {
			continue
		}
		r.Timestamp = time.Unix(0, tsNano)
		results = append(results, r)
	}
	return results, rows.Err()
}

// Flush blocks until all queued lines are written and searchable.
func (s *Store) Flush() error {
	done := make(chan struct{})
	select {
	case s.flushCh <- done:
		<-done
	case <-s.stopCh:
	}
	return nil
}

// Close flushes pending writes and closes the database.
func (s *Store) Close() error {
	close(s.stopCh)
	<-s.doneCh
	return s.db.Close()
}
