package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atomicstack/tmux-emoji-popup/internal/logging/events"
	"github.com/atomicstack/tmux-emoji-popup/internal/tone"

	_ "modernc.org/sqlite"
)

// Disabled is the state path value that turns persistence off.
const Disabled = "none"

const (
	metaToneIndex = "tone_index"
	metaLastGlyph = "last_glyph"
	metaLastName  = "last_name"
)

// Pick is one row of the pick history.
type Pick struct {
	Glyph    string
	Name     string
	PickedAt time.Time
}

// Store persists the session context. A nil *Store is valid and does
// nothing.
type Store struct {
	db   *sql.DB
	path string
}

var now = time.Now

// DefaultPath returns the state file location under $XDG_STATE_HOME, falling
// back to ~/.local/state.
func DefaultPath(getenv func(string) string) string {
	if getenv == nil {
		getenv = os.Getenv
	}
	base := getenv("XDG_STATE_HOME")
	if base == "" {
		home := getenv("HOME")
		if home == "" {
			home = os.TempDir()
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "tmux-emoji-popup", "state.sqlite")
}

// Open opens (creating if needed) the store at path. An empty path or
// Disabled returns a nil store.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" || path == Disabled {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	// modernc.org/sqlite registers as "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	s := &Store{db: db, path: path}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS session_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS picks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			glyph TEXT NOT NULL,
			name TEXT NOT NULL,
			picked_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_picks_picked ON picks(picked_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := s.db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("migrate session store: %w", err)
		}
	}
	return nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the saved context. Missing keys leave their zero values.
func (s *Store) Load(ctx context.Context) (Context, error) {
	var out Context
	if s == nil {
		return out, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT k, v FROM session_meta`)
	if err != nil {
		events.Session.Error("load", err)
		return out, err
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return out, err
		}
		switch k {
		case metaToneIndex:
			n, err := strconv.Atoi(v)
			if err != nil {
				events.Session.Error("load", fmt.Errorf("tone_index %q: %w", v, err))
				continue
			}
			out.ToneIndex = tone.Normalize(n)
		case metaLastGlyph:
			out.LastGlyph = v
		case metaLastName:
			out.LastName = v
		}
	}
	if err := rows.Err(); err != nil {
		return out, err
	}
	events.Session.Load(s.path, int(out.ToneIndex), out.LastGlyph)
	return out, nil
}

// Save writes c in one transaction.
func (s *Store) Save(ctx context.Context, c Context) (err error) {
	if s == nil {
		return nil
	}
	defer func() {
		if err != nil {
			events.Session.Error("save", err)
		}
	}()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	values := map[string]string{
		metaToneIndex: strconv.Itoa(int(tone.Normalize(int(c.ToneIndex)))),
		metaLastGlyph: c.LastGlyph,
		metaLastName:  c.LastName,
	}
	for k, v := range values {
		if _, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO session_meta(k, v) VALUES(?, ?)`, k, v); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	events.Session.Save(s.path, int(c.ToneIndex), c.LastGlyph)
	return nil
}

// RecordPick appends a confirmed selection to the history.
func (s *Store) RecordPick(ctx context.Context, glyph, name string) error {
	if s == nil {
		return nil
	}
	if glyph == "" {
		return errors.New("record pick: empty glyph")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO picks(glyph, name, picked_at_unixms) VALUES(?, ?, ?)`,
		glyph, name, now().UnixMilli())
	if err != nil {
		events.Session.Error("record", err)
	}
	return err
}

// Recent returns up to limit picks, newest first. limit <= 0 means all.
func (s *Store) Recent(ctx context.Context, limit int) ([]Pick, error) {
	if s == nil {
		return nil, nil
	}
	query := `SELECT glyph, name, picked_at_unixms FROM picks ORDER BY picked_at_unixms DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Pick
	for rows.Next() {
		var p Pick
		var ms int64
		if err := rows.Scan(&p.Glyph, &p.Name, &ms); err != nil {
			return nil, err
		}
		p.PickedAt = time.UnixMilli(ms)
		out = append(out, p)
	}
	return out, rows.Err()
}
