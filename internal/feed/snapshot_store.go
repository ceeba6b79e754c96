package feed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rs82696/Memeber-qa-Service/internal/model"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no feed snapshot saved")

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS feed_messages (
	seq         INTEGER PRIMARY KEY,
	id          TEXT NOT NULL,
	author_id   TEXT NOT NULL,
	author_name TEXT NOT NULL,
	sent_at     TEXT NOT NULL,
	text        TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS feed_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SnapshotStore persists the last successfully fetched feed in a local SQLite
// file. Message order is kept: seq is the original collection position, and
// Load returns messages in that order.
type SnapshotStore struct {
	db *sql.DB
}

// OpenSnapshotStore opens (or creates) the snapshot database at path and
// ensures the schema exists. WAL journal mode keeps concurrent readers cheap.
func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(snapshotSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init snapshot schema: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Save replaces the stored snapshot with msgs.
func (s *SnapshotStore) Save(ctx context.Context, msgs []model.Message, savedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM feed_messages`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO feed_messages (seq, id, author_id, author_name, sent_at, text) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, m := range msgs {
		if _, err := stmt.ExecContext(ctx, i, m.ID, m.AuthorID, m.AuthorName,
			m.SentAt.UTC().Format(time.RFC3339Nano), m.Text); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO feed_meta (key, value) VALUES ('saved_at', ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		savedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}
	return tx.Commit()
}

// Load returns the stored snapshot and when it was saved, or ErrNoSnapshot.
func (s *SnapshotStore) Load(ctx context.Context) ([]model.Message, time.Time, error) {
	var rawSavedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM feed_meta WHERE key = 'saved_at'`).Scan(&rawSavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, err
	}
	savedAt, err := time.Parse(time.RFC3339Nano, rawSavedAt)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("corrupt saved_at: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, author_id, author_name, sent_at, text FROM feed_messages ORDER BY seq`)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []model.Message
	for rows.Next() {
		var m model.Message
		var rawSentAt string
		if err := rows.Scan(&m.ID, &m.AuthorID, &m.AuthorName, &rawSentAt, &m.Text); err != nil {
			return nil, time.Time{}, err
		}
		if m.SentAt, err = time.Parse(time.RFC3339Nano, rawSentAt); err != nil {
			return nil, time.Time{}, fmt.Errorf("corrupt sent_at for message %s: %w", m.ID, err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}
	return msgs, savedAt, nil
}

// Close releases the underlying database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
