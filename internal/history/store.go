// Package history persists completed calculations to SQLite so past
// runs can be listed and replayed. Inputs and results are stored as
// opaque JSON blobs; the store never interprets them.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by Get when no record carries the given ID.
var ErrNotFound = errors.New("calculation not found")

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id          TEXT PRIMARY KEY,
	created_at  TIMESTAMP NOT NULL,
	label       TEXT NOT NULL DEFAULT '',
	inputs_json TEXT NOT NULL,
	result_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at DESC);
`

// Record is one saved calculation.
type Record struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Label     string          `json:"label"`
	Inputs    json.RawMessage `json:"inputs"`
	Result    json.RawMessage `json:"result"`
}

// Store is a SQLite-backed calculation history.
type Store struct {
	db *sql.DB
}

// Open creates (or opens) the history database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a calculation and returns it with its generated ID and
// timestamp filled in.
func (s *Store) Save(ctx context.Context, label string, inputs, result json.RawMessage) (Record, error) {
	rec := Record{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Label:     label,
		Inputs:    inputs,
		Result:    result,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calculations (id, created_at, label, inputs_json, result_json) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, rec.Label, string(rec.Inputs), string(rec.Result),
	)
	if err != nil {
		return Record{}, fmt.Errorf("save calculation: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. A non-positive limit
// defaults to 50.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, label, inputs_json, result_json FROM calculations ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return records, nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, label, inputs_json, result_json FROM calculations WHERE id = ?`,
		id,
	)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var inputs, result string
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.Label, &inputs, &result); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan calculation: %w", err)
	}
	rec.Inputs = json.RawMessage(inputs)
	rec.Result = json.RawMessage(result)
	return rec, nil
}
