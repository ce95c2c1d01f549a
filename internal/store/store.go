// Package store persists merged film documents in a local SQLite database,
// one JSON document per film keyed by its seed id. A few columns are kept
// alongside the document so the rating-refresh flow can find films without
// decoding everything.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/steelspace/kinograb/internal/apperrors"
	"github.com/steelspace/kinograb/internal/models"
)

// Store is the film document store.
type Store struct {
	db *sql.DB
}

// Open connects to the database at path, creating the file and the schema
// when missing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	s := &Store{db: db}
	if err := s.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS films (
    csfd_id    INTEGER PRIMARY KEY,
    imdb_id    TEXT NOT NULL DEFAULT '',
    title      TEXT NOT NULL,
    year       TEXT NOT NULL DEFAULT '',
    document   TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_films_imdb_id ON films (imdb_id);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put inserts or replaces the document for a film. The original created_at
// survives an overwrite.
func (s *Store) Put(ctx context.Context, film models.MergedFilm) error {
	document, err := json.Marshal(film)
	if err != nil {
		return fmt.Errorf("marshal film %d: %w", film.CSFDID, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO films (csfd_id, imdb_id, title, year, document, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(csfd_id) DO UPDATE SET
             imdb_id = excluded.imdb_id,
             title = excluded.title,
             year = excluded.year,
             document = excluded.document,
             updated_at = excluded.updated_at`,
		film.CSFDID, film.IMDBID, film.Title, film.Year, string(document), now, now,
	)
	if err != nil {
		return fmt.Errorf("store film %d: %w", film.CSFDID, err)
	}
	return nil
}

// Get loads the stored document for a seed id.
func (s *Store) Get(ctx context.Context, csfdID int64) (*models.MergedFilm, error) {
	var document string
	row := s.db.QueryRowContext(ctx, `SELECT document FROM films WHERE csfd_id = ?`, csfdID)
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewFilmNotFoundError(csfdID)
		}
		return nil, fmt.Errorf("get film %d: %w", csfdID, err)
	}

	var film models.MergedFilm
	if err := json.Unmarshal([]byte(document), &film); err != nil {
		return nil, fmt.Errorf("decode film %d: %w", csfdID, err)
	}
	return &film, nil
}

// List returns every stored document ordered by seed id.
func (s *Store) List(ctx context.Context) ([]models.MergedFilm, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT document FROM films ORDER BY csfd_id`)
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	defer rows.Close()

	var films []models.MergedFilm
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("scan film row: %w", err)
		}
		var film models.MergedFilm
		if err := json.Unmarshal([]byte(document), &film); err != nil {
			return nil, fmt.Errorf("decode film row: %w", err)
		}
		films = append(films, film)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate films: %w", err)
	}
	return films, nil
}

// UpdateRating rewrites the catalog rating fields of a stored document.
// The read and the write share a transaction so two refreshes cannot
// interleave their documents.
func (s *Store) UpdateRating(ctx context.Context, csfdID int64, rating float64, votes int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rating update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var document string
	row := tx.QueryRowContext(ctx, `SELECT document FROM films WHERE csfd_id = ?`, csfdID)
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewFilmNotFoundError(csfdID)
		}
		return fmt.Errorf("get film %d: %w", csfdID, err)
	}

	var film models.MergedFilm
	if err := json.Unmarshal([]byte(document), &film); err != nil {
		return fmt.Errorf("decode film %d: %w", csfdID, err)
	}
	film.IMDBRating = rating
	film.IMDBVotes = votes

	updated, err := json.Marshal(film)
	if err != nil {
		return fmt.Errorf("marshal film %d: %w", csfdID, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(
		ctx,
		`UPDATE films SET document = ?, updated_at = ? WHERE csfd_id = ?`,
		string(updated), now, csfdID,
	); err != nil {
		return fmt.Errorf("update rating for film %d: %w", csfdID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rating update: %w", err)
	}
	return nil
}
