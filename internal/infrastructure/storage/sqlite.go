package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/ports"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLite keeps levels in a single table of a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and migrates it.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*SQLite, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if path == ":memory:" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// NewSQLiteFromDB wraps an already migrated connection.
func NewSQLiteFromDB(db *sql.DB) *SQLite { return &SQLite{db: db} }

// Migrate runs all pending schema migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLite) Save(ctx context.Context, lv *domain.Level) error {
	if lv == nil || lv.ID == "" {
		return errMissingID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO levels (id, name, author, notes, grid, created_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, author = excluded.author,
		 notes = excluded.notes, grid = excluded.grid`,
		lv.ID, lv.Name, lv.Author, lv.Notes, strings.Join(lv.Rows, "\n"), lv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save level: %w", err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Level, error) {
	var lv domain.Level
	var rows string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, author, notes, grid, created_at FROM levels WHERE id = ?`, id,
	).Scan(&lv.ID, &lv.Name, &lv.Author, &lv.Notes, &rows, &lv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	lv.Rows = strings.Split(rows, "\n")
	return &lv, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.LevelMeta, error) {
	rs, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM levels ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer func() { _ = rs.Close() }()

	var out []domain.LevelMeta
	for rs.Next() {
		var m domain.LevelMeta
		if err := rs.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rs.Err()
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM levels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete level: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}
