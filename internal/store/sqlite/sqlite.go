package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// schema is applied on every startup. CREATE TABLE IF NOT EXISTS keeps
// existing rows intact.
const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	message TEXT NOT NULL
);
`

// SQLiteLog implements store.MessageLog for SQLite.
type SQLiteLog struct {
	db *sql.DB
}

// New creates a new SQLite message log and ensures the schema exists.
// dbPath is the path to the SQLite database file.
func New(dbPath string) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Set connection pool limits
	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteLog{db: db}, nil
}

// NewWithSetup creates a new SQLite message log and runs a setup function
// before the schema is applied. Useful for tests to seed rows or to poke at
// the raw connection.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Set connection pool limits before setup
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if setup != nil {
		if err := setup(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteLog{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteLog) Close() error {
	return s.db.Close()
}

// AppendMessage durably stores text as a new record and returns its id.
// AUTOINCREMENT guarantees the id is strictly greater than every id ever
// assigned, even across deletes, and the insert is the atomic unit for
// "assign id and persist".
func (s *SQLiteLog) AppendMessage(ctx context.Context, text string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `INSERT INTO messages (message) VALUES (?)`, text)
	if err != nil {
		return 0, fmt.Errorf("insert message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}

	return id, nil
}

// ListHistory returns every stored message text, most recent first.
func (s *SQLiteLog) ListHistory(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT message FROM messages ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	history := []string{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		history = append(history, text)
	}

	return history, rows.Err()
}
