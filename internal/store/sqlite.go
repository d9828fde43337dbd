package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"strategy-builder/internal/errors"
	"strategy-builder/internal/models"
)

// SQLiteStore implements StrategyStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based strategy store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Submitted strategy specifications; the document column holds the
	-- full assembled spec as JSON.
	CREATE TABLE IF NOT EXISTS strategies (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		strategy_type TEXT NOT NULL,
		symbol TEXT NOT NULL,
		is_paper INTEGER DEFAULT 0,
		document TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_strategies_user ON strategies(user_id);
	CREATE INDEX IF NOT EXISTS idx_strategies_symbol ON strategies(symbol);
	CREATE INDEX IF NOT EXISTS idx_strategies_created ON strategies(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save stores a strategy record.
func (s *SQLiteStore) Save(ctx context.Context, record *StrategyRecord) error {
	document, err := json.Marshal(record.Spec)
	if err != nil {
		return errors.Wrap(err, "encoding spec document")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO strategies (id, user_id, name, strategy_type, symbol, is_paper, document, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.UserID, record.Name, string(record.StrategyType),
		record.Symbol, boolToInt(record.IsPaperTrading), string(document), record.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(errors.ErrDatabaseError, err.Error())
	}
	return nil
}

// Get retrieves a strategy record by id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*StrategyRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, strategy_type, symbol, is_paper, document, created_at
		FROM strategies WHERE id = ?`, id)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(errors.ErrRecordNotFound, "%q", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabaseError, err.Error())
	}
	return record, nil
}

// List retrieves strategy records matching the filter, newest first.
func (s *SQLiteStore) List(ctx context.Context, filter RecordFilter) ([]StrategyRecord, error) {
	query := `
		SELECT id, user_id, name, strategy_type, symbol, is_paper, document, created_at
		FROM strategies`

	var conditions []string
	var args []any
	if filter.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.StrategyType != "" {
		conditions = append(conditions, "strategy_type = ?")
		args = append(args, string(filter.StrategyType))
	}
	if filter.Symbol != "" {
		conditions = append(conditions, "symbol = ?")
		args = append(args, filter.Symbol)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabaseError, err.Error())
	}
	defer rows.Close()

	var records []StrategyRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabaseError, err.Error())
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// Delete removes a strategy record.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM strategies WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(errors.ErrDatabaseError, err.Error())
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.Wrapf(errors.ErrRecordNotFound, "%q", id)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*StrategyRecord, error) {
	var record StrategyRecord
	var strategyType, document string
	var isPaper int

	err := row.Scan(&record.ID, &record.UserID, &record.Name, &strategyType,
		&record.Symbol, &isPaper, &document, &record.CreatedAt)
	if err != nil {
		return nil, err
	}

	record.StrategyType = models.StrategyType(strategyType)
	record.IsPaperTrading = isPaper != 0
	if err := json.Unmarshal([]byte(document), &record.Spec); err != nil {
		return nil, fmt.Errorf("decoding spec document: %w", err)
	}
	return &record, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
