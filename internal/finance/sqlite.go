package finance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"siasistenApi/internal/siasisten"
)

const schema = `
CREATE TABLE IF NOT EXISTS finance_cache (
    username    TEXT NOT NULL,
    year        INTEGER NOT NULL,
    month       INTEGER NOT NULL,
    row_no      INTEGER NOT NULL,
    npm         TEXT NOT NULL,
    name        TEXT NOT NULL,
    month_label TEXT NOT NULL,
    course      TEXT NOT NULL,
    hours       TEXT NOT NULL,
    rate        TEXT NOT NULL,
    amount      TEXT NOT NULL,
    status      TEXT NOT NULL,
    fetched_at  TIMESTAMP NOT NULL,
    PRIMARY KEY (username, year, month, row_no)
);
`

// SQLiteStore keeps the cache in a single flat table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the cache database at path. ":memory:" works
// for tests.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection: ":memory:" databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create finance_cache: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key Key) ([]siasisten.FinanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT npm, name, month_label, course, hours, rate, amount, status
		FROM finance_cache
		WHERE username = ? AND year = ? AND month = ?
		ORDER BY row_no`,
		key.Username, key.Year, key.Month,
	)
	if err != nil {
		return nil, cacheError("get", key, err)
	}
	defer rows.Close()

	var out []siasisten.FinanceRecord
	for rows.Next() {
		var r siasisten.FinanceRecord
		if err := rows.Scan(&r.NPM, &r.Name, &r.Month, &r.Course, &r.Hours, &r.Rate, &r.Amount, &r.Status); err != nil {
			return nil, cacheError("get", key, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, cacheError("get", key, err)
	}
	return out, nil
}

func (s *SQLiteStore) Replace(ctx context.Context, key Key, records []siasisten.FinanceRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return cacheError("replace", key, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM finance_cache WHERE username = ? AND year = ? AND month = ?`,
		key.Username, key.Year, key.Month,
	); err != nil {
		return cacheError("replace", key, err)
	}

	now := time.Now().UTC()
	for i, r := range records {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO finance_cache
				(username, year, month, row_no, npm, name, month_label, course, hours, rate, amount, status, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			key.Username, key.Year, key.Month, i,
			r.NPM, r.Name, r.Month, r.Course, r.Hours, r.Rate, r.Amount, r.Status, now,
		); err != nil {
			return cacheError("replace", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return cacheError("replace", key, err)
	}
	return nil
}
