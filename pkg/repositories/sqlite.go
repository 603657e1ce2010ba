package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/getawaygame/getaway/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

// defaultProfile keys the single-player snapshot row.
const defaultProfile = "default"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	profile TEXT PRIMARY KEY,
	timestamp INTEGER NOT NULL,
	x REAL NOT NULL,
	y REAL NOT NULL,
	health INTEGER NOT NULL,
	money INTEGER NOT NULL
);
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) Save(ctx context.Context, snapshot *models.SaveSnapshot) error {
	q := `
	INSERT OR REPLACE INTO snapshots (profile, timestamp, x, y, health, money)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, defaultProfile, time.Now().UnixMilli(),
		snapshot.X, snapshot.Y, snapshot.Health, snapshot.Money)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.SaveSnapshot, error) {
	q := `
	SELECT x, y, health, money FROM snapshots WHERE profile = ?;
	`
	snapshot := &models.SaveSnapshot{}
	if err := r.db.QueryRowContext(ctx, q, defaultProfile).
		Scan(&snapshot.X, &snapshot.Y, &snapshot.Health, &snapshot.Money); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan snapshot: %v", err)
	}

	return snapshot, nil
}
