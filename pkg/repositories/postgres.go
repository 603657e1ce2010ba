package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/getawaygame/getaway/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	profile TEXT PRIMARY KEY,
	timestamp BIGINT NOT NULL,
	x DOUBLE PRECISION NOT NULL,
	y DOUBLE PRECISION NOT NULL,
	health INTEGER NOT NULL,
	money INTEGER NOT NULL
);
`

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and ensures the
// snapshot table exists. The caller is responsible for calling Close()
// on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if _, err := conn.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) Save(ctx context.Context, snapshot *models.SaveSnapshot) error {
	q := `
	INSERT INTO snapshots (profile, timestamp, x, y, health, money)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (profile) DO UPDATE SET timestamp = $2, x = $3, y = $4, health = $5, money = $6;
	`
	_, err := r.conn.Exec(ctx, q, defaultProfile, time.Now().UnixMilli(),
		snapshot.X, snapshot.Y, snapshot.Health, snapshot.Money)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Load(ctx context.Context) (*models.SaveSnapshot, error) {
	q := `
	SELECT x, y, health, money FROM snapshots WHERE profile = $1;
	`
	snapshot := &models.SaveSnapshot{}
	if err := r.conn.QueryRow(ctx, q, defaultProfile).
		Scan(&snapshot.X, &snapshot.Y, &snapshot.Health, &snapshot.Money); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan snapshot: %v", err)
	}

	return snapshot, nil
}
