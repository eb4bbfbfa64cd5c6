package activity

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
)

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PgEventLog struct {
	db DB
}

func NewPgEventLog(db DB) *PgEventLog {
	return &PgEventLog{db: db}
}

func (l *PgEventLog) Save(ctx context.Context, event Event) error {
	detail, err := json.Marshal(event.Detail)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO activities (id, type, detail, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = l.db.Exec(ctx, query, event.ID, event.Type, detail, event.CreatedAt)
	return err
}

func (l *PgEventLog) ListRecent(ctx context.Context, limit int) ([]models.Activity, error) {
	query := `
		SELECT id, type, detail, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := l.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		var entry models.Activity
		if err := rows.Scan(&entry.ID, &entry.Type, &entry.Detail, &entry.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
