package message

import (
	"context"
	"database/sql"
	"fmt"
)

// runMigrations создаёт таблицу сообщений, если её нет
func runMigrations(ctx context.Context, db *sql.DB, table string) error {
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		username TEXT NOT NULL,
		message TEXT NOT NULL,
		from_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`, table)
	_, err := db.ExecContext(ctx, schema)
	return err
}
