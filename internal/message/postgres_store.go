package message

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresStore хранит журнал в одной таблице.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgresStore открывает dsn, проверяет соединение и создаёт таблицу при необходимости.
func NewPostgresStore(ctx context.Context, dsn, table string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := runMigrations(ctx, db, pq.QuoteIdentifier(table)); err != nil {
		db.Close()
		return nil, fmt.Errorf("create %s table: %w", table, err)
	}
	return NewPostgresStoreWithDB(db, table), nil
}

func NewPostgresStoreWithDB(db *sql.DB, table string) *PostgresStore {
	return &PostgresStore{db: db, table: pq.QuoteIdentifier(table)}
}

func (s *PostgresStore) Insert(ctx context.Context, msg *Message) error {
	stamp(msg)
	id := uuid.NewString()

	query := fmt.Sprintf(`INSERT INTO %s (id, user_id, username, message, from_admin, created_at) VALUES ($1, $2, $3, $4, $5, $6)`, s.table)
	if _, err := s.db.ExecContext(ctx, query, id, msg.UserID, msg.Username, msg.Message, msg.FromAdmin, msg.Timestamp); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	msg.ID = id
	return nil
}

func (s *PostgresStore) History(ctx context.Context, userID string) ([]Message, error) {
	query := fmt.Sprintf(`SELECT id, username, user_id, message, from_admin, created_at FROM %s WHERE user_id = $1 ORDER BY created_at ASC`, s.table)
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	out := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Username, &m.UserID, &m.Message, &m.FromAdmin, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Timestamp = m.Timestamp.UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Close(context.Context) error {
	return s.db.Close()
}
