package message_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-portfolio/support-chat/internal/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertSQL  = `INSERT INTO "messages" (id, user_id, username, message, from_admin, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	historySQL = `SELECT id, username, user_id, message, from_admin, created_at FROM "messages" WHERE user_id = $1 ORDER BY created_at ASC`
)

func TestPostgresInsert_AssignsIDAndTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := message.NewPostgresStoreWithDB(db, "messages")

	mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
		WithArgs(sqlmock.AnyArg(), "u1", "alice", "hi", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	msg := &message.Message{UserID: "u1", Username: "alice", Message: "hi"}
	err = store.Insert(context.Background(), msg)

	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := message.NewPostgresStoreWithDB(db, "messages")

	mock.ExpectExec(regexp.QuoteMeta(insertSQL)).WillReturnError(errors.New("connection reset"))

	msg := &message.Message{UserID: "u1", Message: "hi"}
	err = store.Insert(context.Background(), msg)

	assert.ErrorContains(t, err, "connection reset")
	assert.Empty(t, msg.ID, "failed insert must not report an id")
}

func TestPostgresHistory_Ordered(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := message.NewPostgresStoreWithDB(db, "messages")

	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	mock.ExpectQuery(regexp.QuoteMeta(historySQL)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "user_id", "message", "from_admin", "created_at"}).
			AddRow("a", "alice", "u1", "hello", false, t1).
			AddRow("b", "ops", "u1", "hi alice", true, t2))

	msgs, err := store.History(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Message)
	assert.True(t, msgs[1].FromAdmin)
	assert.True(t, msgs[0].Timestamp.Before(msgs[1].Timestamp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresHistory_EmptyIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := message.NewPostgresStoreWithDB(db, "messages")

	mock.ExpectQuery(regexp.QuoteMeta(historySQL)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "user_id", "message", "from_admin", "created_at"}))

	msgs, err := store.History(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestPostgresHistory_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := message.NewPostgresStoreWithDB(db, "messages")

	mock.ExpectQuery(regexp.QuoteMeta(historySQL)).WillReturnError(errors.New("db down"))

	_, err = store.History(context.Background(), "u1")
	assert.ErrorContains(t, err, "db down")
}
