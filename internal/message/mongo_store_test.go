package message_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-portfolio/support-chat/internal/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert assigns id and timestamp", func(mt *mtest.T) {
		store := message.NewMongoStoreWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		msg := &message.Message{UserID: "u1", Username: "alice", Message: "hi"}
		err := store.Insert(context.Background(), msg)

		require.NoError(mt, err)
		assert.Len(mt, msg.ID, 24, "hex object id")
		assert.False(mt, msg.Timestamp.IsZero())
	})

	mt.Run("insert write error", func(mt *mtest.T) {
		store := message.NewMongoStoreWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		msg := &message.Message{UserID: "u1", Message: "hi"}
		err := store.Insert(context.Background(), msg)

		assert.Error(mt, err)
		assert.Empty(mt, msg.ID)
	})

	mt.Run("history decodes documents in order", func(mt *mtest.T) {
		store := message.NewMongoStoreWithCollection(mt.Coll)
		t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "username", Value: "alice"},
				{Key: "userId", Value: "u1"},
				{Key: "message", Value: "hello"},
				{Key: "fromAdmin", Value: false},
				{Key: "timestamp", Value: t1},
			},
			bson.D{
				{Key: "_id", Value: second},
				{Key: "username", Value: "ops"},
				{Key: "userId", Value: "u1"},
				{Key: "message", Value: "hi alice"},
				{Key: "fromAdmin", Value: true},
				{Key: "timestamp", Value: t1.Add(time.Second)},
			},
		))

		msgs, err := store.History(context.Background(), "u1")

		require.NoError(mt, err)
		require.Len(mt, msgs, 2)
		assert.Equal(mt, first.Hex(), msgs[0].ID)
		assert.Equal(mt, "hello", msgs[0].Message)
		assert.True(mt, msgs[0].Timestamp.Equal(t1))
		assert.True(mt, msgs[1].FromAdmin)
	})

	mt.Run("history empty", func(mt *mtest.T) {
		store := message.NewMongoStoreWithCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		msgs, err := store.History(context.Background(), "nobody")

		require.NoError(mt, err)
		assert.NotNil(mt, msgs)
		assert.Empty(mt, msgs)
	})

	mt.Run("history command error", func(mt *mtest.T) {
		store := message.NewMongoStoreWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad query",
		}))

		_, err := store.History(context.Background(), "u1")
		assert.ErrorContains(mt, err, "bad query")
	})
}
