package message

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// document — форма записи в Mongo, имена полей как в существующей коллекции.
type document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	UserID    string             `bson:"userId"`
	Message   string             `bson:"message"`
	FromAdmin bool               `bson:"fromAdmin"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (d document) toMessage() Message {
	return Message{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		UserID:    d.UserID,
		Message:   d.Message,
		FromAdmin: d.FromAdmin,
		Timestamp: d.Timestamp.UTC(),
	}
}

// MongoStore: один документ на сообщение.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore подключается к uri и проверяет доступность через Ping.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

func NewMongoStoreWithCollection(coll *mongo.Collection) *MongoStore {
	return &MongoStore{client: coll.Database().Client(), coll: coll}
}

func (s *MongoStore) Insert(ctx context.Context, msg *Message) error {
	stamp(msg)
	doc := document{
		ID:        primitive.NewObjectID(),
		Username:  msg.Username,
		UserID:    msg.UserID,
		Message:   msg.Message,
		FromAdmin: msg.FromAdmin,
		Timestamp: msg.Timestamp,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	msg.ID = doc.ID.Hex()
	return nil
}

func (s *MongoStore) History(ctx context.Context, userID string) ([]Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	out := make([]Message, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toMessage())
	}
	return out, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
