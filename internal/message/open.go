package message

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedScheme = errors.New("unsupported store scheme")

// Options — где лежат сообщения внутри выбранного бэкенда.
type Options struct {
	Database   string // база Mongo
	Collection string // коллекция Mongo, таблица Postgres или префикс ключей Redis
}

// Open выбирает бэкенд по схеме строки подключения.
func Open(ctx context.Context, uri string, opts Options) (Store, error) {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, uri)
	}

	var (
		store Store
		err   error
	)
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		store, err = NewMongoStore(ctx, uri, opts.Database, opts.Collection)
	case "postgres", "postgresql":
		store, err = NewPostgresStore(ctx, uri, opts.Collection)
	case "redis", "rediss":
		store, err = NewRedisStore(ctx, uri, opts.Collection)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
