package config

import (
	"errors"
	"log"
	"os"
)

const (
	defaultPort       = "5000"
	defaultDatabase   = "chat"
	defaultCollection = "messages"
)

// ErrStoreURIMissing — не задан ни STORE_URI, ни MONGO_URI.
var ErrStoreURIMissing = errors.New("STORE_URI (or MONGO_URI) is not set")

// Config хранит все переменные окружения для проекта.
type Config struct {
	StoreURI   string // mongodb://, postgres:// или redis://
	Port       string
	Database   string // имя базы Mongo
	Collection string // коллекция Mongo, таблица Postgres или префикс ключей Redis
}

// Addr возвращает адрес для http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// FromEnv собирает конфигурацию через getenv (os.Getenv или подмена в тестах).
func FromEnv(getenv func(string) string) (*Config, error) {
	uri := getenv("STORE_URI")
	if uri == "" {
		uri = getenv("MONGO_URI")
	}
	if uri == "" {
		return nil, ErrStoreURIMissing
	}

	return &Config{
		StoreURI:   uri,
		Port:       valueOr(getenv("PORT"), defaultPort),
		Database:   valueOr(getenv("STORE_DATABASE"), defaultDatabase),
		Collection: valueOr(getenv("STORE_COLLECTION"), defaultCollection),
	}, nil
}

// Load загружает конфигурацию из .env или переменных окружения.
func Load() *Config {
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
