package kvstore

import (
	"context"
	"errors"
)

// Driver identifica o backend concreto do key-value store
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverRedis    Driver = "redis"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Store é o armazenamento persistente string → string usado pelo núcleo.
// Uma chave ausente não é erro: Get retorna ok=false.
// Qualquer implementação precisa garantir read-your-writes para um único chamador.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	MultiRemove(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Driver() Driver
}

// ErrCorrupt indica um valor persistido que não pôde ser decodificado
var ErrCorrupt = errors.New("kvstore: corrupt stored value")
