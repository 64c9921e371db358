package blob

import (
	"context"
	"errors"
)

type Driver string

const (
	DriverFS Driver = "fs"
	DriverS3 Driver = "s3"
)

var ErrNotFound = errors.New("blob not found")

// Store guarda arquivos binários (foto do perfil) por chave
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Driver() Driver
}
