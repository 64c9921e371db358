package blob

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/manicure-agenda/internal/config"
)

func TestFSStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewFSStore(afero.NewMemMapFs())

	require.NoError(t, s.Put(ctx, "profiles/p1.webp", []byte("img"), "image/webp"))

	b, err := s.Get(ctx, "profiles/p1.webp")
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), b)

	require.NoError(t, s.Put(ctx, "profiles/p1.webp", []byte("img2"), "image/webp"))
	b, err = s.Get(ctx, "profiles/p1.webp")
	require.NoError(t, err)
	assert.Equal(t, []byte("img2"), b)

	require.NoError(t, s.Delete(ctx, "profiles/p1.webp"))
	_, err = s.Get(ctx, "profiles/p1.webp")
	assert.ErrorIs(t, err, ErrNotFound)

	// remover de novo não é erro
	assert.NoError(t, s.Delete(ctx, "profiles/p1.webp"))
}

func TestFSStore_RejectsTraversal(t *testing.T) {
	s := NewFSStore(afero.NewMemMapFs())
	assert.Error(t, s.Put(context.Background(), "../etc/passwd", []byte("x"), ""))
	assert.Error(t, s.Put(context.Background(), "", []byte("x"), ""))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{BlobDriver: "ftp"})
	assert.Error(t, err)
}
