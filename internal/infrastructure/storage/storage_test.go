package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-core/internal/domain/repository"
	"github.com/jhoicas/storefront-core/internal/infrastructure/storage"
)

// Ambas implementaciones deben cumplir el mismo contrato.
func contrato(t *testing.T, s repository.KeyValueStorage) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, found, "clave ausente no es error")

	require.NoError(t, s.Set(ctx, "user", `{"id":"1"}`))
	v, found, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":"1"}`, v)

	require.NoError(t, s.Set(ctx, "user", `{"id":"2"}`))
	v, _, _ = s.Get(ctx, "user")
	assert.Equal(t, `{"id":"2"}`, v, "Set sobrescribe")

	require.NoError(t, s.Remove(ctx, "user"))
	_, found, err = s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, s.Remove(ctx, "user"), "borrar dos veces no es error")
}

func TestMemory_Contrato(t *testing.T) {
	contrato(t, storage.NewMemory())
}

func TestFile_Contrato(t *testing.T) {
	s, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)
	contrato(t, s)
}

func TestFile_SobreviveReapertura(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := storage.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "user", "persistido"))

	s2, err := storage.NewFile(dir)
	require.NoError(t, err)
	v, found, err := s2.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persistido", v)
}

func TestFile_ClaveConCaracteresEspecialesQuedaDentroDelDirectorio(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "../fuera/user", "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "fuera"))
	assert.True(t, os.IsNotExist(err), "no debe escapar del directorio")
}

func TestFile_DirectorioVacio_RetornaError(t *testing.T) {
	_, err := storage.NewFile("")
	assert.Error(t, err)
}

func TestMemory_FailOn(t *testing.T) {
	m := storage.NewMemory()
	boom := errors.New("disco lleno")
	ctx := context.Background()

	m.FailOn("set", boom)
	assert.ErrorIs(t, m.Set(ctx, "k", "v"), boom)
	assert.Equal(t, 0, m.Len())

	m.FailOn("set", nil)
	assert.NoError(t, m.Set(ctx, "k", "v"))
	assert.Equal(t, 1, m.Len())
}

func TestMemory_ContextoCancelado(t *testing.T) {
	m := storage.NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Set(ctx, "k", "v"), context.Canceled)
}
