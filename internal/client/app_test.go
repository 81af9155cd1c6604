package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateSalt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "salt.bin")

	salt, err := loadOrCreateSalt(path)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltSize)

	// повторное чтение возвращает тот же salt
	again, err := loadOrCreateSalt(path)
	require.NoError(t, err)
	assert.Equal(t, salt, again)
}

func TestLoadOrCreateSalt_BadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salt.bin")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := loadOrCreateSalt(path)
	assert.Error(t, err)
}

func TestNewApp_NilConfig(t *testing.T) {
	_, err := NewApp(nil, nil)
	assert.Error(t, err)
}
