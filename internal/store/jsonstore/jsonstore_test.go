package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingFile(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "store.json"), 0)

	v, ok, err := s.Get("recipeFavorites")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestSetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	s := Open(path, 0)

	require.NoError(t, s.Set("recipeFavorites", json.RawMessage(`["52771","52772"]`)))
	require.NoError(t, s.Set("other", json.RawMessage(`true`)))

	v, ok, err := s.Get("recipeFavorites")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["52771","52772"]`, string(v))

	// A second handle on the same file sees the same data.
	v, ok, err = Open(path, 0).Get("other")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `true`, string(v))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestSetRejectsInvalidJSON(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "store.json"), 0)
	assert.Error(t, s.Set("k", json.RawMessage(`{nope`)))
}

func TestDelete(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "store.json"), 0)
	require.NoError(t, s.Set("k", json.RawMessage(`1`)))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("never-set"))

	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	s := Open(path, 0)

	_, _, err := s.Get("k")
	assert.Error(t, err, "reads surface corruption")

	require.NoError(t, s.Set("k", json.RawMessage(`"v"`)), "writes replace corrupt content")
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `"v"`, string(v))
}
