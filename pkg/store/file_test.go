package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kass/go-iso6709/pkg/coord"
	"github.com/kass/go-iso6709/pkg/iso6709"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "route.iso"))

	input := coord.List{
		coord.New(40.35, -74),
		coord.New(1.5, 1.5),
		coord.New(-2.4, 1.5),
	}
	require.NoError(t, s.Save(input))

	output, err := s.Load()
	require.NoError(t, err)
	require.Len(t, output, len(input))
	for i := range input {
		wantLat, wantLon := input[i].Degrees()
		gotLat, gotLon := output[i].Degrees()
		assert.InDelta(t, wantLat, gotLat, 1e-3)
		assert.InDelta(t, wantLon, gotLon, 1e-3)
	}
}

func TestFileStoreEmptyList(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "empty.iso"))
	require.NoError(t, s.Save(coord.List{}))

	output, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.iso"))
	_, err := s.Load()
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileStoreCorruptPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.iso")
	require.NoError(t, os.WriteFile(path, []byte("+402100.0-0740000.0/garbage/"), 0o644))

	_, err := NewFileStore(path).Load()
	assert.True(t, errors.Is(err, iso6709.ErrTooShort))
}
