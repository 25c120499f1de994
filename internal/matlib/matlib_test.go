package matlib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary(t *testing.T) {
	lib := Default()

	c, err := lib.Concrete("C25 (Rck25)")
	require.NoError(t, err)
	assert.InDelta(t, 25.0/3.0, c.SigmaAllowable, 1e-9)
	assert.Equal(t, "C25 (Rck25)", c.Name)

	s, err := lib.Steel("FeB32k")
	require.NoError(t, err)
	assert.InDelta(t, 320.0/2.3, s.SigmaAllowable, 1e-9)

	// Historical catalog entries resolve through the grade tables.
	hc, err := lib.Concrete("C280 (storico)")
	require.NoError(t, err)
	assert.True(t, hc.Historical)
	assert.InDelta(t, 2.746, hc.SigmaAllowable, 0.01) // 28 kg/cm²

	hs, err := lib.Steel("Aq50")
	require.NoError(t, err)
	assert.InDelta(t, 21.575, hs.SigmaAllowable, 0.01) // 220 kg/cm²

	// Legacy FeB grades resolve to the tabulated values, not the modern
	// designation of the same name.
	hf, err := lib.Steel("FeB38k (storico)")
	require.NoError(t, err)
	assert.InDelta(t, 78.45, hf.SigmaAllowable, 0.01) // 800 kg/cm²
}

func TestKindMismatch(t *testing.T) {
	lib := Default()

	_, err := lib.Steel("C25 (Rck25)")
	assert.Error(t, err)
	_, err = lib.Concrete("Aq50")
	assert.Error(t, err)
	_, err = lib.Concrete("no-such-material")
	assert.Error(t, err)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "materials.json"))
	require.NoError(t, err)
	assert.Contains(t, lib, "FeB32k")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.json")

	lib := Library{
		"mio_cls":     {Rck: 28},
		"mio_acciaio": {Fyk: 430, Hard: true},
	}
	require.NoError(t, lib.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	// User entries merged over the defaults.
	assert.Contains(t, loaded, "C30 (Rck30)")
	c, err := loaded.Concrete("mio_cls")
	require.NoError(t, err)
	assert.InDelta(t, 28.0/3.0, c.SigmaAllowable, 1e-9)

	s, err := loaded.Steel("mio_acciaio")
	require.NoError(t, err)
	assert.InDelta(t, 430.0/2.5, s.SigmaAllowable, 1e-9)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
