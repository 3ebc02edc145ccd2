package utils

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/matjam/scalableview/internal/types"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	t.Setenv("HOME", "/home/someone")
	require.Equal(t, "", CanonicalPath(""))
	require.Equal(t, "/home/someone", CanonicalPath("~"))
	require.Equal(t, "/home/someone/pics/a.png", CanonicalPath("~/pics/a.png"))
	require.Equal(t, "rel/~/a.png", CanonicalPath("rel/~/a.png"))
}

func TestParseSize(t *testing.T) {
	got, err := ParseSize("400x800")
	require.NoError(t, err)
	require.Equal(t, types.Size{W: 400, H: 800}, got)

	got, err = ParseSize("1920X1080")
	require.NoError(t, err)
	require.Equal(t, types.Size{W: 1920, H: 1080}, got)

	for _, bad := range []string{"", "400", "x800", "400x", "0x10", "-5x10", "axb"} {
		_, err := ParseSize(bad)
		require.Error(t, err, bad)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, image.NewRGBA(image.Rect(0, 0, 3, 2))))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Width)
	require.Equal(t, 2, cfg.Height)
}
