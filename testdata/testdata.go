package testdata

import (
	"compress/gzip"
	"embed"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed *.gz
var data embed.FS

func readGzip(t *testing.T, path string) []byte {
	f, err := data.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	r, err := gzip.NewReader(f)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, r.Close())
	})

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}

// WttrJ1 returns a recorded wttr.in j1 document for Paris: three forecast
// days (2025-06-14 to 2025-06-16) of eight hourly slots each, observed at
// 2:13 PM local time.
func WttrJ1(t *testing.T) []byte {
	return readGzip(t, "wttr_j1.json.gz")
}
