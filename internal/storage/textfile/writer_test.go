package textfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phyrexian-cardlist/internal/storage"
)

var _ storage.Sink = (*Writer)(nil)

func TestWriterTruncatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Downloads", "mtg_cards_list.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("старый прогон\n"), 0o644))

	w, err := Create(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.WriteBlock("日本語名：A\n"))
	require.NoError(t, w.WriteBlock("日本語名：B\n"))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "日本語名：A\n日本語名：B\n", string(data))
}

func TestCreateMakesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
