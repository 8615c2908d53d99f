package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses header and rows", func(t *testing.T) {
		path := writeCSV(t, "game_title,year\nStreet Fighter II,1991\nStardew Valley,2016\n")

		tbl, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 2, tbl.Len())
		assert.Equal(t, []string{"game_title", "year"}, tbl.Header())

		titles, err := tbl.Column("game_title")
		require.NoError(t, err)
		assert.Equal(t, []string{"Street Fighter II", "Stardew Valley"}, titles)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeCSV(t, "")
		_, err := Load(path)
		assert.ErrorContains(t, err, "no header row")
	})

	t.Run("ragged rows", func(t *testing.T) {
		path := writeCSV(t, "game_title,year\nStreet Fighter II\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestColumn_Missing(t *testing.T) {
	path := writeCSV(t, "title\nDoom\n")
	tbl, err := Load(path)
	require.NoError(t, err)

	_, err = tbl.Column("game_title")
	assert.ErrorContains(t, err, `column "game_title" not found`)
}

func TestAppendColumns(t *testing.T) {
	load := func(t *testing.T) *Table {
		tbl, err := Load(writeCSV(t, "game_title\nDoom\nMyst\n"))
		require.NoError(t, err)
		return tbl
	}

	t.Run("merges matching columns", func(t *testing.T) {
		tbl := load(t)
		err := tbl.AppendColumns(
			[]string{"genre", "player_mode"},
			[][]string{{"Shooter", "Puzzle"}, {"Both", "Singleplayer"}},
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"game_title", "genre", "player_mode"}, tbl.Header())
		genres, err := tbl.Column("genre")
		require.NoError(t, err)
		assert.Equal(t, []string{"Shooter", "Puzzle"}, genres)
	})

	t.Run("length mismatch leaves table unmodified", func(t *testing.T) {
		tbl := load(t)
		err := tbl.AppendColumns(
			[]string{"genre", "player_mode"},
			[][]string{{"Shooter", "Puzzle"}, {"Both"}},
		)
		require.Error(t, err)
		assert.ErrorContains(t, err, `column "player_mode" has 1 values for 2 rows`)

		// No partial merge
		assert.Equal(t, []string{"game_title"}, tbl.Header())
		assert.Equal(t, 2, tbl.Len())
	})

	t.Run("name/column count mismatch", func(t *testing.T) {
		tbl := load(t)
		err := tbl.AppendColumns([]string{"genre"}, [][]string{{"a", "b"}, {"c", "d"}})
		assert.Error(t, err)
	})
}

func TestWrite_RoundTrip(t *testing.T) {
	tbl, err := Load(writeCSV(t, "game_title,publisher\nDoom,id Software\n"))
	require.NoError(t, err)
	require.NoError(t, tbl.AppendColumns([]string{"genre"}, [][]string{{"Shooter"}}))

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, tbl.Write(out))

	reloaded, err := Load(out)
	require.NoError(t, err)

	// Original columns preserved, new column appended, no index column
	assert.Equal(t, []string{"game_title", "publisher", "genre"}, reloaded.Header())
	assert.Equal(t, 1, reloaded.Len())

	publishers, err := reloaded.Column("publisher")
	require.NoError(t, err)
	assert.Equal(t, []string{"id Software"}, publishers)
}

func TestPreview(t *testing.T) {
	tbl, err := Load(writeCSV(t, "game_title\nDoom\nMyst\nQuake\n"))
	require.NoError(t, err)

	assert.Equal(t, "game_title\nDoom\nMyst", tbl.Preview(2))
	// n larger than the table is clamped
	assert.Equal(t, "game_title\nDoom\nMyst\nQuake", tbl.Preview(10))
	// negative n shows the header only
	assert.Equal(t, "game_title", tbl.Preview(-1))
	assert.Equal(t, "game_title", tbl.Preview(0))
}
