package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"termflip/config"
	"termflip/othello"
)

func writePosition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "position.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPosition(t *testing.T) {
	path := writePosition(t, `# corner fight
X O . .

. . . .
. . . .
. . . .
`)

	board, err := loadPosition(path)
	require.NoError(t, err)
	require.Equal(t, 4, board.Size())
	require.Equal(t, othello.Black, board.Get(0, 0))
	require.Equal(t, othello.White, board.Get(1, 0))
	require.Equal(t, 1, board.Count(othello.Black))
	require.Equal(t, 1, board.Count(othello.White))
}

func TestLoadPositionErrors(t *testing.T) {
	_, err := loadPosition(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	_, err = loadPosition(writePosition(t, "XO.\n...\n...\n"))
	require.Error(t, err, "odd sizes are rejected")

	_, err = loadPosition(writePosition(t, "XO..\n....\n..?.\n....\n"))
	require.Error(t, err, "unknown cells are rejected")
}

func TestBuildGameConfigFromFlags(t *testing.T) {
	c := config.DefaultConfig
	cfg = &c

	start, err := othello.ParseBoard("XO..", "....", "....", "....")
	require.NoError(t, err)

	gameCfg := buildGameConfigFromFlags(start)
	require.Equal(t, 4, gameCfg.BoardSize)
	require.Same(t, start, gameCfg.Start)
	require.NoError(t, gameCfg.Validate())

	gameCfg = buildGameConfigFromFlags(nil)
	require.Equal(t, c.Game.DefaultBoardSize, gameCfg.BoardSize)
	require.Nil(t, gameCfg.Start)
}
