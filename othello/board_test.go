package othello

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestNewBoardStart(t *testing.T) {
	for _, size := range []int{4, 6, 8, 10, 12, 16} {
		b := NewBoard(size)
		require.Equal(t, size, b.Size())
		require.Equal(t, 2, b.Count(Black), "size %d", size)
		require.Equal(t, 2, b.Count(White), "size %d", size)
		require.Equal(t, size*size-4, b.Count(Empty), "size %d", size)

		c := size / 2
		require.Equal(t, White, b.Get(c-1, c-1))
		require.Equal(t, Black, b.Get(c, c-1))
		require.Equal(t, Black, b.Get(c-1, c))
		require.Equal(t, White, b.Get(c, c))
	}
}

func TestNewBoardInvalidSize(t *testing.T) {
	for _, size := range []int{-2, 0, 2, 3, 7, 9} {
		require.Panics(t, func() { NewBoard(size) }, "size %d", size)
		require.False(t, ValidSize(size))
	}
	require.True(t, ValidSize(8))
}

func TestBoard_OpeningMoves(t *testing.T) {
	b := NewBoard(8)

	require.Equal(t, []Pos{{3, 2}, {2, 3}, {5, 4}, {4, 5}}, b.LegalMoves(Black))
	require.Equal(t, []Pos{{4, 2}, {5, 3}, {2, 4}, {3, 5}}, b.LegalMoves(White))
}

func TestBoard_LegalMovesIsPure(t *testing.T) {
	b := mustParse(t,
		"......",
		".XO...",
		"..XO..",
		"..OX..",
		"...O..",
		"......",
	)
	before := b.Clone()

	first := b.LegalMoves(White)
	second := b.LegalMoves(White)
	require.NotEmpty(t, first)
	require.Equal(t, first, second)
	require.True(t, b.Equal(before))

	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		require.True(t, prev.Y < cur.Y || (prev.Y == cur.Y && prev.X < cur.X), "%v before %v", prev, cur)
	}
}

func TestBoard_IsLegalOccupied(t *testing.T) {
	b := NewBoard(8)
	b.ApplyMove(2, 3, Black)
	b.ApplyMove(2, 2, White)

	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if b.Get(x, y) == Empty {
				continue
			}
			require.False(t, b.IsLegal(x, y, Black), "(%d, %d)", x, y)
			require.False(t, b.IsLegal(x, y, White), "(%d, %d)", x, y)
		}
	}
}

func TestBoard_IsLegalNeedsOpposingRun(t *testing.T) {
	// Own disk adjacent, nothing to capture.
	b := mustParse(t,
		"XX..",
		"....",
		"....",
		"....",
	)
	require.False(t, b.IsLegal(2, 0, Black))

	// Opposing run that runs off the edge.
	b = mustParse(t,
		"..OO",
		"....",
		"....",
		"....",
	)
	require.False(t, b.IsLegal(1, 0, Black))

	// Opposing run that ends on an empty cell before a black disk.
	b = mustParse(t,
		".O.X",
		"....",
		"....",
		"....",
	)
	require.False(t, b.IsLegal(0, 0, Black))

	b = mustParse(t,
		".OOX",
		"....",
		"....",
		"....",
	)
	require.True(t, b.IsLegal(0, 0, Black))
	require.False(t, b.IsLegal(0, 0, White))
}

func TestBoard_ApplyMoveOpening(t *testing.T) {
	b := NewBoard(8)

	flipped := b.ApplyMove(2, 3, Black)

	require.Equal(t, []Pos{{3, 3}}, flipped)
	require.Equal(t, Black, b.Get(2, 3))
	require.Equal(t, Black, b.Get(3, 3))
	require.Equal(t, 4, b.Count(Black))
	require.Equal(t, 1, b.Count(White))
}

func TestBoard_ApplyMoveAllDirections(t *testing.T) {
	b := mustParse(t,
		"X.X.X.",
		".OOO..",
		"XO.OX.",
		".OOO..",
		"X.X.X.",
		"......",
	)

	flipped := b.ApplyMove(2, 2, Black)

	require.Equal(t, []Pos{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {3, 2},
		{1, 3}, {2, 3}, {3, 3},
	}, flipped)
	require.Equal(t, 17, b.Count(Black))
	require.Equal(t, 0, b.Count(White))
}

func TestBoard_ApplyMoveLeavesOpenDirections(t *testing.T) {
	b := mustParse(t,
		"XO.O",
		"..O.",
		"....",
		"..X.",
	)

	flipped := b.ApplyMove(2, 0, Black)

	require.Equal(t, []Pos{{1, 0}}, flipped)
	want := mustParse(t,
		"XXXO",
		"..O.",
		"....",
		"..X.",
	)
	require.True(t, b.Equal(want), "got\n%s", b)
}

func TestBoard_ApplyMoveStopsAtFirstAnchor(t *testing.T) {
	b := mustParse(t,
		".OXOOX",
		"......",
		"......",
		"......",
		"......",
		"......",
	)

	flipped := b.ApplyMove(0, 0, Black)

	require.Equal(t, []Pos{{1, 0}}, flipped)
	require.Equal(t, White, b.Get(3, 0))
	require.Equal(t, White, b.Get(4, 0))
}

func TestBoard_ApplyMoveIllegalPanics(t *testing.T) {
	b := NewBoard(8)
	require.Panics(t, func() { b.ApplyMove(0, 0, Black) })
	require.Panics(t, func() { b.ApplyMove(3, 3, Black) })
	require.Panics(t, func() { b.ApplyMove(2, 3, Empty) })
	require.True(t, b.Equal(NewBoard(8)))
}

func TestBoard_OutOfRangePanics(t *testing.T) {
	b := NewBoard(8)
	require.Panics(t, func() { b.Get(-1, 0) })
	require.Panics(t, func() { b.Get(0, 8) })
	require.Panics(t, func() { b.IsLegal(8, 8, Black) })
}

func TestBoard_RandomPlayFlipsOnlyCapturedRuns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range []int{4, 6, 8, 10, 12} {
		for game := 0; game < 20; game++ {
			b := NewBoard(size)
			side := Black
			for {
				moves := b.LegalMoves(side)
				if len(moves) == 0 {
					side = side.Opponent()
					moves = b.LegalMoves(side)
					if len(moves) == 0 {
						break
					}
				}
				move := moves[rng.Intn(len(moves))]
				before := b.Clone()
				occupied := size*size - before.Count(Empty)

				flipped := b.ApplyMove(move.X, move.Y, side)

				require.NotEmpty(t, flipped)
				require.Equal(t, side, b.Get(move.X, move.Y))
				require.Equal(t, occupied+1, size*size-b.Count(Empty))
				require.Equal(t, before.Count(side)+1+len(flipped), b.Count(side))
				for _, p := range flipped {
					require.Equal(t, side.Opponent(), before.Get(p.X, p.Y))
					require.Equal(t, side, b.Get(p.X, p.Y))
				}
				side = side.Opponent()
			}
		}
	}
}

func TestBoard_ResetAfterMoves(t *testing.T) {
	b := NewBoard(10)
	side := Black
	for i := 0; i < 30; i++ {
		moves := b.LegalMoves(side)
		if len(moves) == 0 {
			break
		}
		b.ApplyMove(moves[0].X, moves[0].Y, side)
		side = side.Opponent()
	}
	require.False(t, b.Equal(NewBoard(10)))

	b.Reset()

	require.True(t, b.Equal(NewBoard(10)))
	require.Equal(t, 2, b.Count(Black))
	require.Equal(t, 2, b.Count(White))
}

func TestBoard_Clone(t *testing.T) {
	b := NewBoard(8)
	clone := b.Clone()
	clone.ApplyMove(2, 3, Black)

	require.Equal(t, Empty, b.Get(2, 3))
	require.Equal(t, Black, clone.Get(2, 3))
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(
		"X O . .",
		"b w - .",
		"....",
		"....",
	)
	require.NoError(t, err)
	require.Equal(t, Black, b.Get(0, 0))
	require.Equal(t, White, b.Get(1, 0))
	require.Equal(t, Black, b.Get(0, 1))
	require.Equal(t, White, b.Get(1, 1))
	require.Equal(t, Empty, b.Get(2, 1))

	tests := []struct {
		name string
		rows []string
	}{
		{"too small", []string{"..", ".."}},
		{"odd", []string{"...", "...", "..."}},
		{"ragged", []string{"....", "...", "....", "...."}},
		{"bad rune", []string{"....", "..?.", "....", "...."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.rows...)
			require.Error(t, err)
		})
	}
}

func TestBoard_String(t *testing.T) {
	b := NewBoard(8)
	b.ApplyMove(2, 3, Black)

	s := b.String()
	require.Contains(t, s, "a b c d e f g h")
	require.Contains(t, s, " 4  . . X X X . . .")
}

func TestDisk_Opponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Panics(t, func() { Empty.Opponent() })
}
