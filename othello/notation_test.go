package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosName(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "a1"},
		{2, 3, "c4"},
		{7, 7, "h8"},
		{9, 9, "j10"},
		{11, 0, "l1"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, PosName(tt.x, tt.y))
		require.Equal(t, tt.want, Pos{X: tt.x, Y: tt.y}.String())
	}
}

func TestParsePos(t *testing.T) {
	pos, err := ParsePos("C4", 8)
	require.NoError(t, err)
	require.Equal(t, Pos{X: 2, Y: 3}, pos)

	pos, err = ParsePos(" j10 ", 10)
	require.NoError(t, err)
	require.Equal(t, Pos{X: 9, Y: 9}, pos)

	for _, s := range []string{"", "a", "a0", "i1", "a9", "11", "aa", "-1"} {
		_, err := ParsePos(s, 8)
		require.Error(t, err, "field %q", s)
	}
}

func TestParsePosRoundTrip(t *testing.T) {
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			pos, err := ParsePos(PosName(x, y), 12)
			require.NoError(t, err)
			require.Equal(t, Pos{X: x, Y: y}, pos)
		}
	}
}
