package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Algebraic notation:
// - Columns: a, b, c, ... from the left
// - Rows: 1, 2, 3, ... from the top
// - Example: (2, 3) is c4, the classic first move on 8x8

// PosName converts board coordinates to algebraic notation.
func PosName(x, y int) string {
	return fmt.Sprintf("%c%d", 'a'+rune(x), y+1)
}

// ParsePos converts algebraic notation to board coordinates for a board of
// the given size. Case is ignored.
func ParsePos(s string, size int) (Pos, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Pos{}, fmt.Errorf("invalid field: %q", s)
	}

	x := int(s[0] - 'a')
	if s[0] < 'a' || s[0] > 'z' {
		return Pos{}, fmt.Errorf("invalid column in field: %q", s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Pos{}, fmt.Errorf("invalid row in field: %q", s)
	}
	y := row - 1

	if x >= size || y < 0 || y >= size {
		return Pos{}, fmt.Errorf("field out of bounds: %q", s)
	}
	return Pos{X: x, Y: y}, nil
}
