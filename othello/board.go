package othello

import (
	"fmt"
	"strings"
)

// MinSize is the smallest supported board.
const MinSize = 4

// directions holds the 8 compass vectors shared by the legality scan and the flip.
var directions = [8]struct{ dx, dy int }{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a square Othello grid. The size is fixed for the board's lifetime.
type Board struct {
	size  int
	cells []Disk // cells[y*size+x]
}

// NewBoard creates a board of the given size in the starting position.
// The size must be even and at least MinSize.
func NewBoard(size int) *Board {
	if err := validateSize(size); err != nil {
		panic(err)
	}
	b := &Board{
		size:  size,
		cells: make([]Disk, size*size),
	}
	b.Reset()
	return b
}

// ValidSize reports whether a board of the given size can be constructed.
func ValidSize(size int) bool {
	return validateSize(size) == nil
}

func validateSize(size int) error {
	if size < MinSize || size%2 != 0 {
		return fmt.Errorf("othello: board size must be even and at least %d, got %d", MinSize, size)
	}
	return nil
}

// ParseBoard builds a board from text rows, top row first. X or B marks a
// black disk, O or W a white disk, '.' or '-' an empty cell. Spaces are ignored.
func ParseBoard(rows ...string) (*Board, error) {
	size := len(rows)
	if err := validateSize(size); err != nil {
		return nil, err
	}

	b := &Board{
		size:  size,
		cells: make([]Disk, size*size),
	}
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len([]rune(row)) != size {
			return nil, fmt.Errorf("othello: row %d has %d cells, want %d", y+1, len([]rune(row)), size)
		}
		for x, r := range []rune(row) {
			switch r {
			case 'X', 'x', 'B', 'b':
				b.cells[y*size+x] = Black
			case 'O', 'o', 'W', 'w':
				b.cells[y*size+x] = White
			case '.', '-':
				b.cells[y*size+x] = Empty
			default:
				return nil, fmt.Errorf("othello: invalid cell %q at row %d column %d", r, y+1, x+1)
			}
		}
	}
	return b, nil
}

// Reset restores the four center disks on an otherwise empty board.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	c := b.size / 2
	b.cells[(c-1)*b.size+c-1] = White
	b.cells[(c-1)*b.size+c] = Black
	b.cells[c*b.size+c-1] = Black
	b.cells[c*b.size+c] = White
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

func (b *Board) mustInside(x, y int) {
	if !b.inside(x, y) {
		panic(fmt.Sprintf("othello: (%d, %d) is outside a %dx%d board", x, y, b.size, b.size))
	}
}

// Get returns the disk at (x, y). Coordinates outside the board panic.
func (b *Board) Get(x, y int) Disk {
	b.mustInside(x, y)
	return b.cells[y*b.size+x]
}

// capture walks from (x, y) in direction (dx, dy) and returns how many
// opposing disks lie between (x, y) and the first disk of side. It returns 0
// when the walk meets an empty cell or the edge first.
func (b *Board) capture(x, y, dx, dy int, side Disk) int {
	run := 0
	for {
		x += dx
		y += dy
		if !b.inside(x, y) {
			return 0
		}
		switch b.cells[y*b.size+x] {
		case Empty:
			return 0
		case side:
			return run
		}
		run++
	}
}

// IsLegal reports whether side may place a disk at (x, y).
func (b *Board) IsLegal(x, y int, side Disk) bool {
	mustSide(side)
	if b.Get(x, y) != Empty {
		return false
	}
	for _, d := range directions {
		if b.capture(x, y, d.dx, d.dy, side) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for side in row-major order.
func (b *Board) LegalMoves(side Disk) []Pos {
	var moves []Pos
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.IsLegal(x, y, side) {
				moves = append(moves, Pos{X: x, Y: y})
			}
		}
	}
	return moves
}

// HasLegalMove reports whether side has at least one legal move.
func (b *Board) HasLegalMove(side Disk) bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.IsLegal(x, y, side) {
				return true
			}
		}
	}
	return false
}

// ApplyMove places a disk for side at (x, y) and flips every captured run.
// It returns the flipped cells. The move must be legal.
func (b *Board) ApplyMove(x, y int, side Disk) []Pos {
	if !b.IsLegal(x, y, side) {
		panic(fmt.Sprintf("othello: illegal move %s for %v", PosName(x, y), side))
	}

	b.cells[y*b.size+x] = side
	var flipped []Pos
	for _, d := range directions {
		n := b.capture(x, y, d.dx, d.dy, side)
		fx, fy := x, y
		for i := 0; i < n; i++ {
			fx += d.dx
			fy += d.dy
			b.cells[fy*b.size+fx] = side
			flipped = append(flipped, Pos{X: fx, Y: fy})
		}
	}
	return flipped
}

// Count returns the number of cells holding d.
func (b *Board) Count(d Disk) int {
	n := 0
	for _, c := range b.cells {
		if c == d {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Disk, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the grid as rows of disks, indexed [y][x].
func (b *Board) Rows() [][]Disk {
	rows := make([][]Disk, b.size)
	for y := range rows {
		rows[y] = make([]Disk, b.size)
		copy(rows[y], b.cells[y*b.size:(y+1)*b.size])
	}
	return rows
}

// String returns ASCII art for the board. This is used for debugging.
func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString("   ")
	for x := 0; x < b.size; x++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + x))
	}
	sb.WriteByte('\n')

	for y := 0; y < b.size; y++ {
		fmt.Fprintf(&sb, "%2d ", y+1)
		for x := 0; x < b.size; x++ {
			sb.WriteByte(' ')
			sb.WriteRune(b.cells[y*b.size+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
