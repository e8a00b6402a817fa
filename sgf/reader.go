package sgf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"termflip/othello"
	"termflip/types"
)

// defaultBoardSize is assumed when a record has no SZ property.
const defaultBoardSize = 8

// GameInfo holds metadata parsed from an SGF file header.
type GameInfo struct {
	FilePath    string
	FileName    string
	GameID      string
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	MoveCount   int
}

// node maps each property identifier of one SGF node to its values, unescaped.
type node map[string][]string

func (n node) first(ident string) string {
	if v := n[ident]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// splitNodes tokenizes a record into its nodes in file order. Game trees are
// flattened: records written here never branch, and for foreign records with
// variations the moves of every branch follow each other.
func splitNodes(content string) ([]node, error) {
	var (
		nodes []node
		cur   node
		ident []byte
		last  string
	)
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == ';':
			cur = node{}
			nodes = append(nodes, cur)
			ident, last = ident[:0], ""
		case c >= 'A' && c <= 'Z':
			ident = append(ident, c)
		case c == '[':
			value, end, err := readValue(content, i)
			if err != nil {
				return nil, err
			}
			i = end
			if len(ident) > 0 {
				last, ident = string(ident), ident[:0]
			}
			if cur == nil || last == "" {
				continue
			}
			cur[last] = append(cur[last], value)
		}
	}
	if len(nodes) == 0 {
		return nil, errors.New("no game tree")
	}
	return nodes, nil
}

// readValue unescapes the value whose '[' is at open and returns it along
// with the index of the closing ']'.
func readValue(content string, open int) (string, int, error) {
	var b strings.Builder
	for i := open + 1; i < len(content); i++ {
		switch content[i] {
		case '\\':
			i++
			if i < len(content) {
				b.WriteByte(content[i])
			}
		case ']':
			return b.String(), i, nil
		default:
			b.WriteByte(content[i])
		}
	}
	return "", 0, fmt.Errorf("unterminated value at offset %d", open)
}

// decodePoint turns an SGF letter pair into board coordinates. Empty values
// and "tt" mark passes.
func decodePoint(v string) (othello.Pos, bool) {
	if len(v) != 2 || v == "tt" {
		return othello.Pos{}, false
	}
	if v[0] < 'a' || v[0] > 'z' || v[1] < 'a' || v[1] > 'z' {
		return othello.Pos{}, false
	}
	return othello.Pos{X: int(v[0] - 'a'), Y: int(v[1] - 'a')}, true
}

// gameFile is a decoded Othello record.
type gameFile struct {
	root  node
	setup []types.Move // AB/AW disks, Side is the disk color
	moves []types.Move
}

func readGameFile(filePath string) (*gameFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	nodes, err := splitNodes(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filePath), err)
	}

	g := &gameFile{root: nodes[0]}
	if gm := g.root.first("GM"); gm != "" && gm != "2" {
		return nil, fmt.Errorf("%s: not an Othello record (GM[%s])", filepath.Base(filePath), gm)
	}

	for _, n := range nodes {
		for ident, side := range map[string]othello.Disk{"AB": othello.Black, "AW": othello.White} {
			for _, v := range n[ident] {
				if p, ok := decodePoint(v); ok {
					g.setup = append(g.setup, types.Move{X: p.X, Y: p.Y, Side: side})
				}
			}
		}
		for ident, side := range map[string]othello.Disk{"B": othello.Black, "W": othello.White} {
			if p, ok := decodePoint(n.first(ident)); ok {
				g.moves = append(g.moves, types.Move{X: p.X, Y: p.Y, Side: side})
			}
		}
	}
	return g, nil
}

func (g *gameFile) size() int {
	if n, err := strconv.Atoi(g.root.first("SZ")); err == nil {
		return n
	}
	return defaultBoardSize
}

// startBoard returns the position described by the setup properties, or the
// standard four-disk opening when there are none.
func (g *gameFile) startBoard() (*othello.Board, error) {
	size := g.size()
	if !othello.ValidSize(size) {
		return nil, fmt.Errorf("unsupported board size %d", size)
	}
	if len(g.setup) == 0 {
		return othello.NewBoard(size), nil
	}

	grid := make([][]rune, size)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(string(othello.Empty.Rune()), size))
	}
	for _, d := range g.setup {
		if d.X < size && d.Y < size {
			grid[d.Y][d.X] = d.Side.Rune()
		}
	}
	rows := make([]string, size)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return othello.ParseBoard(rows...)
}

// ParseHeader reads an SGF file and extracts metadata from the root node.
func ParseHeader(filePath string) (*GameInfo, error) {
	g, err := readGameFile(filePath)
	if err != nil {
		return nil, err
	}
	return &GameInfo{
		FilePath:    filePath,
		FileName:    filepath.Base(filePath),
		GameID:      g.root.first("GN"),
		BoardSize:   g.size(),
		PlayerBlack: g.root.first("PB"),
		PlayerWhite: g.root.first("PW"),
		Date:        g.root.first("DT"),
		Result:      g.root.first("RE"),
		MoveCount:   len(g.moves),
	}, nil
}

// ReplayToEnd replays a record from its start position and returns the
// final grid (board[y][x]) with the number of moves applied. Moves that are
// off the board or illegal for the recorded color are skipped.
func ReplayToEnd(filePath string) ([][]othello.Disk, int, error) {
	g, err := readGameFile(filePath)
	if err != nil {
		return nil, 0, err
	}
	board, err := g.startBoard()
	if err != nil {
		return nil, 0, err
	}

	applied := 0
	for _, m := range g.moves {
		if m.X >= board.Size() || m.Y >= board.Size() || !board.IsLegal(m.X, m.Y, m.Side) {
			continue
		}
		board.ApplyMove(m.X, m.Y, m.Side)
		applied++
	}
	return board.Rows(), applied, nil
}

// ParseMoves returns all recorded moves in order.
func ParseMoves(filePath string) ([]types.Move, error) {
	g, err := readGameFile(filePath)
	if err != nil {
		return nil, err
	}
	return g.moves, nil
}

// ListGames returns the headers of every Othello record in dir, newest first.
// Record names start with a timestamp, so name order is age order. Files that
// do not parse are left out.
func ListGames(dir string) ([]GameInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	var games []GameInfo
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sgf" {
			continue
		}
		if info, err := ParseHeader(filepath.Join(dir, e.Name())); err == nil {
			games = append(games, *info)
		}
	}
	slices.Reverse(games)
	return games, nil
}
