// Package sgf implements SGF FF[4] writing and reading for Othello game records (GM[2]).
package sgf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"termflip/othello"
	"termflip/types"
)

var errRecordClosed = errors.New("game record is closed")

// GameRecord tracks a game in progress. Every change rewrites the whole file,
// so the record on disk is a complete game tree even if the program dies.
type GameRecord struct {
	FilePath    string
	GameID      string
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string

	setup  [][]othello.Disk
	moves  []types.Move
	closed bool
}

// NewGameRecord creates a new SGF file in dir and writes the initial header.
// The file is named after the start time, the board size and the game id.
func NewGameRecord(dir string, boardSize int, playerBlack, playerWhite string) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	now := time.Now()
	id := uuid.NewString()
	name := fmt.Sprintf("%s_%dx%d_%s.sgf", now.Format("2006-01-02_150405"), boardSize, boardSize, id[:8])

	rec := &GameRecord{
		FilePath:    filepath.Join(dir, name),
		GameID:      id,
		BoardSize:   boardSize,
		PlayerBlack: playerBlack,
		PlayerWhite: playerWhite,
		Date:        now.Format("2006-01-02"),
		Result:      "?",
	}
	if err := rec.save(); err != nil {
		return nil, err
	}
	return rec, nil
}

// sgfCoord converts 0-indexed board coordinates to SGF letter pair.
// (0,0) -> "aa", (2,3) -> "cd", (11,11) -> "ll".
func sgfCoord(x, y int) string {
	return string([]byte{byte('a' + x), byte('a' + y)})
}

// AddMove appends a move to the record. Passes are implied by two
// consecutive moves of the same color and are not written.
func (r *GameRecord) AddMove(x, y int, side othello.Disk) error {
	if r.closed {
		return errRecordClosed
	}
	r.moves = append(r.moves, types.Move{X: x, Y: y, Side: side})
	return r.save()
}

// AddSetupPosition records board (indexed [y][x]) as the start position.
func (r *GameRecord) AddSetupPosition(board [][]othello.Disk) error {
	if r.closed {
		return errRecordClosed
	}
	r.setup = board
	return r.save()
}

// SetResult sets the SGF RE property from the final disk counts.
func (r *GameRecord) SetResult(outcome othello.Outcome) error {
	if r.closed {
		return errRecordClosed
	}
	r.Result = FormatResult(outcome)
	return r.save()
}

// MoveCount returns the number of recorded moves.
func (r *GameRecord) MoveCount() int {
	return len(r.moves)
}

// Close writes the record one last time. Later changes fail.
func (r *GameRecord) Close() {
	if r.closed {
		return
	}
	r.save()
	r.closed = true
}

// save replaces the file through a rename so readers never see a partial tree.
func (r *GameRecord) save() error {
	tmp, err := os.CreateTemp(filepath.Dir(r.FilePath), ".sgf-*")
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("save record: %w", err)
	}

	if _, err := tmp.Write(r.encode()); err != nil {
		tmp.Close()
		return fmt.Errorf("save record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("save record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.FilePath); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// encode renders the record as a root node, an optional setup node and one
// node per move.
func (r *GameRecord) encode() []byte {
	var b bytes.Buffer

	b.WriteString("(;")
	writeProp(&b, "GM", "2")
	writeProp(&b, "FF", "4")
	writeProp(&b, "CA", "UTF-8")
	writeProp(&b, "AP", "termflip:1.0")
	writeProp(&b, "SZ", strconv.Itoa(r.BoardSize))
	writeProp(&b, "PB", r.PlayerBlack)
	writeProp(&b, "PW", r.PlayerWhite)
	writeProp(&b, "DT", r.Date)
	writeProp(&b, "GN", r.GameID)
	writeProp(&b, "RE", r.Result)
	b.WriteByte('\n')

	var black, white []string
	for y := range r.setup {
		for x, d := range r.setup[y] {
			switch d {
			case othello.Black:
				black = append(black, sgfCoord(x, y))
			case othello.White:
				white = append(white, sgfCoord(x, y))
			}
		}
	}
	if len(black)+len(white) > 0 {
		b.WriteByte(';')
		writeProp(&b, "AB", black...)
		writeProp(&b, "AW", white...)
		b.WriteByte('\n')
	}

	for _, m := range r.moves {
		ident := "B"
		if m.Side == othello.White {
			ident = "W"
		}
		b.WriteByte(';')
		writeProp(&b, ident, sgfCoord(m.X, m.Y))
	}
	b.WriteString(")\n")
	return b.Bytes()
}

// writeProp writes ident followed by each escaped value. Properties without
// values are left out.
func writeProp(b *bytes.Buffer, ident string, values ...string) {
	if len(values) == 0 {
		return
	}
	b.WriteString(ident)
	for _, v := range values {
		b.WriteByte('[')
		b.WriteString(escape(v))
		b.WriteByte(']')
	}
}

// FormatResult converts final disk counts to an SGF RE[] value:
// "B+4" and "W+10" give the disk margin, "0" is a draw.
func FormatResult(o othello.Outcome) string {
	switch o.Winner {
	case othello.Black:
		return fmt.Sprintf("B+%d", o.Black-o.White)
	case othello.White:
		return fmt.Sprintf("W+%d", o.White-o.Black)
	}
	return "0"
}

// DescribeResult turns an RE[] value into text for the history browser.
func DescribeResult(result string) string {
	switch {
	case result == "" || result == "?":
		return "Unfinished"
	case result == "0" || strings.EqualFold(result, "draw"):
		return "Draw"
	case strings.HasPrefix(result, "B+"):
		return "Black +" + result[2:]
	case strings.HasPrefix(result, "W+"):
		return "White +" + result[2:]
	}
	return result
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "]", `\]`)
}
