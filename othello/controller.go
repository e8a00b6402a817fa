package othello

// State is the phase of a game as seen by the input loop.
type State int

const (
	AwaitingMove State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "awaiting move"
}

// Outcome holds the final disk counts. Winner is Empty on a tie.
type Outcome struct {
	Black  int  `json:"black"`
	White  int  `json:"white"`
	Winner Disk `json:"winner"`
}

// Controller drives alternating play on a board it owns exclusively.
// Calls must be serialized by the caller.
type Controller struct {
	board  *Board
	turn   Disk
	passed bool
}

// NewController starts a game on a fresh board of the given size. Black opens.
func NewController(size int) *Controller {
	c := &Controller{board: NewBoard(size)}
	c.resolve(White)
	return c
}

// NewControllerFromBoard starts a game from an arbitrary position with
// toMove as the side to move, passing immediately if toMove is stuck.
// The controller takes a copy of b.
func NewControllerFromBoard(b *Board, toMove Disk) *Controller {
	mustSide(toMove)
	c := &Controller{board: b.Clone()}
	c.resolve(toMove.Opponent())
	return c
}

// resolve settles the side to move after moved has played.
func (c *Controller) resolve(moved Disk) {
	opp := moved.Opponent()
	c.passed = false
	switch {
	case c.board.HasLegalMove(opp):
		c.turn = opp
	case c.board.HasLegalMove(moved):
		c.turn = moved
		c.passed = true
	default:
		// Neither side can move. Terminal state is derived from the board,
		// turn keeps the side that would have moved next.
		c.turn = opp
	}
}

// AttemptMove plays (x, y) for the side to move. An illegal move, or any move
// after the game is over, is ignored and reported as false.
func (c *Controller) AttemptMove(x, y int) bool {
	if c.IsOver() {
		return false
	}
	side := c.turn
	if !c.board.IsLegal(x, y, side) {
		return false
	}
	c.board.ApplyMove(x, y, side)
	c.resolve(side)
	return true
}

// Reset returns to the starting position with Black to move.
func (c *Controller) Reset() {
	c.board.Reset()
	c.resolve(White)
}

// Turn returns the side whose move is awaited.
func (c *Controller) Turn() Disk {
	return c.turn
}

// Passed reports whether the last move forced the opponent to pass.
func (c *Controller) Passed() bool {
	return c.passed
}

// IsOver reports whether neither side has a legal move.
func (c *Controller) IsOver() bool {
	return !c.board.HasLegalMove(c.turn) && !c.board.HasLegalMove(c.turn.Opponent())
}

// State returns the current phase of the game.
func (c *Controller) State() State {
	if c.IsOver() {
		return GameOver
	}
	return AwaitingMove
}

// LegalMoves returns the moves available to the side to move, in row-major
// order. It is empty once the game is over.
func (c *Controller) LegalMoves() []Pos {
	return c.board.LegalMoves(c.turn)
}

// Board returns a copy of the current board.
func (c *Controller) Board() *Board {
	return c.board.Clone()
}

// Size returns the board size.
func (c *Controller) Size() int {
	return c.board.Size()
}

// Score returns the current disk counts.
func (c *Controller) Score() (black, white int) {
	return c.board.Count(Black), c.board.Count(White)
}

// Outcome compares the disk counts. It is meaningful at any time but final
// only once IsOver reports true.
func (c *Controller) Outcome() Outcome {
	black, white := c.Score()
	o := Outcome{Black: black, White: white}
	switch {
	case black > white:
		o.Winner = Black
	case white > black:
		o.Winner = White
	}
	return o
}
