package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"termflip/othello"
)

func TestFinalOutcome(t *testing.T) {
	tests := []struct {
		black, white int
		winner       othello.Disk
	}{
		{15, 0, othello.Black},
		{20, 44, othello.White},
		{32, 32, othello.Empty},
	}
	for _, tt := range tests {
		state := &BoardState{Black: tt.black, White: tt.white}
		got := state.FinalOutcome()
		require.Equal(t, othello.Outcome{Black: tt.black, White: tt.white, Winner: tt.winner}, got)
	}
}

func TestNewBoardStateDecided(t *testing.T) {
	start, err := othello.ParseBoard("XXXX", "XXXX", "XXXX", "XXX.")
	require.NoError(t, err)

	state := NewBoardState(othello.NewControllerFromBoard(start, othello.Black))
	require.True(t, state.Finished())
	require.Empty(t, state.LegalMoves)
	require.Equal(t, "Black wins 15-0", state.Outcome)
	require.Equal(t, othello.Outcome{Black: 15, White: 0, Winner: othello.Black}, state.FinalOutcome())
}
